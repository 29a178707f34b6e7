package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackVerse/hackathon-service/internal/api/rest/middleware"
	"github.com/HackVerse/hackathon-service/internal/dto"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/services"
	"github.com/HackVerse/hackathon-service/pkg/utils"
)

type TeamHandler struct {
	svc  services.TeamService
	auth helper.Auth
}

func NewTeamHandler(svc services.TeamService, auth helper.Auth) *TeamHandler {
	return &TeamHandler{svc: svc, auth: auth}
}

func (h *TeamHandler) SetupRoutes(app *fiber.App) {
	teams := app.Group("/api/teams", middleware.AuthMiddleware(h.auth))

	teams.Post("/", middleware.StudentOnly(), h.Create)
	teams.Get("/my-teams", h.MyTeams)
	teams.Get("/event/:eventId", middleware.AdminOnly(), h.ListByEvent)
	teams.Get("/:teamId", h.Get)
	teams.Post("/:teamId/accept", middleware.StudentOnly(), h.Accept)
	teams.Post("/:teamId/decline", middleware.StudentOnly(), h.Decline)
}

func (h *TeamHandler) Create(ctx *fiber.Ctx) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.CreateTeamRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	team, err := h.svc.Create(userID, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, team)
}

func (h *TeamHandler) Accept(ctx *fiber.Ctx) error {
	return h.answer(ctx, true)
}

func (h *TeamHandler) Decline(ctx *fiber.Ctx) error {
	return h.answer(ctx, false)
}

func (h *TeamHandler) answer(ctx *fiber.Ctx, accept bool) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	teamID, err := ctx.ParamsInt("teamId")
	if err != nil || teamID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid team id")
	}

	answer := h.svc.Accept
	if !accept {
		answer = h.svc.Decline
	}

	team, err := answer(uint(teamID), userID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, team)
}

func (h *TeamHandler) MyTeams(ctx *fiber.Ctx) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	teams, err := h.svc.MyTeams(userID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, teams)
}

func (h *TeamHandler) Get(ctx *fiber.Ctx) error {
	teamID, err := ctx.ParamsInt("teamId")
	if err != nil || teamID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid team id")
	}

	team, err := h.svc.Get(uint(teamID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, team)
}

func (h *TeamHandler) ListByEvent(ctx *fiber.Ctx) error {
	eventID, err := ctx.ParamsInt("eventId")
	if err != nil || eventID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid event id")
	}

	teams, err := h.svc.ListByEvent(uint(eventID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, teams)
}
