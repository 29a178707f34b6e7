package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackVerse/hackathon-service/internal/api/rest/middleware"
	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/dto"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/services"
	"github.com/HackVerse/hackathon-service/pkg/utils"
)

type SubmissionHandler struct {
	svc  services.SubmissionService
	auth helper.Auth
}

func NewSubmissionHandler(svc services.SubmissionService, auth helper.Auth) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, auth: auth}
}

func (h *SubmissionHandler) SetupRoutes(app *fiber.App) {
	subs := app.Group("/api/submissions", middleware.AuthMiddleware(h.auth))

	subs.Post("/ppt", middleware.StudentOnly(), h.SubmitPPT)
	subs.Post("/final", middleware.StudentOnly(), h.SubmitFinal)
	subs.Get("/team/:teamId", h.ListByTeam)
}

func (h *SubmissionHandler) SubmitPPT(ctx *fiber.Ctx) error {
	return h.submit(ctx, domain.SubmissionKindPPT)
}

func (h *SubmissionHandler) SubmitFinal(ctx *fiber.Ctx) error {
	return h.submit(ctx, domain.SubmissionKindFinal)
}

func (h *SubmissionHandler) submit(ctx *fiber.Ctx, kind domain.SubmissionKind) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.SubmitRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.TeamID == 0 || requestBody.FileBase64 == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "teamId and fileBase64 are required")
	}

	sub, err := h.svc.Submit(ctx.UserContext(), userID, requestBody.TeamID, kind, requestBody.FileBase64)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, sub)
}

func (h *SubmissionHandler) ListByTeam(ctx *fiber.Ctx) error {
	teamID, err := ctx.ParamsInt("teamId")
	if err != nil || teamID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid team id")
	}

	subs, err := h.svc.ListByTeam(uint(teamID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, subs)
}
