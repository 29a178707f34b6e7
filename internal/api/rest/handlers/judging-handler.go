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

type JudgingHandler struct {
	svc  services.JudgingService
	auth helper.Auth
}

func NewJudgingHandler(svc services.JudgingService, auth helper.Auth) *JudgingHandler {
	return &JudgingHandler{svc: svc, auth: auth}
}

func (h *JudgingHandler) SetupRoutes(app *fiber.App) {
	judging := app.Group("/api/judging", middleware.AuthMiddleware(h.auth))

	judging.Post("/score-ppt", middleware.JudgeOrAdmin(), h.ScorePPT)
	judging.Post("/score-team", middleware.JudgeOrAdmin(), h.ScoreTeam)
	judging.Post("/confirm-shortlist/:eventId", middleware.AdminOnly(), h.ConfirmShortlist)
	judging.Get("/shortlist/:eventId", h.Shortlist)
}

func (h *JudgingHandler) ScorePPT(ctx *fiber.Ctx) error {
	return h.score(ctx, domain.ScoreStagePPT)
}

func (h *JudgingHandler) ScoreTeam(ctx *fiber.Ctx) error {
	return h.score(ctx, domain.ScoreStageFinal)
}

func (h *JudgingHandler) score(ctx *fiber.Ctx, stage domain.ScoreStage) error {
	judgeID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.ScoreRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.TeamID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	score, err := h.svc.Score(judgeID, stage, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, score)
}

func (h *JudgingHandler) ConfirmShortlist(ctx *fiber.Ctx) error {
	eventID, err := ctx.ParamsInt("eventId")
	if err != nil || eventID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid event id")
	}

	entries, err := h.svc.ConfirmShortlist(uint(eventID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, entries)
}

func (h *JudgingHandler) Shortlist(ctx *fiber.Ctx) error {
	eventID, err := ctx.ParamsInt("eventId")
	if err != nil || eventID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid event id")
	}

	entries, err := h.svc.Shortlist(uint(eventID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, entries)
}
