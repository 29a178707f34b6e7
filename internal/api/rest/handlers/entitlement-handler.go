package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackVerse/hackathon-service/internal/api/rest/middleware"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/services"
	"github.com/HackVerse/hackathon-service/pkg/utils"
)

type EntitlementHandler struct {
	svc  services.EntitlementService
	auth helper.Auth
}

func NewEntitlementHandler(svc services.EntitlementService, auth helper.Auth) *EntitlementHandler {
	return &EntitlementHandler{svc: svc, auth: auth}
}

func (h *EntitlementHandler) SetupRoutes(app *fiber.App) {
	ent := app.Group("/api/entitlements", middleware.AuthMiddleware(h.auth))

	ent.Post("/generate/:eventId", middleware.AdminOnly(), h.Generate)
	ent.Post("/scan", middleware.AdminOnly(), h.Scan)
	ent.Get("/my", middleware.StudentOnly(), h.My)
}

func (h *EntitlementHandler) Generate(ctx *fiber.Ctx) error {
	eventID, err := ctx.ParamsInt("eventId")
	if err != nil || eventID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid event id")
	}

	created, err := h.svc.Generate(uint(eventID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"created": created})
}

func (h *EntitlementHandler) Scan(ctx *fiber.Ctx) error {
	var requestBody struct {
		Token string `json:"token"`
	}
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Token == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "token is required")
	}

	e, err := h.svc.Scan(requestBody.Token)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, e)
}

func (h *EntitlementHandler) My(ctx *fiber.Ctx) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	list, err := h.svc.My(userID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}
