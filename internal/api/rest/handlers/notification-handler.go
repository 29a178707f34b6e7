package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackVerse/hackathon-service/internal/api/rest/middleware"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/services"
	"github.com/HackVerse/hackathon-service/pkg/utils"
)

type NotificationHandler struct {
	svc  services.NotificationService
	auth helper.Auth
}

func NewNotificationHandler(svc services.NotificationService, auth helper.Auth) *NotificationHandler {
	return &NotificationHandler{svc: svc, auth: auth}
}

func (h *NotificationHandler) SetupRoutes(app *fiber.App) {
	notifications := app.Group("/api/notifications", middleware.AuthMiddleware(h.auth))

	notifications.Get("/", h.List)
	notifications.Patch("/mark-all-read", h.MarkAllRead)
	notifications.Patch("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) List(ctx *fiber.Ctx) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	list, err := h.svc.List(userID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}

func (h *NotificationHandler) MarkRead(ctx *fiber.Ctx) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := h.svc.MarkRead(uint(id), userID); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(ctx *fiber.Ctx) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.svc.MarkAllRead(userID); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "All notifications marked as read")
}
