package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackVerse/hackathon-service/internal/api/rest/middleware"
	"github.com/HackVerse/hackathon-service/internal/dto"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/services"
	"github.com/HackVerse/hackathon-service/pkg/utils"
)

type EventHandler struct {
	svc  services.EventService
	auth helper.Auth
}

func NewEventHandler(svc services.EventService, auth helper.Auth) *EventHandler {
	return &EventHandler{svc: svc, auth: auth}
}

func (h *EventHandler) SetupRoutes(app *fiber.App) {
	events := app.Group("/api/events", middleware.AuthMiddleware(h.auth))

	events.Post("/", middleware.AdminOnly(), h.Create)
	events.Get("/", h.List)
	events.Get("/:eventId", h.Get)
}

func (h *EventHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.CreateEventRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	event, err := h.svc.Create(requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, event)
}

func (h *EventHandler) List(ctx *fiber.Ctx) error {
	events, err := h.svc.List()
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, events)
}

func (h *EventHandler) Get(ctx *fiber.Ctx) error {
	eventID, err := ctx.ParamsInt("eventId")
	if err != nil || eventID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid event id")
	}

	event, err := h.svc.Get(uint(eventID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, event)
}
