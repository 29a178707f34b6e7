package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HackVerse/hackathon-service/internal/api/rest/middleware"
	"github.com/HackVerse/hackathon-service/internal/dto"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/services"
	"github.com/HackVerse/hackathon-service/pkg/utils"
)

type AuthHandler struct {
	svc  services.AuthService
	auth helper.Auth
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register-basic", h.RegisterBasic)
	auth.Post("/verify-otp", h.VerifyOTP)
	auth.Post("/resend-otp", h.ResendOTP)
	auth.Post("/login", h.Login)

	auth.Post("/register-complete", middleware.AuthMiddleware(h.auth), h.RegisterComplete)
	auth.Get("/me", middleware.AuthMiddleware(h.auth), h.Me)
}

func (h *AuthHandler) RegisterBasic(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterBasicRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	resp, err := h.svc.RegisterBasic(requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}

func (h *AuthHandler) VerifyOTP(ctx *fiber.Ctx) error {
	var requestBody dto.VerifyOTPRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.VerifyOTP(requestBody.Email, requestBody.OTP); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Email verified successfully")
}

func (h *AuthHandler) ResendOTP(ctx *fiber.Ctx) error {
	var requestBody dto.ResendOTPRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide a valid email")
	}

	if err := h.svc.ResendOTP(requestBody.Email); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "A new verification code has been sent")
}

func (h *AuthHandler) RegisterComplete(ctx *fiber.Ctx) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.RegisterCompleteRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	resp, err := h.svc.RegisterComplete(ctx.UserContext(), userID, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

// Login surfaces the verification gate as typed flags so the frontend can
// route the student back into the right registration step.
func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	token, user, err := h.svc.Login(requestBody)
	if errors.Is(err, services.ErrOTPRequired) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success":     false,
			"message":     err.Error(),
			"requiresOTP": true,
		})
	}
	if errors.Is(err, services.ErrDocsRequired) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success":      false,
			"message":      err.Error(),
			"requiresDocs": true,
		})
	}
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.svc.Me(userID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}
