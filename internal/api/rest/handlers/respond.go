package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/HackVerse/hackathon-service/internal/services"
	"github.com/HackVerse/hackathon-service/pkg/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation 400, credentials 401, verification/authorization 403,
// not-found 404, conflict 409, everything else 500.
func respondServiceError(ctx *fiber.Ctx, err error) error {
	var (
		validationErr *services.ValidationError
		weightErr     *services.WeightSumError
		sizeErr       *services.TeamSizeError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &weightErr),
		errors.As(err, &sizeErr),
		errors.Is(err, services.ErrOTPNotFound),
		errors.Is(err, services.ErrOTPExpired),
		errors.Is(err, services.ErrOTPIncorrect),
		errors.Is(err, services.ErrMissingDocuments),
		errors.Is(err, services.ErrScoreOutOfRange),
		errors.Is(err, services.ErrNoShortlist):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, services.ErrOTPRequired),
		errors.Is(err, services.ErrDocsRequired),
		errors.Is(err, services.ErrNotTeamLeader),
		errors.Is(err, services.ErrNotInvited),
		errors.Is(err, services.ErrTeamNotConfirmed),
		errors.Is(err, services.ErrTeamNotShortlisted),
		errors.Is(err, services.ErrDeadlinePassed):
		return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrTokenUnknown),
		errors.Is(err, services.ErrNotificationNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrEmailAlreadyVerified),
		errors.Is(err, services.ErrInviteAlreadyAnswered),
		errors.Is(err, services.ErrShortlistFrozen),
		errors.Is(err, services.ErrTokenConsumed):
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	}

	log.Printf("internal error: %v", err)
	return utils.ResponseError(ctx, fiber.StatusInternalServerError, "something went wrong")
}

func currentUserID(ctx *fiber.Ctx) (uint, bool) {
	id, ok := ctx.Locals("userID").(uint)
	return id, ok && id != 0
}
