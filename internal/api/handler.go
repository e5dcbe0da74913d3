package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lunahealth/luna/internal/controllers"
	"github.com/lunahealth/luna/internal/remote"
	"github.com/lunahealth/luna/internal/services"
)

// Handler wires the screen endpoints to the transport client. Each
// request gets a fresh controller: form state lives in the browser, so
// nothing is shared between requests or screens.
type Handler struct {
	client *remote.Client
}

func NewHandler(client *remote.Client) *Handler {
	return &Handler{client: client}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// failureStatus picks the response status for a failure whose body is
// built by the caller.
func failureStatus(err error) int {
	if services.IsValidationError(err) {
		return fiber.StatusBadRequest
	}
	if remote.IsConnectError(err) {
		return fiber.StatusServiceUnavailable
	}
	if statusErr, ok := remote.AsStatusError(err); ok {
		return statusErr.StatusCode
	}
	return fiber.StatusBadGateway
}

// failureResponse maps the three failure kinds onto statuses: local
// validation to 400, network-level to 503 with the could-not-connect
// message, HTTP-level to the upstream status and message, and anything
// else (bad payload shapes included) to 502.
func failureResponse(c *fiber.Ctx, err error, screenMessage string) error {
	if services.IsValidationError(err) || errors.Is(err, controllers.ErrEmptyChatMessage) {
		return badRequest(c, err.Error())
	}
	if remote.IsConnectError(err) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": controllers.CouldNotConnectMessage})
	}
	if statusErr, ok := remote.AsStatusError(err); ok {
		return c.Status(statusErr.StatusCode).JSON(fiber.Map{"error": statusErr.Message})
	}
	if screenMessage == "" {
		screenMessage = remote.GenericFailureMessage
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": screenMessage})
}
