package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lunahealth/luna/internal/controllers"
)

type chatInput struct {
	Message   string `json:"message" form:"message"`
	UserInput string `json:"user_input" form:"user_input"`
}

// ChatText forwards a message through the form-encoded chat endpoint.
func (handler *Handler) ChatText(c *fiber.Ctx) error {
	var input chatInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	controller := controllers.NewChatController(handler.client)
	if err := controller.SendText(c.UserContext(), input.Message); err != nil {
		return failureResponse(c, err, controller.ErrorMessage())
	}
	return c.JSON(fiber.Map{"messages": controller.Messages()})
}

// Chatbot forwards a question through the JSON chatbot endpoint.
func (handler *Handler) Chatbot(c *fiber.Ctx) error {
	var input chatInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	text := input.UserInput
	if text == "" {
		text = input.Message
	}

	controller := controllers.NewChatController(handler.client)
	if err := controller.Ask(c.UserContext(), text); err != nil {
		return failureResponse(c, err, controller.ErrorMessage())
	}
	return c.JSON(fiber.Map{"messages": controller.Messages()})
}
