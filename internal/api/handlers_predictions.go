package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lunahealth/luna/internal/controllers"
	"github.com/lunahealth/luna/internal/models"
)

func (handler *Handler) CalculateDueDate(c *fiber.Ctx) error {
	var input models.DueDateRequest
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	controller := controllers.NewDueDateController(handler.client)
	if err := controller.Calculate(c.UserContext(), input.LastPeriodDate); err != nil {
		return failureResponse(c, err, controller.ErrorMessage())
	}
	return c.JSON(controller.Result())
}

func (handler *Handler) PredictPeriodSimple(c *fiber.Ctx) error {
	return handler.predictSimple(c, controllers.TargetPeriod)
}

func (handler *Handler) PredictPeriodAdvanced(c *fiber.Ctx) error {
	return handler.predictAdvanced(c, controllers.TargetPeriod)
}

func (handler *Handler) PredictOvulationSimple(c *fiber.Ctx) error {
	return handler.predictSimple(c, controllers.TargetOvulation)
}

func (handler *Handler) PredictOvulationAdvanced(c *fiber.Ctx) error {
	return handler.predictAdvanced(c, controllers.TargetOvulation)
}

func (handler *Handler) predictSimple(c *fiber.Ctx, target controllers.PredictionTarget) error {
	var input models.SimplePredictionRequest
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	controller := controllers.NewPredictionController(handler.client, target)
	if err := controller.PredictSimple(c.UserContext(), input); err != nil {
		return failureResponse(c, err, controller.ErrorMessage())
	}
	return c.JSON(controller.Result())
}

func (handler *Handler) predictAdvanced(c *fiber.Ctx, target controllers.PredictionTarget) error {
	var input models.AdvancedPredictionRequest
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	controller := controllers.NewPredictionController(handler.client, target)
	if err := controller.PredictAdvanced(c.UserContext(), input); err != nil {
		return failureResponse(c, err, controller.ErrorMessage())
	}
	return c.JSON(controller.Result())
}
