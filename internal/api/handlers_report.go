package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lunahealth/luna/internal/controllers"
	"github.com/lunahealth/luna/internal/models"
)

// SubmitIncidentReport posts the seven-field report once. The
// controller's notices ride along in the response so the page can show
// them as toasts.
func (handler *Handler) SubmitIncidentReport(c *fiber.Ctx) error {
	var report models.IncidentReport
	if err := c.BodyParser(&report); err != nil {
		return badRequest(c, "invalid request body")
	}

	notices := &controllers.NoticeList{}
	controller := controllers.NewIncidentReportController(handler.client, notices)
	controller.SetForm(report)

	if err := controller.Submit(c.UserContext()); err != nil {
		status := failureStatus(err)
		return c.Status(status).JSON(fiber.Map{"notices": notices.Notices()})
	}
	return c.JSON(fiber.Map{"notices": notices.Notices()})
}
