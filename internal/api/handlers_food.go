package api

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/lunahealth/luna/internal/controllers"
)

// AnalyzeFood accepts either an uploaded image (multipart field "file")
// or the food_name/description pair, runs the analysis and returns the
// normalized report.
func (handler *Handler) AnalyzeFood(c *fiber.Ctx) error {
	controller := controllers.NewFoodAnalysisController(handler.client)
	defer controller.Reset()

	file, err := c.FormFile("file")
	if err == nil && file != nil {
		opened, err := file.Open()
		if err != nil {
			return badRequest(c, "could not read uploaded file")
		}
		data, err := io.ReadAll(opened)
		_ = opened.Close()
		if err != nil {
			return badRequest(c, "could not read uploaded file")
		}
		controller.SelectImage(file.Filename, file.Header.Get("Content-Type"), data)
	} else {
		controller.SetFoodDetails(c.FormValue("food_name"), c.FormValue("description"))
	}

	if err := controller.Analyze(c.UserContext()); err != nil {
		return failureResponse(c, err, controller.ErrorMessage())
	}
	return c.JSON(fiber.Map{"report": controller.Result()})
}
