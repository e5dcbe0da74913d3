package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/due-date", handler.CalculateDueDate)

	predict := api.Group("/predict")
	predict.Post("/period/simple", handler.PredictPeriodSimple)
	predict.Post("/period/advanced", handler.PredictPeriodAdvanced)
	predict.Post("/ovulation/simple", handler.PredictOvulationSimple)
	predict.Post("/ovulation/advanced", handler.PredictOvulationAdvanced)

	chat := api.Group("/chat")
	chat.Post("/text", handler.ChatText)
	chat.Post("/ask", handler.Chatbot)

	api.Post("/food/analyze", handler.AnalyzeFood)
	api.Post("/incident-report", handler.SubmitIncidentReport)
}
