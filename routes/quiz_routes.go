package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kevmuria/exam_online/handlers"
)

func QuizRoutes(app *fiber.App, quizHandler *handlers.QuizHandler) {
	api := app.Group("/api/v1")

	api.Get("/questions", quizHandler.ListQuestions)
	api.Post("/submit", quizHandler.SubmitAnswers)
}
