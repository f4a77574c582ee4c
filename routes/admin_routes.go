package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kevmuria/exam_online/handlers"
)

func AdminRoutes(app *fiber.App, questionHandler *handlers.QuestionHandler, uploadHandler *handlers.UploadHandler) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin")
	admin.Post("/upload-pdf", uploadHandler.UploadPDF)

	questions := admin.Group("/questions")
	questions.Post("", questionHandler.Create)
	questions.Get("", questionHandler.List)
	questions.Get("/:questionId", questionHandler.Get)
	questions.Put("/:questionId", questionHandler.Update)
	questions.Delete("/:questionId", questionHandler.Delete)
}
