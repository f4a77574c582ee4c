package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kevmuria/exam_online/models"
	"github.com/kevmuria/exam_online/services"
)

var validate = validator.New()

// QuestionHandler serves the admin question CRUD surface.
type QuestionHandler struct {
	questions *services.QuestionService
}

func NewQuestionHandler(questions *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

type QuestionRequest struct {
	Text          string         `json:"text" validate:"required"`
	Options       models.Options `json:"options"`
	CorrectOption string         `json:"correct_option" validate:"required"`
	CourseID      string         `json:"course_id" validate:"required"`
	ExamType      string         `json:"exam_type" validate:"required"`
}

type UpdateQuestionRequest struct {
	Text          *string         `json:"text"`
	Options       *models.Options `json:"options"`
	CorrectOption *string         `json:"correct_option"`
	CourseID      *string         `json:"course_id"`
	ExamType      *string         `json:"exam_type"`
}

func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	question, err := h.questions.Create(services.QuestionInput{
		Text:          req.Text,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		CourseID:      req.CourseID,
		ExamType:      req.ExamType,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

func (h *QuestionHandler) List(c *fiber.Ctx) error {
	questions, err := h.questions.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"questions": questions})
}

func (h *QuestionHandler) Get(c *fiber.Ctx) error {
	question, err := h.questions.Get(c.Params("questionId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(question)
}

func (h *QuestionHandler) Update(c *fiber.Ctx) error {
	var req UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	question, err := h.questions.Update(c.Params("questionId"), services.QuestionPatch{
		Text:          req.Text,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		CourseID:      req.CourseID,
		ExamType:      req.ExamType,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(question)
}

func (h *QuestionHandler) Delete(c *fiber.Ctx) error {
	if err := h.questions.Delete(c.Params("questionId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
