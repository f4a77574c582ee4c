package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kevmuria/exam_online/models"
	"github.com/kevmuria/exam_online/services"
)

// QuizHandler serves the student-facing surface: fetching a question set and
// submitting answers for grading.
type QuizHandler struct {
	questions *services.QuestionService
	grader    *services.GradingService
}

func NewQuizHandler(questions *services.QuestionService, grader *services.GradingService) *QuizHandler {
	return &QuizHandler{questions: questions, grader: grader}
}

// QuestionForStudent is the listing shape with the answer key stripped.
type QuestionForStudent struct {
	ID      uuid.UUID      `json:"id"`
	Text    string         `json:"text"`
	Options models.Options `json:"options"`
}

func (h *QuizHandler) ListQuestions(c *fiber.Ctx) error {
	courseID := c.Query("course_id")
	examType := c.Query("exam_type")
	if courseID == "" || examType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "course_id and exam_type fields are required."})
	}

	questions, err := h.questions.ListByCourseExam(courseID, examType)
	if err != nil {
		return respondError(c, err)
	}

	forStudent := make([]QuestionForStudent, len(questions))
	for i, q := range questions {
		forStudent[i] = QuestionForStudent{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		}
	}
	return c.JSON(forStudent)
}

type SubmitAnswersRequest struct {
	Submissions []services.Submission `json:"submissions"`
}

func (h *QuizHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid submission format"})
	}

	results, err := h.grader.Grade(req.Submissions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"results": results})
}
