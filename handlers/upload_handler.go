package handlers

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kevmuria/exam_online/services"
)

// UploadHandler accepts a question PDF and runs the ingest pipeline:
// extract text, parse questions, store the ones not already present.
type UploadHandler struct {
	extractor *services.Extractor
	questions *services.QuestionService
	uploadDir string
	log       *log.Logger
}

func NewUploadHandler(extractor *services.Extractor, questions *services.QuestionService, uploadDir string, logger *log.Logger) *UploadHandler {
	return &UploadHandler{
		extractor: extractor,
		questions: questions,
		uploadDir: uploadDir,
		log:       logger,
	}
}

func (h *UploadHandler) UploadPDF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}
	courseID := c.FormValue("course_id")
	examType := c.FormValue("exam_type")

	if !strings.HasSuffix(fileHeader.Filename, ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file format. Only PDF is allowed"})
	}

	path := filepath.Join(h.uploadDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, path); err != nil {
		h.log.Printf("Error saving uploaded file %s: %v", path, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store uploaded file"})
	}

	text, err := h.extractor.ExtractText(path)
	if err != nil {
		h.log.Printf("Error extracting data from PDF: %v", err)
		return respondError(c, err)
	}

	parsed := services.ParseQuestions(text)
	if len(parsed) == 0 {
		h.log.Printf("No questions extracted from %s", fileHeader.Filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No questions found in PDF"})
	}

	summary, err := h.questions.IngestParsed(parsed, courseID, examType)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":           "File processed successfully and saved.",
		"created_questions": summary.Created,
		"skipped":           summary.Skipped,
	})
}
