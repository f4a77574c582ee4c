package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kevmuria/exam_online/services"
)

// respondError maps service failures onto response codes. Anything outside
// the known taxonomy is handed back to the app-level error handler, which
// answers with a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var validation *services.ValidationError
	var malformed *services.MalformedSubmissionError
	var notFound *services.NotFoundError
	var extraction *services.ExtractionError

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validation.Msg})
	case errors.As(err, &malformed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": malformed.Msg})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFound.Msg})
	case errors.As(err, &extraction):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": extraction.Error()})
	}
	return err
}
