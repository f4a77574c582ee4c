package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kevmuria/exam_online/models"
)

// QuestionService owns all reads and writes of the questions table.
type QuestionService struct {
	db  *gorm.DB
	log *log.Logger
}

func NewQuestionService(db *gorm.DB, logger *log.Logger) *QuestionService {
	return &QuestionService{db: db, log: logger}
}

// QuestionInput carries the five fields required to create a question.
type QuestionInput struct {
	Text          string
	Options       models.Options
	CorrectOption string
	CourseID      string
	ExamType      string
}

// QuestionPatch carries a partial update; nil fields keep their stored value.
type QuestionPatch struct {
	Text          *string
	Options       *models.Options
	CorrectOption *string
	CourseID      *string
	ExamType      *string
}

// IngestSummary reports the outcome of a bulk ingest.
type IngestSummary struct {
	Created []models.Question
	Skipped int
}

func (s *QuestionService) List() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCourseExam returns the questions matching both filters exactly. Zero
// matches is a not-found condition here, unlike the admin listing: an empty
// quiz is an error for the student surface.
func (s *QuestionService) ListByCourseExam(courseID, examType string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("course_id = ? AND exam_type = ?", courseID, examType).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("No questions found for the given %s and %s", courseID, examType)}
	}
	return questions, nil
}

func (s *QuestionService) Get(id string) (*models.Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, &NotFoundError{Msg: fmt.Sprintf("Question with id %s does not exist", id)}
	}

	var question models.Question
	err = s.db.First(&question, "id = ?", questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Msg: fmt.Sprintf("Question with id %s does not exist", id)}
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) Create(in QuestionInput) (*models.Question, error) {
	if in.Text == "" || in.CorrectOption == "" || in.CourseID == "" || in.ExamType == "" || in.Options.Empty() {
		return nil, &ValidationError{Msg: "Missing required fields"}
	}

	question := models.Question{
		Text:          in.Text,
		Options:       in.Options,
		CorrectOption: in.CorrectOption,
		CourseID:      in.CourseID,
		ExamType:      in.ExamType,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// IngestParsed stores parsed questions under the given course and exam type.
// A question whose (text, exam_type) pair already exists is skipped, and a
// row that fails to persist is logged and skipped; parsing noise must not
// abort the rest of the upload. The exists-then-create pair is not atomic
// against a concurrent ingest of the same document; bulk uploads are assumed
// non-concurrent.
func (s *QuestionService) IngestParsed(parsed []ParsedQuestion, courseID, examType string) (*IngestSummary, error) {
	summary := &IngestSummary{}
	for _, p := range parsed {
		var count int64
		err := s.db.Model(&models.Question{}).
			Where("text = ? AND exam_type = ?", p.Text, examType).
			Count(&count).Error
		if err != nil {
			s.log.Printf("Error checking for existing question %q: %v", p.Text, err)
			summary.Skipped++
			continue
		}
		if count > 0 {
			s.log.Printf("Question already exists, skipping: %q", p.Text)
			summary.Skipped++
			continue
		}

		question := models.Question{
			Text:          p.Text,
			Options:       models.Options{Labeled: p.Options},
			CorrectOption: p.CorrectOption,
			CourseID:      courseID,
			ExamType:      examType,
		}
		if err := s.db.Create(&question).Error; err != nil {
			s.log.Printf("Error saving question %q: %v", p.Text, err)
			summary.Skipped++
			continue
		}
		summary.Created = append(summary.Created, question)
	}
	return summary, nil
}

func (s *QuestionService) Update(id string, patch QuestionPatch) (*models.Question, error) {
	question, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Text != nil {
		question.Text = *patch.Text
	}
	if patch.Options != nil {
		question.Options = *patch.Options
	}
	if patch.CorrectOption != nil {
		question.CorrectOption = *patch.CorrectOption
	}
	if patch.CourseID != nil {
		question.CourseID = *patch.CourseID
	}
	if patch.ExamType != nil {
		question.ExamType = *patch.ExamType
	}

	if err := s.db.Save(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(id string) error {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return &NotFoundError{Msg: fmt.Sprintf("Question with id %s does not exist", id)}
	}

	result := s.db.Delete(&models.Question{}, "id = ?", questionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Msg: fmt.Sprintf("Question with id %s does not exist", id)}
	}
	return nil
}
