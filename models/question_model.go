package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Text          string    `gorm:"type:text;not null" json:"text"`
	CourseID      string    `gorm:"size:50" json:"course_id"`
	ExamType      string    `gorm:"size:20" json:"exam_type"`
	Options       Options   `gorm:"type:jsonb" json:"options"`
	CorrectOption string    `gorm:"size:5;not null" json:"correct_option"`
}

// BeforeCreate assigns the id in application code so the model behaves the
// same on Postgres and on the SQLite driver used in tests.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
