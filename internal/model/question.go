package model

import (
	"time"

	"github.com/google/uuid"
)

// RequiredNumberOfAnswers is enforced at quiz creation time: every question
// carries exactly this many answers, exactly one of them correct.
const RequiredNumberOfAnswers = 3

type Question struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_questions_quiz_order" json:"quiz_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Order     int       `gorm:"not null;uniqueIndex:idx_questions_quiz_order" json:"order"`
	Points    int       `gorm:"not null;default:1" json:"points"`
	Answers   []Answer  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
