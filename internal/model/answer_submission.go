package model

import (
	"time"

	"github.com/google/uuid"
)

// AnswerSubmission records one participant's choice for one question within
// one participation. At most one submission may exist per (participation,
// question); the unique index is the final arbiter under concurrent writes.
type AnswerSubmission struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	ParticipationID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submissions_participation_question" json:"participation_id"`
	QuestionID       uint      `gorm:"not null;uniqueIndex:idx_submissions_participation_question" json:"question_id"`
	Question         Question  `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	SelectedAnswerID uint      `gorm:"not null" json:"selected_answer_id"`
	SelectedAnswer   Answer    `gorm:"foreignKey:SelectedAnswerID" json:"selected_answer,omitempty"`
	SubmittedAt      time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

// IsCorrect is derived from the selected answer; the flag is not stored.
func (s *AnswerSubmission) IsCorrect() bool {
	return s.SelectedAnswer.IsCorrect
}
