package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxQuizTitleLength = 200

type Quiz struct {
	ID          uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	Title       string     `gorm:"size:200;not null;uniqueIndex:idx_quizzes_title_creator" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_quizzes_title_creator;index" json:"creator_id"`
	Creator     User       `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Questions   []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewQuiz validates the title invariants before any persistence happens.
func NewQuiz(title, description string, creatorID uuid.UUID) (*Quiz, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &EmptyQuizTitleError{}
	}
	if utf8.RuneCountInString(title) > maxQuizTitleLength {
		return nil, &InvalidQuizTitleLengthError{Title: title, MaxLength: maxQuizTitleLength}
	}

	return &Quiz{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
	}, nil
}

// TotalQuestions counts the questions loaded with the quiz.
func (q *Quiz) TotalQuestions() int {
	return len(q.Questions)
}

// TotalPossiblePoints is the sum of points over all questions of the quiz.
func (q *Quiz) TotalPossiblePoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
