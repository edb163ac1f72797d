package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewQuiz(t *testing.T) {
	creator := uuid.New()
	quiz, err := NewQuiz("Capitals of Europe", "A short geography quiz", creator)
	if err != nil {
		t.Fatalf("new quiz failed: %v", err)
	}
	if quiz.ID == uuid.Nil {
		t.Fatalf("expected a generated id")
	}
	if quiz.CreatorID != creator {
		t.Fatalf("quiz not attributed to creator")
	}
}

func TestNewQuizRejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := NewQuiz(title, "", uuid.New())

		var emptyTitle *EmptyQuizTitleError
		if !errors.As(err, &emptyTitle) {
			t.Fatalf("title %q: expected EmptyQuizTitleError, got %v", title, err)
		}
	}
}

func TestNewQuizTitleLengthBoundary(t *testing.T) {
	if _, err := NewQuiz(strings.Repeat("x", 200), "", uuid.New()); err != nil {
		t.Fatalf("200-character title must be accepted, got %v", err)
	}

	// The limit counts characters, not bytes.
	if _, err := NewQuiz(strings.Repeat("é", 200), "", uuid.New()); err != nil {
		t.Fatalf("200-character multi-byte title must be accepted, got %v", err)
	}

	_, err := NewQuiz(strings.Repeat("x", 201), "", uuid.New())
	var tooLong *InvalidQuizTitleLengthError
	if !errors.As(err, &tooLong) {
		t.Fatalf("expected InvalidQuizTitleLengthError, got %v", err)
	}
	if tooLong.MaxLength != 200 {
		t.Fatalf("expected max length 200 in error, got %d", tooLong.MaxLength)
	}
}

func TestQuizTotals(t *testing.T) {
	quiz := &Quiz{
		Questions: []Question{
			{Points: 2},
			{Points: 3},
		},
	}
	if quiz.TotalQuestions() != 2 {
		t.Fatalf("expected 2 questions, got %d", quiz.TotalQuestions())
	}
	if quiz.TotalPossiblePoints() != 5 {
		t.Fatalf("expected 5 possible points, got %d", quiz.TotalPossiblePoints())
	}

	empty := &Quiz{}
	if empty.TotalQuestions() != 0 || empty.TotalPossiblePoints() != 0 {
		t.Fatalf("empty quiz must report zero totals")
	}
}
