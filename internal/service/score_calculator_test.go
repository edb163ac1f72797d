package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/model"
)

// twoQuestionQuiz builds a quiz with two questions worth 2 and 3 points.
// Answer IDs: question 1 has answers 11 (correct), 12, 13; question 2 has
// answers 21 (correct), 22, 23.
func twoQuestionQuiz(questionRepo *fakeQuestionRepo, answerRepo *fakeAnswerRepo) *model.Quiz {
	quiz := &model.Quiz{ID: uuid.New(), Title: "Capitals of Europe"}

	q1Answers := []model.Answer{
		{ID: 11, QuestionID: 1, Text: "Paris", IsCorrect: true, Order: 1},
		{ID: 12, QuestionID: 1, Text: "Lyon", Order: 2},
		{ID: 13, QuestionID: 1, Text: "Nice", Order: 3},
	}
	q2Answers := []model.Answer{
		{ID: 21, QuestionID: 2, Text: "Rome", IsCorrect: true, Order: 1},
		{ID: 22, QuestionID: 2, Text: "Milan", Order: 2},
		{ID: 23, QuestionID: 2, Text: "Turin", Order: 3},
	}

	q1 := model.Question{ID: 1, QuizID: quiz.ID, Text: "Capital of France?", Order: 1, Points: 2, Answers: q1Answers}
	q2 := model.Question{ID: 2, QuizID: quiz.ID, Text: "Capital of Italy?", Order: 2, Points: 3, Answers: q2Answers}
	quiz.Questions = []model.Question{q1, q2}

	questionRepo.questions[1] = q1
	questionRepo.questions[2] = q2
	for _, answer := range append(q1Answers, q2Answers...) {
		answerRepo.answers[answer.ID] = answer
	}

	return quiz
}

func TestCalculateAllCorrect(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	result, err := calculator.Calculate(quiz, participation, []SubmittedAnswer{
		{QuestionID: 1, AnswerID: 11},
		{QuestionID: 2, AnswerID: 21},
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if result.TotalScore != 5 || result.TotalPossibleScore != 5 {
		t.Fatalf("expected 5/5, got %d/%d", result.TotalScore, result.TotalPossibleScore)
	}
	if len(result.AnswerSubmissions) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(result.AnswerSubmissions))
	}
	if result.AnswerSubmissions[0].ParticipationID != participation.ID {
		t.Fatalf("submission not linked to participation")
	}
}

func TestCalculateMixedAnswers(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	result, err := calculator.Calculate(quiz, participation, []SubmittedAnswer{
		{QuestionID: 1, AnswerID: 12}, // wrong
		{QuestionID: 2, AnswerID: 21}, // correct
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if result.TotalScore != 3 {
		t.Fatalf("expected score 3, got %d", result.TotalScore)
	}
	if result.TotalPossibleScore != 5 {
		t.Fatalf("expected possible score 5, got %d", result.TotalPossibleScore)
	}
}

func TestCalculateAllIncorrect(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	result, err := calculator.Calculate(quiz, participation, []SubmittedAnswer{
		{QuestionID: 1, AnswerID: 13},
		{QuestionID: 2, AnswerID: 22},
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if result.TotalScore != 0 {
		t.Fatalf("expected score 0, got %d", result.TotalScore)
	}
}

func TestCalculateRejectsDuplicateQuestion(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	_, err := calculator.Calculate(quiz, participation, []SubmittedAnswer{
		{QuestionID: 1, AnswerID: 11},
		{QuestionID: 1, AnswerID: 12},
	})

	var dupErr *model.DuplicateAnswerSubmissionError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateAnswerSubmissionError, got %v", err)
	}
	if dupErr.QuestionID != 1 {
		t.Fatalf("expected duplicate question 1, got %d", dupErr.QuestionID)
	}
	if questionRepo.findCalls != 0 || answerRepo.findCalls != 0 {
		t.Fatalf("duplicate check must run before any lookup, got %d question and %d answer lookups",
			questionRepo.findCalls, answerRepo.findCalls)
	}
}

func TestCalculateRejectsQuestionFromAnotherQuiz(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	// Question 99 belongs to a different quiz.
	questionRepo.questions[99] = model.Question{ID: 99, QuizID: uuid.New(), Text: "Stray", Order: 1, Points: 1}

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	_, err := calculator.Calculate(quiz, participation, []SubmittedAnswer{
		{QuestionID: 99, AnswerID: 11},
		{QuestionID: 2, AnswerID: 21},
	})

	var invalidErr *model.InvalidQuestionForQuizError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidQuestionForQuizError, got %v", err)
	}
	if invalidErr.QuestionID != 99 || invalidErr.QuizID != quiz.ID {
		t.Fatalf("unexpected error fields: %+v", invalidErr)
	}
}

func TestCalculateRejectsUnknownQuestion(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	_, err := calculator.Calculate(quiz, participation, []SubmittedAnswer{
		{QuestionID: 404, AnswerID: 11},
	})

	var invalidErr *model.InvalidQuestionForQuizError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidQuestionForQuizError, got %v", err)
	}
}

func TestCalculateRejectsAnswerFromAnotherQuestion(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	_, err := calculator.Calculate(quiz, participation, []SubmittedAnswer{
		{QuestionID: 1, AnswerID: 21}, // answer 21 belongs to question 2
		{QuestionID: 2, AnswerID: 22},
	})

	var invalidErr *model.InvalidAnswerForQuestionError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidAnswerForQuestionError, got %v", err)
	}
	if invalidErr.AnswerID != 21 || invalidErr.QuestionID != 1 {
		t.Fatalf("unexpected error fields: %+v", invalidErr)
	}
}

func TestCalculateEmptySubmissionYieldsZeroResult(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	result, err := calculator.Calculate(quiz, participation, nil)
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if result.TotalScore != 0 || result.TotalPossibleScore != 0 || len(result.AnswerSubmissions) != 0 {
		t.Fatalf("expected empty zero result, got %+v", result)
	}
}

func TestCalculateUsesBatchedLookups(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	quiz := twoQuestionQuiz(questionRepo, answerRepo)
	participation := model.NewParticipation(quiz.ID, uuid.New(), nil)

	calculator := NewScoreCalculator(questionRepo, answerRepo)
	_, err := calculator.Calculate(quiz, participation, []SubmittedAnswer{
		{QuestionID: 1, AnswerID: 11},
		{QuestionID: 2, AnswerID: 21},
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if questionRepo.findCalls != 1 {
		t.Fatalf("expected one batched question lookup, got %d", questionRepo.findCalls)
	}
	if answerRepo.findCalls != 1 {
		t.Fatalf("expected one batched answer lookup, got %d", answerRepo.findCalls)
	}
}
