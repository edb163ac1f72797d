package service

import (
	"github.com/quizforge/quizforge/internal/model"
	"github.com/quizforge/quizforge/internal/repository"
)

// SubmittedAnswer is the raw (question, answer) pair as supplied by the
// caller, before any validation against the quiz.
type SubmittedAnswer struct {
	QuestionID uint
	AnswerID   uint
}

// QuizScoreResult carries the computed score along with the constructed,
// not yet persisted, answer submissions.
type QuizScoreResult struct {
	TotalScore         int
	TotalPossibleScore int
	AnswerSubmissions  []model.AnswerSubmission
}

// ScoreCalculator validates a list of submitted answers against a quiz and
// computes the participation score. It performs no writes.
type ScoreCalculator interface {
	Calculate(quiz *model.Quiz, participation *model.Participation, submittedAnswers []SubmittedAnswer) (*QuizScoreResult, error)
}

type scoreCalculator struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

func NewScoreCalculator(questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) ScoreCalculator {
	return &scoreCalculator{questionRepo: questionRepo, answerRepo: answerRepo}
}

func (c *scoreCalculator) Calculate(
	quiz *model.Quiz,
	participation *model.Participation,
	submittedAnswers []SubmittedAnswer,
) (*QuizScoreResult, error) {
	if err := validateNoDuplicateSubmissions(submittedAnswers); err != nil {
		return nil, err
	}

	questionsByID, answersByID, err := c.fetchQuizData(submittedAnswers)
	if err != nil {
		return nil, err
	}

	submissions, err := createAnswerSubmissions(submittedAnswers, questionsByID, answersByID, quiz, participation)
	if err != nil {
		return nil, err
	}

	return calculateFinalScore(submissions), nil
}

// validateNoDuplicateSubmissions fails on the first question id seen twice,
// in the caller's submission order.
func validateNoDuplicateSubmissions(submittedAnswers []SubmittedAnswer) error {
	answeredQuestionIDs := make(map[uint]struct{}, len(submittedAnswers))
	for _, submission := range submittedAnswers {
		if _, seen := answeredQuestionIDs[submission.QuestionID]; seen {
			return &model.DuplicateAnswerSubmissionError{QuestionID: submission.QuestionID}
		}
		answeredQuestionIDs[submission.QuestionID] = struct{}{}
	}
	return nil
}

// fetchQuizData loads the referenced questions and answers in two batched
// lookups, avoiding a round trip per submission.
func (c *scoreCalculator) fetchQuizData(
	submittedAnswers []SubmittedAnswer,
) (map[uint]model.Question, map[uint]model.Answer, error) {
	questionIDs := make([]uint, 0, len(submittedAnswers))
	answerIDs := make([]uint, 0, len(submittedAnswers))
	for _, submission := range submittedAnswers {
		questionIDs = append(questionIDs, submission.QuestionID)
		answerIDs = append(answerIDs, submission.AnswerID)
	}

	questionsByID, err := c.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		return nil, nil, err
	}
	answersByID, err := c.answerRepo.FindByIDs(answerIDs)
	if err != nil {
		return nil, nil, err
	}
	return questionsByID, answersByID, nil
}

func createAnswerSubmissions(
	submittedAnswers []SubmittedAnswer,
	questionsByID map[uint]model.Question,
	answersByID map[uint]model.Answer,
	quiz *model.Quiz,
	participation *model.Participation,
) ([]model.AnswerSubmission, error) {
	submissions := make([]model.AnswerSubmission, 0, len(submittedAnswers))

	for _, submitted := range submittedAnswers {
		question, ok := questionsByID[submitted.QuestionID]
		if !ok || question.QuizID != quiz.ID {
			return nil, &model.InvalidQuestionForQuizError{QuestionID: submitted.QuestionID, QuizID: quiz.ID}
		}

		answer, ok := answersByID[submitted.AnswerID]
		if !ok || answer.QuestionID != question.ID {
			return nil, &model.InvalidAnswerForQuestionError{AnswerID: submitted.AnswerID, QuestionID: submitted.QuestionID}
		}

		submissions = append(submissions, model.AnswerSubmission{
			ParticipationID:  participation.ID,
			QuestionID:       question.ID,
			Question:         question,
			SelectedAnswerID: answer.ID,
			SelectedAnswer:   answer,
		})
	}

	return submissions, nil
}

func calculateFinalScore(submissions []model.AnswerSubmission) *QuizScoreResult {
	totalScore := 0
	totalPossibleScore := 0

	for i := range submissions {
		totalPossibleScore += submissions[i].Question.Points
	}
	for i := range submissions {
		if submissions[i].IsCorrect() {
			totalScore += submissions[i].Question.Points
		}
	}

	return &QuizScoreResult{
		TotalScore:         totalScore,
		TotalPossibleScore: totalPossibleScore,
		AnswerSubmissions:  submissions,
	}
}
