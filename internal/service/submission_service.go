package service

import (
	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/dto"
	"github.com/quizforge/quizforge/internal/model"
	"github.com/quizforge/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubmitQuizAnswersCommand is one "submit quiz answers" request for a
// (quiz, participant) pair. The answer order is the caller's.
type SubmitQuizAnswersCommand struct {
	ParticipantID uuid.UUID
	QuizID        uuid.UUID
	Answers       []SubmittedAnswer
}

// SubmissionService orchestrates quiz answer submission: lookups, state and
// completeness checks, scoring, and the atomic completion write.
type SubmissionService interface {
	SubmitQuizAnswers(cmd SubmitQuizAnswersCommand) (*dto.SubmitQuizAnswersResponse, error)
}

type submissionService struct {
	quizRepo          repository.QuizRepository
	userRepo          repository.UserRepository
	participationRepo repository.ParticipationRepository
	scoreCalculator   ScoreCalculator
	txManager         repository.TransactionManager
}

func NewSubmissionService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	participationRepo repository.ParticipationRepository,
	scoreCalculator ScoreCalculator,
	txManager repository.TransactionManager,
) SubmissionService {
	return &submissionService{
		quizRepo:          quizRepo,
		userRepo:          userRepo,
		participationRepo: participationRepo,
		scoreCalculator:   scoreCalculator,
		txManager:         txManager,
	}
}

func (s *submissionService) SubmitQuizAnswers(cmd SubmitQuizAnswersCommand) (*dto.SubmitQuizAnswersResponse, error) {
	log.Info().
		Str("quizID", cmd.QuizID.String()).
		Str("participantID", cmd.ParticipantID.String()).
		Int("answerCount", len(cmd.Answers)).
		Msg("Submitting quiz answers")

	quiz, err := s.quizRepo.FindByIDWithQuestions(cmd.QuizID)
	if err != nil {
		return nil, err
	}

	participant, err := s.userRepo.FindByID(cmd.ParticipantID)
	if err != nil {
		return nil, err
	}

	participation, err := s.participationRepo.FindByQuizAndParticipant(quiz.ID, participant.ID)
	if err != nil {
		return nil, err
	}

	// Resubmission is rejected, never silently accepted.
	if participation.IsCompleted() {
		return nil, &model.QuizAlreadyCompletedError{QuizID: quiz.ID}
	}

	if len(cmd.Answers) != quiz.TotalQuestions() {
		return nil, &model.IncompleteQuizSubmissionError{
			ExpectedAnswers: quiz.TotalQuestions(),
			ReceivedAnswers: len(cmd.Answers),
		}
	}

	result, err := s.scoreCalculator.Calculate(quiz, participation, cmd.Answers)
	if err != nil {
		return nil, err
	}

	participation.Complete(result.TotalScore)

	// The submissions and the completed participation commit together or
	// not at all.
	err = s.txManager.Transaction(func(tx repository.Store) error {
		if err := tx.AnswerSubmissions().BulkSave(result.AnswerSubmissions); err != nil {
			return err
		}
		return tx.Participations().Save(participation)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("quizID", quiz.ID.String()).
		Str("participantID", participant.ID.String()).
		Int("score", result.TotalScore).
		Msg("Quiz completed")

	return &dto.SubmitQuizAnswersResponse{
		Message:            "Quiz completed successfully",
		ParticipationID:    participation.ID,
		QuizID:             quiz.ID,
		QuizTitle:          quiz.Title,
		Score:              result.TotalScore,
		TotalPossibleScore: result.TotalPossibleScore,
		CompletedAt:        participation.FormattedCompletedAt(),
	}, nil
}
