package service

import (
	"math"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/dto"
	"github.com/quizforge/quizforge/internal/model"
	"github.com/quizforge/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

// ProgressService serves the reporting views over participations: a user's
// own progress, the creator's progress summary, and the score board.
type ProgressService interface {
	GetUserQuizProgress(quizID, requesterID uuid.UUID) (*dto.UserQuizProgressResponse, error)
	GetCreatorQuizProgress(quizID, requesterID uuid.UUID) (*dto.CreatorQuizProgressResponse, error)
	GetQuizScores(quizID, requesterID uuid.UUID) (*dto.QuizScoresResponse, error)
}

type progressService struct {
	quizRepo            repository.QuizRepository
	participationFinder repository.ParticipationFinder
}

func NewProgressService(quizRepo repository.QuizRepository, participationFinder repository.ParticipationFinder) ProgressService {
	return &progressService{quizRepo: quizRepo, participationFinder: participationFinder}
}

func (s *progressService) GetUserQuizProgress(quizID, requesterID uuid.UUID) (*dto.UserQuizProgressResponse, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	participation, err := s.participationFinder.FindUserParticipationForQuiz(quizID, requesterID)
	if err != nil {
		return nil, err
	}

	var scorePercentage *float64
	if participation.Score != nil && quiz.TotalPossiblePoints() > 0 {
		pct := float64(*participation.Score) / float64(quiz.TotalPossiblePoints()) * 100
		pct = math.Round(pct*100) / 100
		scorePercentage = &pct
	}

	return &dto.UserQuizProgressResponse{
		QuizID:              quiz.ID,
		QuizTitle:           quiz.Title,
		QuizDescription:     quiz.Description,
		TotalQuestions:      quiz.TotalQuestions(),
		TotalPossiblePoints: quiz.TotalPossiblePoints(),
		QuizCreatedAt:       quiz.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z"),
		Participation: dto.ParticipationProgressDTO{
			Status:          string(participation.Status),
			InvitedAt:       participation.InvitedAt,
			CompletedAt:     participation.CompletedAt,
			Score:           participation.Score,
			ScorePercentage: scorePercentage,
		},
	}, nil
}

func (s *progressService) GetCreatorQuizProgress(quizID, requesterID uuid.UUID) (*dto.CreatorQuizProgressResponse, error) {
	quiz, err := s.requireCreator(quizID, requesterID)
	if err != nil {
		return nil, err
	}

	summary, err := s.participationFinder.FindCreatorQuizProgressSummary(quizID)
	if err != nil {
		return nil, err
	}

	return &dto.CreatorQuizProgressResponse{
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		InvitationStats: dto.InvitationStatsDTO{
			TotalSent:          summary.InvitationStats.TotalSent,
			TotalAccepted:      summary.InvitationStats.TotalAccepted,
			AcceptanceRate:     summary.InvitationStats.AcceptanceRate,
			PendingInvitations: summary.InvitationStats.PendingInvitations,
		},
		ParticipationStats: dto.ParticipationStatsDTO{
			TotalParticipants:     summary.ParticipationStats.TotalParticipants,
			CompletedParticipants: summary.ParticipationStats.CompletedParticipants,
			CompletionRate:        summary.ParticipationStats.CompletionRate,
		},
	}, nil
}

func (s *progressService) GetQuizScores(quizID, requesterID uuid.UUID) (*dto.QuizScoresResponse, error) {
	quiz, err := s.requireCreator(quizID, requesterID)
	if err != nil {
		return nil, err
	}

	summary, err := s.participationFinder.FindQuizScoresSummary(quizID)
	if err != nil {
		return nil, err
	}

	log.Info().Str("quizID", quizID.String()).Int("participants", summary.TotalParticipants).Msg("Retrieved quiz scores summary")

	return &dto.QuizScoresResponse{
		QuizID:            quiz.ID,
		QuizTitle:         quiz.Title,
		TotalParticipants: summary.TotalParticipants,
		AverageScore:      summary.AverageScore,
		MaxScore:          summary.MaxScore,
		MinScore:          summary.MinScore,
		TopScorerEmail:    summary.TopScorerEmail,
	}, nil
}

// requireCreator restricts the creator-only reporting views.
func (s *progressService) requireCreator(quizID, requesterID uuid.UUID) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	if quiz.CreatorID != requesterID {
		return nil, &model.UnauthorizedQuizAccessError{QuizID: quizID, UserID: requesterID}
	}
	return quiz, nil
}
