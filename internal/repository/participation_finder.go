package repository

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/model"
	"gorm.io/gorm"
)

// ParticipationFinder answers reporting queries that aggregate over
// participations and invitations instead of loading them row by row.
type ParticipationFinder interface {
	FindQuizScoresSummary(quizID uuid.UUID) (*model.QuizScoresSummary, error)
	FindCreatorQuizProgressSummary(quizID uuid.UUID) (*model.QuizProgressSummary, error)
	FindUserParticipationForQuiz(quizID, userID uuid.UUID) (*model.UserParticipationData, error)
}

type participationFinder struct {
	db *gorm.DB
}

func NewParticipationFinder(db *gorm.DB) ParticipationFinder {
	return &participationFinder{db: db}
}

func (f *participationFinder) FindQuizScoresSummary(quizID uuid.UUID) (*model.QuizScoresSummary, error) {
	var stats struct {
		TotalParticipants int
		AverageScore      float64
		MaxScore          float64
		MinScore          float64
	}
	err := f.db.Model(&model.Participation{}).
		Select(
			"COUNT(id) AS total_participants, "+
				"COALESCE(AVG(score) FILTER (WHERE completed_at IS NOT NULL AND score IS NOT NULL), 0) AS average_score, "+
				"COALESCE(MAX(score) FILTER (WHERE completed_at IS NOT NULL AND score IS NOT NULL), 0) AS max_score, "+
				"COALESCE(MIN(score) FILTER (WHERE completed_at IS NOT NULL AND score IS NOT NULL), 0) AS min_score").
		Where("quiz_id = ?", quizID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	var topScorer model.Participation
	topScorerEmail := ""
	err = f.db.
		Preload("Participant").
		Where("quiz_id = ? AND completed_at IS NOT NULL AND score IS NOT NULL", quizID).
		Order("score DESC").
		First(&topScorer).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		topScorerEmail = topScorer.Participant.Email
	}

	return &model.QuizScoresSummary{
		TotalParticipants: stats.TotalParticipants,
		AverageScore:      roundToTwo(stats.AverageScore),
		MaxScore:          roundToTwo(stats.MaxScore),
		MinScore:          roundToTwo(stats.MinScore),
		TopScorerEmail:    topScorerEmail,
	}, nil
}

func (f *participationFinder) FindCreatorQuizProgressSummary(quizID uuid.UUID) (*model.QuizProgressSummary, error) {
	var invitationStats struct {
		TotalSent     int
		TotalAccepted int
	}
	err := f.db.Model(&model.Invitation{}).
		Select("COUNT(id) AS total_sent, COUNT(id) FILTER (WHERE accepted_at IS NOT NULL) AS total_accepted").
		Where("quiz_id = ?", quizID).
		Scan(&invitationStats).Error
	if err != nil {
		return nil, err
	}

	var participationStats struct {
		TotalParticipants     int
		CompletedParticipants int
	}
	err = f.db.Model(&model.Participation{}).
		Select("COUNT(id) AS total_participants, COUNT(id) FILTER (WHERE completed_at IS NOT NULL) AS completed_participants").
		Where("quiz_id = ?", quizID).
		Scan(&participationStats).Error
	if err != nil {
		return nil, err
	}

	acceptanceRate := 0.0
	if invitationStats.TotalSent > 0 {
		acceptanceRate = float64(invitationStats.TotalAccepted) / float64(invitationStats.TotalSent) * 100
	}
	completionRate := 0.0
	if participationStats.TotalParticipants > 0 {
		completionRate = float64(participationStats.CompletedParticipants) / float64(participationStats.TotalParticipants) * 100
	}

	return &model.QuizProgressSummary{
		InvitationStats: model.InvitationStats{
			TotalSent:          invitationStats.TotalSent,
			TotalAccepted:      invitationStats.TotalAccepted,
			AcceptanceRate:     roundToTwo(acceptanceRate),
			PendingInvitations: invitationStats.TotalSent - invitationStats.TotalAccepted,
		},
		ParticipationStats: model.ParticipationStats{
			TotalParticipants:     participationStats.TotalParticipants,
			CompletedParticipants: participationStats.CompletedParticipants,
			CompletionRate:        roundToTwo(completionRate),
		},
	}, nil
}

func (f *participationFinder) FindUserParticipationForQuiz(quizID, userID uuid.UUID) (*model.UserParticipationData, error) {
	var participation model.Participation
	err := f.db.
		Where("quiz_id = ? AND participant_id = ?", quizID, userID).
		First(&participation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.ParticipationNotFoundError{QuizID: quizID, ParticipantID: userID}
		}
		return nil, err
	}

	invitedAt := ""
	if participation.InvitationID != nil {
		var invitation model.Invitation
		if err := f.db.First(&invitation, "id = ?", *participation.InvitationID).Error; err == nil {
			invitedAt = invitation.FormattedInvitedAt()
		}
	}

	return &model.UserParticipationData{
		Status:      participation.Status(),
		InvitedAt:   invitedAt,
		StartedAt:   participation.FormattedCreatedAt(),
		CompletedAt: participation.FormattedCompletedAt(),
		Score:       participation.Score,
	}, nil
}

func roundToTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
