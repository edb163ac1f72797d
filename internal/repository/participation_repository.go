package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipationRepository interface {
	FindByQuizAndParticipant(quizID, participantID uuid.UUID) (*model.Participation, error)
	FindAllByParticipant(participantID uuid.UUID) ([]model.Participation, error)
	Save(participation *model.Participation) error
}

type participationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) FindByQuizAndParticipant(quizID, participantID uuid.UUID) (*model.Participation, error) {
	var participation model.Participation
	err := r.db.
		Where("quiz_id = ? AND participant_id = ?", quizID, participantID).
		First(&participation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.ParticipationNotFoundError{QuizID: quizID, ParticipantID: participantID}
		}
		return nil, err
	}
	return &participation, nil
}

func (r *participationRepository) FindAllByParticipant(participantID uuid.UUID) ([]model.Participation, error) {
	var participations []model.Participation
	err := r.db.
		Preload("Quiz").
		Where("participant_id = ?", participantID).
		Order("created_at DESC").
		Find(&participations).Error
	return participations, err
}

func (r *participationRepository) Save(participation *model.Participation) error {
	if err := r.db.Omit(clause.Associations).Save(participation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &model.ParticipationAlreadyExistsError{
				QuizID:        participation.QuizID,
				ParticipantID: participation.ParticipantID,
			}
		}
		return err
	}
	return nil
}
