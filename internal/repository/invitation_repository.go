package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository interface {
	FindByID(id uuid.UUID) (*model.Invitation, error)
	ExistsByQuizAndInvited(quizID, invitedID uuid.UUID) (bool, error)
	Save(invitation *model.Invitation) error
}

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) FindByID(id uuid.UUID) (*model.Invitation, error) {
	var invitation model.Invitation
	err := r.db.
		Preload("Quiz").
		Preload("Invited").
		First(&invitation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.InvitationNotFoundError{InvitationID: id}
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) ExistsByQuizAndInvited(quizID, invitedID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Invitation{}).
		Where("quiz_id = ? AND invited_id = ?", quizID, invitedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *invitationRepository) Save(invitation *model.Invitation) error {
	if err := r.db.Omit(clause.Associations).Save(invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &model.InvitationAlreadyExistsError{
				QuizID:    invitation.QuizID,
				InvitedID: invitation.InvitedID,
			}
		}
		return err
	}
	return nil
}
