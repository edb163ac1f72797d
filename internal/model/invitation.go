package model

import (
	"time"

	"github.com/google/uuid"
)

type Invitation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	QuizID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_invitations_quiz_invited" json:"quiz_id"`
	Quiz       Quiz       `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	InvitedID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_invitations_quiz_invited" json:"invited_id"`
	Invited    User       `gorm:"foreignKey:InvitedID" json:"invited,omitempty"`
	InviterID  uuid.UUID  `gorm:"type:uuid;not null" json:"inviter_id"`
	InvitedAt  time.Time  `gorm:"autoCreateTime" json:"invited_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

func NewInvitation(quizID, invitedID, inviterID uuid.UUID) *Invitation {
	return &Invitation{
		ID:        uuid.New(),
		QuizID:    quizID,
		InvitedID: invitedID,
		InviterID: inviterID,
	}
}

func (i *Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}

func (i *Invitation) CanBeAcceptedBy(userID uuid.UUID) bool {
	return i.InvitedID == userID
}

func (i *Invitation) Accept() {
	now := time.Now().UTC()
	i.AcceptedAt = &now
}

func (i *Invitation) FormattedInvitedAt() string {
	return i.InvitedAt.UTC().Format(utcTimestampFormat)
}
