package model

import (
	"time"

	"github.com/google/uuid"
)

type ParticipationStatus string

const (
	ParticipationStatusInvited   ParticipationStatus = "invited"
	ParticipationStatusCompleted ParticipationStatus = "completed"
)

// utcTimestampFormat matches the wire format used for completed_at and
// created_at timestamps: microsecond precision, explicit Z suffix.
const utcTimestampFormat = "2006-01-02T15:04:05.000000Z"

type Participation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	QuizID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_participations_quiz_participant" json:"quiz_id"`
	Quiz          Quiz       `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	ParticipantID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_participations_quiz_participant" json:"participant_id"`
	Participant   User       `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	InvitationID  *uuid.UUID `gorm:"type:uuid" json:"invitation_id,omitempty"`
	Score         *int       `json:"score,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewParticipation enrolls a participant in a quiz. The invitation reference
// is optional: quiz creators enroll without one.
func NewParticipation(quizID, participantID uuid.UUID, invitationID *uuid.UUID) *Participation {
	return &Participation{
		ID:            uuid.New(),
		QuizID:        quizID,
		ParticipantID: participantID,
		InvitationID:  invitationID,
	}
}

func (p *Participation) Status() ParticipationStatus {
	if p.CompletedAt != nil {
		return ParticipationStatusCompleted
	}
	return ParticipationStatusInvited
}

func (p *Participation) IsCompleted() bool {
	return p.CompletedAt != nil
}

// Complete records the final score and moves the participation to its
// terminal state. The transition is one-way; callers must check IsCompleted
// before invoking it.
func (p *Participation) Complete(score int) {
	now := time.Now().UTC()
	p.Score = &score
	p.CompletedAt = &now
}

func (p *Participation) FormattedCompletedAt() string {
	if p.CompletedAt == nil {
		return ""
	}
	return p.CompletedAt.UTC().Format(utcTimestampFormat)
}

func (p *Participation) FormattedCreatedAt() string {
	return p.CreatedAt.UTC().Format(utcTimestampFormat)
}
