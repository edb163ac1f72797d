package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/dto"
	"github.com/quizforge/quizforge/internal/model"
	"github.com/quizforge/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

// InvitationSender dispatches the invitation notification. Delivery (email
// templating, queueing) lives behind this interface.
type InvitationSender interface {
	SendInvitation(invitationID uuid.UUID, acceptanceLink string) error
}

type logInvitationSender struct{}

// NewLogInvitationSender returns a sender that only records the dispatch.
func NewLogInvitationSender() InvitationSender {
	return &logInvitationSender{}
}

func (s *logInvitationSender) SendInvitation(invitationID uuid.UUID, acceptanceLink string) error {
	log.Info().
		Str("invitationID", invitationID.String()).
		Str("acceptanceLink", acceptanceLink).
		Msg("Invitation dispatched")
	return nil
}

type SendInvitationCommand struct {
	QuizID           uuid.UUID
	InviterID        uuid.UUID
	ParticipantEmail string
}

type AcceptInvitationCommand struct {
	InvitationID uuid.UUID
	UserID       uuid.UUID
}

type InvitationService interface {
	SendInvitation(cmd SendInvitationCommand) (*dto.SendInvitationResponse, error)
	AcceptInvitation(cmd AcceptInvitationCommand) (*dto.AcceptInvitationResponse, error)
}

type invitationService struct {
	quizRepo       repository.QuizRepository
	userRepo       repository.UserRepository
	invitationRepo repository.InvitationRepository
	sender         InvitationSender
	txManager      repository.TransactionManager
	baseURL        string
}

func NewInvitationService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	invitationRepo repository.InvitationRepository,
	sender InvitationSender,
	txManager repository.TransactionManager,
	baseURL string,
) InvitationService {
	return &invitationService{
		quizRepo:       quizRepo,
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		sender:         sender,
		txManager:      txManager,
		baseURL:        baseURL,
	}
}

func (s *invitationService) SendInvitation(cmd SendInvitationCommand) (*dto.SendInvitationResponse, error) {
	quiz, err := s.quizRepo.FindByID(cmd.QuizID)
	if err != nil {
		return nil, err
	}
	if quiz.CreatorID != cmd.InviterID {
		return nil, &model.OnlyQuizCreatorCanSendInvitationError{QuizID: quiz.ID, UserID: cmd.InviterID}
	}

	invited, err := s.userRepo.FindByEmail(cmd.ParticipantEmail)
	if err != nil {
		return nil, err
	}
	if invited.ID == quiz.CreatorID {
		return nil, &model.CreatorCannotBeInvitedError{QuizID: quiz.ID}
	}

	invitation := model.NewInvitation(quiz.ID, invited.ID, cmd.InviterID)
	acceptanceLink := fmt.Sprintf("%s/invitations/%s/accept", s.baseURL, invitation.ID)

	err = s.txManager.Transaction(func(tx repository.Store) error {
		if err := tx.Invitations().Save(invitation); err != nil {
			return err
		}
		return s.sender.SendInvitation(invitation.ID, acceptanceLink)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("invitationID", invitation.ID.String()).
		Str("participantEmail", cmd.ParticipantEmail).
		Str("quizTitle", quiz.Title).
		Msg("Invitation created and queued")

	return &dto.SendInvitationResponse{
		InvitationID:             invitation.ID,
		QuizTitle:                quiz.Title,
		ParticipantEmail:         cmd.ParticipantEmail,
		InvitedAt:                invitation.FormattedInvitedAt(),
		InvitationAcceptanceLink: acceptanceLink,
	}, nil
}

func (s *invitationService) AcceptInvitation(cmd AcceptInvitationCommand) (*dto.AcceptInvitationResponse, error) {
	log.Info().
		Str("invitationID", cmd.InvitationID.String()).
		Str("userID", cmd.UserID.String()).
		Msg("Processing invitation acceptance")

	invitation, err := s.invitationRepo.FindByID(cmd.InvitationID)
	if err != nil {
		return nil, err
	}

	if !invitation.CanBeAcceptedBy(cmd.UserID) {
		return nil, &model.OnlyInvitedUserCanAcceptInvitationError{InvitationID: invitation.ID, UserID: cmd.UserID}
	}
	if invitation.IsAccepted() {
		return nil, &model.InvitationAlreadyAcceptedError{InvitationID: invitation.ID}
	}

	invitation.Accept()
	participation := model.NewParticipation(invitation.QuizID, invitation.InvitedID, &invitation.ID)

	err = s.txManager.Transaction(func(tx repository.Store) error {
		if err := tx.Invitations().Save(invitation); err != nil {
			return err
		}
		return tx.Participations().Save(participation)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("invitationID", invitation.ID.String()).
		Str("participationID", participation.ID.String()).
		Msg("Invitation accepted")

	return &dto.AcceptInvitationResponse{
		Message:         "Invitation accepted successfully",
		InvitationID:    invitation.ID,
		ParticipationID: participation.ID,
		QuizID:          invitation.QuizID,
		QuizTitle:       invitation.Quiz.Title,
	}, nil
}
