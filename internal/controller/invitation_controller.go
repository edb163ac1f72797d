package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge/internal/dto"
	"github.com/quizforge/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type InvitationController struct {
	invitationService service.InvitationService
}

func NewInvitationController(invitationService service.InvitationService) *InvitationController {
	return &InvitationController{invitationService: invitationService}
}

// SendInvitation godoc
// @Summary Invite a user to a quiz
// @Description Only the quiz creator can invite; the creator cannot invite themself.
// @Tags Invitations
// @Accept json
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param user_id query string true "Inviter user ID"
// @Param invitation body dto.SendInvitationRequest true "Invited participant"
// @Success 201 {object} dto.SendInvitationResponse
// @Failure 403 {object} dto.ErrorResponse "Requester is not the quiz creator"
// @Failure 404 {object} dto.ErrorResponse "Quiz or invited user not found"
// @Failure 409 {object} dto.ErrorResponse "User already invited"
// @Router /quizzes/{quiz_id}/invitations [post]
func (c *InvitationController) SendInvitation(ctx *gin.Context) {
	quizID, ok := parseUUIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	inviterID, ok := requesterID(ctx)
	if !ok {
		return
	}

	var req dto.SendInvitationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SendInvitation: failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.invitationService.SendInvitation(service.SendInvitationCommand{
		QuizID:           quizID,
		InviterID:        inviterID,
		ParticipantEmail: req.ParticipantEmail,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// AcceptInvitation godoc
// @Summary Accept an invitation, creating the participation
// @Tags Invitations
// @Produce json
// @Param invitation_id path string true "Invitation ID"
// @Param user_id query string true "Invited user ID"
// @Success 200 {object} dto.AcceptInvitationResponse
// @Failure 403 {object} dto.ErrorResponse "Requester is not the invited user"
// @Failure 404 {object} dto.ErrorResponse "Invitation not found"
// @Failure 409 {object} dto.ErrorResponse "Invitation already accepted"
// @Router /invitations/{invitation_id}/accept [post]
func (c *InvitationController) AcceptInvitation(ctx *gin.Context) {
	invitationID, ok := parseUUIDParam(ctx, "invitation_id")
	if !ok {
		return
	}
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	resp, err := c.invitationService.AcceptInvitation(service.AcceptInvitationCommand{
		InvitationID: invitationID,
		UserID:       userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
