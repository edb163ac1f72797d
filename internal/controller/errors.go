package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge/internal/dto"
	"github.com/quizforge/quizforge/internal/model"
	"github.com/rs/zerolog/log"
)

// respondError maps domain errors onto HTTP statuses: missing entities are
// 404, terminal-state conflicts 409, broken submission invariants 400,
// authorization rules 403. Anything else is an internal failure.
func respondError(ctx *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(status, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

func statusForError(err error) int {
	switch err.(type) {
	case *model.QuizNotFoundError,
		*model.UserNotFoundError,
		*model.UserNotFoundByEmailError,
		*model.ParticipationNotFoundError,
		*model.InvitationNotFoundError:
		return http.StatusNotFound
	case *model.QuizAlreadyCompletedError,
		*model.DuplicateAnswerSubmissionError,
		*model.ParticipationAlreadyExistsError,
		*model.QuizAlreadyExistsError,
		*model.InvitationAlreadyExistsError,
		*model.InvitationAlreadyAcceptedError:
		return http.StatusConflict
	case *model.IncompleteQuizSubmissionError,
		*model.InvalidQuestionForQuizError,
		*model.InvalidAnswerForQuestionError,
		*model.EmptyQuizTitleError,
		*model.InvalidQuizTitleLengthError,
		*model.InvalidNumberOfAnswersError,
		*model.InvalidNumberOfCorrectAnswersError:
		return http.StatusBadRequest
	case *model.OnlyQuizCreatorCanSendInvitationError,
		*model.OnlyInvitedUserCanAcceptInvitationError,
		*model.CreatorCannotBeInvitedError,
		*model.UnauthorizedQuizAccessError:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
