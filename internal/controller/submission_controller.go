package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge/internal/dto"
	"github.com/quizforge/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// SubmitQuizAnswers godoc
// @Summary Submit all answers for a quiz
// @Description Submits one answer per question, scores the quiz, and marks the participation completed. Partial and repeated submissions are rejected.
// @Tags Participations
// @Accept json
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param user_id query string true "Participant user ID"
// @Param submission body dto.SubmitQuizAnswersRequest true "Answers, one per question"
// @Success 200 {object} dto.SubmitQuizAnswersResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed submission"
// @Failure 404 {object} dto.ErrorResponse "Quiz, user, or participation not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz already completed or duplicate answer"
// @Router /quizzes/{quiz_id}/submissions [post]
func (c *SubmissionController) SubmitQuizAnswers(ctx *gin.Context) {
	quizID, ok := parseUUIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	participantID, ok := requesterID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitQuizAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuizAnswers: failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answers := make([]service.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, service.SubmittedAnswer{QuestionID: a.QuestionID, AnswerID: a.AnswerID})
	}

	resp, err := c.submissionService.SubmitQuizAnswers(service.SubmitQuizAnswersCommand{
		ParticipantID: participantID,
		QuizID:        quizID,
		Answers:       answers,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
