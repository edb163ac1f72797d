package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge/internal/service"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetUserQuizProgress godoc
// @Summary Get the requesting user's progress on a quiz
// @Tags Progress
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param user_id query string true "Participant user ID"
// @Success 200 {object} dto.UserQuizProgressResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz or participation not found"
// @Router /quizzes/{quiz_id}/progress [get]
func (c *ProgressController) GetUserQuizProgress(ctx *gin.Context) {
	quizID, ok := parseUUIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	resp, err := c.progressService.GetUserQuizProgress(quizID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetCreatorQuizProgress godoc
// @Summary Get invitation and participation stats for a quiz (creator only)
// @Tags Progress
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param user_id query string true "Creator user ID"
// @Success 200 {object} dto.CreatorQuizProgressResponse
// @Failure 403 {object} dto.ErrorResponse "Requester is not the quiz creator"
// @Router /quizzes/{quiz_id}/creator-progress [get]
func (c *ProgressController) GetCreatorQuizProgress(ctx *gin.Context) {
	quizID, ok := parseUUIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}

	resp, err := c.progressService.GetCreatorQuizProgress(quizID, requester)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuizScores godoc
// @Summary Get the score summary of a quiz (creator only)
// @Tags Progress
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param user_id query string true "Creator user ID"
// @Success 200 {object} dto.QuizScoresResponse
// @Failure 403 {object} dto.ErrorResponse "Requester is not the quiz creator"
// @Router /quizzes/{quiz_id}/scores [get]
func (c *ProgressController) GetQuizScores(ctx *gin.Context) {
	quizID, ok := parseUUIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}

	resp, err := c.progressService.GetQuizScores(quizID, requester)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
