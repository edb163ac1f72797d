package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge/internal/dto"
	"github.com/quizforge/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// CreateQuiz godoc
// @Summary Create a quiz with its questions and answers
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param user_id query string true "Creator user ID"
// @Param quiz body dto.CreateQuizRequest true "Quiz definition"
// @Success 201 {object} dto.CreateQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz definition"
// @Failure 409 {object} dto.ErrorResponse "Quiz title already used by this creator"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	creatorID, ok := requesterID(ctx)
	if !ok {
		return
	}

	var req dto.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.CreateQuiz(creatorID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetQuiz godoc
// @Summary Get a quiz with its questions and answers
// @Description Available to the quiz creator, participants, and invited users. Answers carry no correctness flag.
// @Tags Quizzes
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param user_id query string true "Requesting user ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Requester has no access to this quiz"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, ok := parseUUIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}

	resp, err := c.quizService.GetQuiz(quizID, requester)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetCreatorQuizzes godoc
// @Summary List quizzes created by the requesting user
// @Tags Quizzes
// @Produce json
// @Param user_id query string true "Creator user ID"
// @Success 200 {array} dto.QuizSummaryDTO
// @Router /quizzes [get]
func (c *QuizController) GetCreatorQuizzes(ctx *gin.Context) {
	creatorID, ok := requesterID(ctx)
	if !ok {
		return
	}

	resp, err := c.quizService.GetCreatorQuizzes(creatorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetUserQuizzes godoc
// @Summary List quizzes the requesting user participates in
// @Tags Quizzes
// @Produce json
// @Param user_id query string true "Participant user ID"
// @Success 200 {object} dto.UserQuizzesResponse
// @Router /users/me/quizzes [get]
func (c *QuizController) GetUserQuizzes(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	resp, err := c.quizService.GetUserQuizzes(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
