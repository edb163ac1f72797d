package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/dto"
)

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// requesterID identifies the caller from the user_id query parameter.
// TODO: replace with the authenticated user once the auth middleware lands.
func requesterID(ctx *gin.Context) (uuid.UUID, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing user_id query parameter"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id format"})
		return uuid.Nil, false
	}
	return id, true
}
