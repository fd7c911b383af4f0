package controller

import (
	"errors"

	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	ResponseService *service.ResponseService
}

func NewResponseController(responseService *service.ResponseService) *ResponseController {
	return &ResponseController{ResponseService: responseService}
}

type ResponseRequest struct {
	QuestionBody string `json:"question_body"`
	AnswerBody   string `json:"answer_body"`
}

// Submit godoc
// @Summary Record the answer a player picked for a question
// @Accept json
// @Produce json
// @Param player_name query string true "player name"
// @Param body body ResponseRequest true "question body and chosen answer body"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "unknown player"
// @Failure 422 {object} map[string]string "missing fields or unresolvable answer"
// @Router /game/response [put]
func (c *ResponseController) Submit(ctx *gin.Context) {
	playerName := ctx.Query("player_name")
	if playerName == "" {
		util.UnprocessableEntity(ctx, "Missing player_name field")
		return
	}
	var req ResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.QuestionBody == "" {
		util.UnprocessableEntity(ctx, "Missing question_body field")
		return
	}
	if req.AnswerBody == "" {
		util.UnprocessableEntity(ctx, "Missing answer_body field")
		return
	}

	err := c.ResponseService.Submit(ctx.Request.Context(), playerName, req.QuestionBody, req.AnswerBody)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPlayerNotFound):
			util.NotFound(ctx, "Player not found.")
		case errors.Is(err, util.ErrAnswerNotFound):
			util.UnprocessableEntity(ctx, "Answer not found.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Message(ctx, "Response inserted.")
}
