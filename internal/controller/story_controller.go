package controller

import (
	"errors"

	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StoryController struct {
	StoryService *service.StoryService
}

func NewStoryController(storyService *service.StoryService) *StoryController {
	return &StoryController{StoryService: storyService}
}

// StoryData godoc
// @Summary Fetch the current level and a hand of questions for a player in a tower
// @Produce json
// @Param tower_name query string true "tower name"
// @Param player_name query string true "player name"
// @Success 200 {object} service.StoryData
// @Failure 404 {object} map[string]string "unknown tower or empty tower"
// @Failure 422 {object} map[string]string "missing query field"
// @Router /game/storydata [get]
func (c *StoryController) StoryData(ctx *gin.Context) {
	towerName := ctx.Query("tower_name")
	playerName := ctx.Query("player_name")
	if towerName == "" || playerName == "" {
		util.UnprocessableEntity(ctx, "Missing field in request.")
		return
	}

	data, err := c.StoryService.StoryData(towerName, playerName)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTowerNotFound):
			util.NotFound(ctx, "Tower not found.")
		case errors.Is(err, util.ErrLevelNotFound):
			util.NotFound(ctx, "Tower has no levels.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.JSON(ctx, data)
}
