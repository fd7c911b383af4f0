package controller

import (
	"errors"

	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

func (c *ProgressController) bind(ctx *gin.Context) (playerName, towerName string, ok bool) {
	playerName = ctx.Query("player_name")
	if playerName == "" {
		util.UnprocessableEntity(ctx, "Missing player_name field")
		return "", "", false
	}
	towerName = ctx.Query("tower_name")
	if towerName == "" {
		util.UnprocessableEntity(ctx, "Missing tower_name field")
		return "", "", false
	}
	return playerName, towerName, true
}

func (c *ProgressController) handle(ctx *gin.Context, err error, okMessage string) {
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPlayerNotFound):
			util.NotFound(ctx, "Player not found.")
		case errors.Is(err, util.ErrTowerNotFound):
			util.NotFound(ctx, "Tower not found.")
		case errors.Is(err, util.ErrLevelNotFound):
			util.NotFound(ctx, "Tower has no levels.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Message(ctx, okMessage)
}

// Increment godoc
// @Summary Move a player one level up in a tower
// @Produce json
// @Param player_name query string true "player name"
// @Param tower_name query string true "tower name"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string "missing fields"
// @Router /game/increment [put]
func (c *ProgressController) Increment(ctx *gin.Context) {
	playerName, towerName, ok := c.bind(ctx)
	if !ok {
		return
	}
	err := c.ProgressService.Increment(ctx.Request.Context(), playerName, towerName)
	c.handle(ctx, err, "Level incremented.")
}

// Decrement godoc
// @Summary Move a player one level down in a tower
// @Produce json
// @Param player_name query string true "player name"
// @Param tower_name query string true "tower name"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string "missing fields"
// @Router /game/decrement [put]
func (c *ProgressController) Decrement(ctx *gin.Context) {
	playerName, towerName, ok := c.bind(ctx)
	if !ok {
		return
	}
	err := c.ProgressService.Decrement(ctx.Request.Context(), playerName, towerName)
	c.handle(ctx, err, "Level decremented.")
}
