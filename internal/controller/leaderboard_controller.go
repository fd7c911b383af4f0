package controller

import (
	"errors"

	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// LevelLeaderboard godoc
// @Summary Level leaderboard, or a single player's rank when player_name is given
// @Produce json
// @Param player_name query string false "player name"
// @Success 200 {array} array
// @Failure 404 {object} map[string]string "player absent from the board"
// @Router /game/leaderboardlevel [get]
func (c *LeaderboardController) LevelLeaderboard(ctx *gin.Context) {
	if playerName := ctx.Query("player_name"); playerName != "" {
		rank, err := c.LeaderboardService.LevelRank(playerName)
		if err != nil {
			if errors.Is(err, util.ErrPlayerNotFound) {
				util.NotFound(ctx, "Player not found.")
			} else {
				util.LogInternalError(ctx, err)
			}
			return
		}
		util.JSON(ctx, rank)
		return
	}

	rows, err := c.LeaderboardService.LevelLeaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, rows)
}

// AccuracyLeaderboard godoc
// @Summary Accuracy leaderboard, or a single player's rank when player_name is given
// @Produce json
// @Param player_name query string false "player name"
// @Success 200 {array} array
// @Failure 404 {object} map[string]string "player absent from the board"
// @Router /game/leaderboardaccuracy [get]
func (c *LeaderboardController) AccuracyLeaderboard(ctx *gin.Context) {
	if playerName := ctx.Query("player_name"); playerName != "" {
		rank, err := c.LeaderboardService.AccuracyRank(playerName)
		if err != nil {
			if errors.Is(err, util.ErrPlayerNotFound) {
				util.NotFound(ctx, "Player not found.")
			} else {
				util.LogInternalError(ctx, err)
			}
			return
		}
		util.JSON(ctx, rank)
		return
	}

	rows, err := c.LeaderboardService.AccuracyLeaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, rows)
}
