package controller

import (
	"errors"

	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

// ChallengeData godoc
// @Summary Fetch the question set stored in a player's dungeon
// @Produce json
// @Param player_name query string true "player name"
// @Success 200 {array} service.QuestionData
// @Failure 422 {object} map[string]string "missing player name"
// @Router /game/challengedata [get]
func (c *ChallengeController) ChallengeData(ctx *gin.Context) {
	playerName := ctx.Query("player_name")
	if playerName == "" {
		util.UnprocessableEntity(ctx, "Missing player name")
		return
	}

	data, err := c.ChallengeService.ChallengeData(playerName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, data)
}

// InstructorDungeon godoc
// @Summary Fetch the instructor's dungeon question set and lock state
// @Produce json
// @Success 200 {object} service.InstructorData
// @Failure 404 {object} map[string]string
// @Router /game/instructordungeon [get]
func (c *ChallengeController) InstructorDungeon(ctx *gin.Context) {
	data, err := c.ChallengeService.InstructorDungeon()
	if err != nil {
		if errors.Is(err, util.ErrDungeonNotFound) {
			util.NotFound(ctx, "Instructor dungeon not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.JSON(ctx, data)
}

// PossibleChallengeQuestions godoc
// @Summary List the question bodies a player can place in their dungeon, grouped by world
// @Produce json
// @Param player_name query string true "player name"
// @Success 200 {array} array
// @Failure 422 {object} map[string]string "missing player name"
// @Router /game/possiblechallengequestions [get]
func (c *ChallengeController) PossibleChallengeQuestions(ctx *gin.Context) {
	playerName := ctx.Query("player_name")
	if playerName == "" {
		util.UnprocessableEntity(ctx, "Missing player name")
		return
	}

	rows, err := c.ChallengeService.PossibleChallengeQuestions(playerName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, rows)
}

// UpdateDungeon godoc
// @Summary Replace the five question slots of a player's dungeon
// @Accept json
// @Produce json
// @Param player_name query string true "player name"
// @Param body body []string true "five question bodies"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "no dungeon for that player"
// @Failure 422 {object} map[string]string "missing fields or unknown question body"
// @Router /game/dungeon [put]
func (c *ChallengeController) UpdateDungeon(ctx *gin.Context) {
	playerName := ctx.Query("player_name")
	if playerName == "" {
		util.UnprocessableEntity(ctx, "Missing player_name field")
		return
	}
	var bodies []string
	if err := ctx.ShouldBindJSON(&bodies); err != nil || len(bodies) != util.DungeonSlots {
		util.UnprocessableEntity(ctx, "Missing question_body field")
		return
	}

	if err := c.ChallengeService.UpdateDungeon(playerName, bodies); err != nil {
		switch {
		case errors.Is(err, util.ErrDungeonNotFound):
			util.NotFound(ctx, "Dungeon not found.")
		case errors.Is(err, util.ErrQuestionNotFound):
			util.UnprocessableEntity(ctx, "Question not found.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.MessageData(ctx, "Dungeon updated.", bodies)
}
