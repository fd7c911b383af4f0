package controller

import (
	"errors"

	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController groups the content management endpoints. The router
// only exposes them behind the instructor middleware.
type AdminController struct {
	ContentService   *service.ContentService
	ChallengeService *service.ChallengeService
}

func NewAdminController(contentService *service.ContentService, challengeService *service.ChallengeService) *AdminController {
	return &AdminController{ContentService: contentService, ChallengeService: challengeService}
}

type CreateWorldRequest struct {
	WorldName string `json:"world_name" binding:"required"`
}

// CreateWorld godoc
// @Summary Create a world
// @Accept json
// @Produce json
// @Param body body CreateWorldRequest true "world name"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/world [post]
func (c *AdminController) CreateWorld(ctx *gin.Context) {
	var req CreateWorldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, "Missing world_name field")
		return
	}

	world, err := c.ContentService.CreateWorld(ctx.Request.Context(), req.WorldName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.MessageData(ctx, "World added.", world)
}

type CreateTowerRequest struct {
	WorldID   uint   `json:"world_id" binding:"required"`
	TowerName string `json:"tower_name" binding:"required"`
}

// CreateTower godoc
// @Summary Create a tower inside a world
// @Accept json
// @Produce json
// @Param body body CreateTowerRequest true "world id and tower name"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/tower [post]
func (c *AdminController) CreateTower(ctx *gin.Context) {
	var req CreateTowerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, "Missing tower_name field")
		return
	}

	tower, err := c.ContentService.CreateTower(req.WorldID, req.TowerName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.MessageData(ctx, "Tower added.", tower)
}

type CreateLevelRequest struct {
	TowerID   uint   `json:"tower_id" binding:"required"`
	LevelName string `json:"level_name" binding:"required"`
}

// CreateLevel godoc
// @Summary Create a level inside a tower
// @Accept json
// @Produce json
// @Param body body CreateLevelRequest true "tower id and level name"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/level [post]
func (c *AdminController) CreateLevel(ctx *gin.Context) {
	var req CreateLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, "Missing level_name field")
		return
	}

	level, err := c.ContentService.CreateLevel(req.TowerID, req.LevelName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.MessageData(ctx, "Level added.", level)
}

type CreateQuestionRequest struct {
	LevelID      uint                  `json:"level_id" binding:"required"`
	QuestionBody string                `json:"question_body" binding:"required"`
	Answers      []service.AnswerInput `json:"answers" binding:"required"`
}

// CreateQuestion godoc
// @Summary Create a question with its answer set
// @Description Exactly one answer must be marked correct
// @Accept json
// @Produce json
// @Param body body CreateQuestionRequest true "level id, question body and answers"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string "missing fields or malformed answer set"
// @Router /api/admin/question [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, "Missing question_body field")
		return
	}

	question, err := c.ContentService.CreateQuestion(req.LevelID, req.QuestionBody, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrBadAnswerSet) {
			util.UnprocessableEntity(ctx, "Exactly one answer must be correct.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.MessageData(ctx, "Question added.", question)
}

// DeleteQuestion godoc
// @Summary Delete a question and its answers
// @Produce json
// @Param id path int true "question id"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /api/admin/question/{id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	id := util.ParseUintOrZero(ctx.Param("id"))
	if id == 0 {
		util.UnprocessableEntity(ctx, "Missing question id")
		return
	}

	if err := c.ContentService.DeleteQuestion(id); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Message(ctx, "Question deleted.")
}

type InstructorDungeonRequest struct {
	Questions []string `json:"questions"`
	Lock      bool     `json:"lock"`
}

// UpdateInstructorDungeon godoc
// @Summary Replace the instructor dungeon's question slots and lock state
// @Accept json
// @Produce json
// @Param body body InstructorDungeonRequest true "five question bodies and the lock flag"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 422 {object} map[string]string "wrong slot count or unknown question body"
// @Router /api/admin/instructordungeon [put]
func (c *AdminController) UpdateInstructorDungeon(ctx *gin.Context) {
	var req InstructorDungeonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || len(req.Questions) != util.DungeonSlots {
		util.UnprocessableEntity(ctx, "Missing question_body field")
		return
	}

	if err := c.ChallengeService.UpdateInstructorDungeon(req.Questions, req.Lock); err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.UnprocessableEntity(ctx, "Question not found.")
		case errors.Is(err, util.ErrDungeonNotFound):
			util.NotFound(ctx, "Instructor dungeon not found.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Message(ctx, "Instructor dungeon updated.")
}
