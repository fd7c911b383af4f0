package controller

import (
	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// WorldNames godoc
// @Summary List world names
// @Produce json
// @Success 200 {array} string
// @Router /game/worldnames [get]
func (c *ContentController) WorldNames(ctx *gin.Context) {
	names, err := c.ContentService.WorldNames(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, names)
}

// TowerNames godoc
// @Summary List tower names grouped by world
// @Produce json
// @Success 200 {array} array
// @Router /game/towernames [get]
func (c *ContentController) TowerNames(ctx *gin.Context) {
	names, err := c.ContentService.TowerNames()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, names)
}

// WorldQuestions godoc
// @Summary List every question row with its world, tower and level
// @Produce json
// @Success 200 {array} array
// @Router /game/worldquestions [get]
func (c *ContentController) WorldQuestions(ctx *gin.Context) {
	rows, err := c.ContentService.WorldQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, rows)
}
