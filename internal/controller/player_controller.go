package controller

import (
	"errors"

	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlayerController struct {
	PlayerRepo     *repository.PlayerRepository
	StorageService *service.StorageService
}

func NewPlayerController(playerRepo *repository.PlayerRepository, storageService *service.StorageService) *PlayerController {
	return &PlayerController{PlayerRepo: playerRepo, StorageService: storageService}
}

// UploadAvatar godoc
// @Summary Upload an avatar image for the authenticated player
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "image file"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string "missing or non-image file"
// @Router /api/player/avatar [put]
func (c *PlayerController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetPlayerFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Unauthorized")
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.UnprocessableEntity(ctx, "Missing avatar file")
		return
	}

	url, err := c.StorageService.UploadAvatar(ctx.Request.Context(), file)
	if err != nil {
		if errors.Is(err, util.ErrNotImage) {
			util.UnprocessableEntity(ctx, "Avatar must be an image")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if err := c.PlayerRepo.UpdateAvatar(claims.PlayerID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.MessageData(ctx, "Avatar updated.", gin.H{"avatar": url})
}
