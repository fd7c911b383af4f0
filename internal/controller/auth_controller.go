package controller

import (
	"errors"

	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type CredentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new player
// @Description Creates the player and their locked dungeon row atomically
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "player credentials"
// @Success 200 {object} map[string]string
// @Failure 422 {object} map[string]string "missing fields"
// @Failure 409 {object} map[string]string "name already taken"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Password == "" {
		util.UnprocessableEntity(ctx, "Entries must not be empty!")
		return
	}

	if err := c.AuthService.Register(req.Name, req.Password); err != nil {
		if errors.Is(err, util.ErrNameTaken) {
			util.Conflict(ctx, "Player name already taken.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Message(ctx, "Player added.")
}

// Login godoc
// @Summary Log a player in
// @Description Verifies credentials; returns the player row (password stripped) and a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "player credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "unknown player or wrong password"
// @Failure 422 {object} map[string]string "missing fields"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Password == "" {
		util.UnprocessableEntity(ctx, "Entries must not be empty!")
		return
	}

	player, token, err := c.AuthService.Login(req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPlayerNotFound):
			util.Unauthorized(ctx, "Player not found.")
		case errors.Is(err, util.ErrPasswordMismatch):
			util.Unauthorized(ctx, "Passwords do not match")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, gin.H{
		"message": "Passwords match",
		"data":    player,
		"token":   token,
	})
}
