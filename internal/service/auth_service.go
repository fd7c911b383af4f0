package service

import (
	"errors"

	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	PlayerRepo *repository.PlayerRepository
	Cfg        *config.Config
	DB         *gorm.DB
}

func NewAuthService(playerRepo *repository.PlayerRepository, cfg *config.Config, db *gorm.DB) *AuthService {
	return &AuthService{
		PlayerRepo: playerRepo,
		Cfg:        cfg,
		DB:         db,
	}
}

// Register creates the player and their empty locked dungeon as one
// atomic unit: if the dungeon insert fails, the player must not
// persist.
func (s *AuthService) Register(name, password string) error {
	_, err := s.PlayerRepo.FindByName(name)
	if err == nil {
		return util.ErrNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		player := &model.Player{
			PlayerName: name,
			Password:   string(hashedPassword),
		}
		if err := tx.Create(player).Error; err != nil {
			return err
		}
		dungeon := &model.Dungeon{
			PlayerName: name,
			Lock:       true,
		}
		return tx.Create(dungeon).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Unique index lost the race to a concurrent registration.
		return util.ErrNameTaken
	}
	return err
}

// Login verifies the credentials and returns the player row plus a
// signed session token. The password hash never leaves this layer.
func (s *AuthService) Login(name, password string) (*model.Player, string, error) {
	player, err := s.PlayerRepo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", util.ErrPlayerNotFound
	} else if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.Password), []byte(password)); err != nil {
		return nil, "", util.ErrPasswordMismatch
	}

	token, err := util.GenerateJWT(player, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	player.Password = ""
	return player, token, nil
}
