package repository

import (
	"tower_trivia_backend/internal/model"

	"gorm.io/gorm"
)

type PlayerRepository struct {
	DB *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{DB: db}
}

func (r *PlayerRepository) FindByID(id uint) (*model.Player, error) {
	var player model.Player
	err := r.DB.First(&player, id).Error
	return &player, err
}

func (r *PlayerRepository) FindByName(name string) (*model.Player, error) {
	var player model.Player
	err := r.DB.Where("player_name = ?", name).First(&player).Error
	return &player, err
}

func (r *PlayerRepository) UpdateAvatar(playerID uint, url string) error {
	return r.DB.Model(&model.Player{}).
		Where("player_id = ?", playerID).
		Update("avatar", url).
		Error
}
