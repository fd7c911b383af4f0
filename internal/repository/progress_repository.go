package repository

import (
	"tower_trivia_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByPlayerTower(tx *gorm.DB, playerID, towerID uint) (*model.Progress, error) {
	var progress model.Progress
	err := tx.Where("player_id = ? AND tower_id = ?", playerID, towerID).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) SetLevel(tx *gorm.DB, playerID, towerID, levelID uint) error {
	return tx.Model(&model.Progress{}).
		Where("player_id = ? AND tower_id = ?", playerID, towerID).
		Update("level_id", levelID).
		Error
}

// InsertIgnoring creates the progress row, relying on the
// (player_id, tower_id) unique index to absorb a concurrent duplicate
// insert as a no-op rather than an error.
func (r *ProgressRepository) InsertIgnoring(tx *gorm.DB, progress *model.Progress) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(progress).Error
}
