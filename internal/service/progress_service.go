package service

import (
	"context"
	"errors"

	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"

	"gorm.io/gorm"
)

// ProgressService moves a player's furthest level within a tower. The
// conditional update and the first-time insert run in one transaction;
// the (player_id, tower_id) unique index absorbs the duplicate-insert
// race between concurrent calls.
type ProgressService struct {
	DB           *gorm.DB
	ContentRepo  *repository.ContentRepository
	PlayerRepo   *repository.PlayerRepository
	ProgressRepo *repository.ProgressRepository
	Leaderboard  *LeaderboardService
}

func NewProgressService(
	db *gorm.DB,
	contentRepo *repository.ContentRepository,
	playerRepo *repository.PlayerRepository,
	progressRepo *repository.ProgressRepository,
	leaderboard *LeaderboardService,
) *ProgressService {
	return &ProgressService{
		DB:           db,
		ContentRepo:  contentRepo,
		PlayerRepo:   playerRepo,
		ProgressRepo: progressRepo,
		Leaderboard:  leaderboard,
	}
}

// Increment advances the player one level in the tower when a next
// level exists; at the top it is a no-op. A player without a progress
// row starts at one past the tower's entry level.
func (s *ProgressService) Increment(ctx context.Context, playerName, towerName string) error {
	err := s.move(playerName, towerName, func(tx *gorm.DB, playerID uint, tower *model.Tower, minLevel uint, progress *model.Progress) error {
		if progress == nil {
			return s.ProgressRepo.InsertIgnoring(tx, &model.Progress{
				PlayerID: playerID,
				TowerID:  tower.TowerID,
				LevelID:  minLevel + 1,
			})
		}
		next := progress.LevelID + 1
		ok, err := s.levelExists(tx, tower.TowerID, next)
		if err != nil || !ok {
			return err
		}
		return s.ProgressRepo.SetLevel(tx, playerID, tower.TowerID, next)
	})
	if err != nil {
		return err
	}
	s.Leaderboard.InvalidateLevel(ctx)
	return nil
}

// Decrement is symmetric: one level down when a previous level exists,
// and a missing progress row is created at the tower's floor.
func (s *ProgressService) Decrement(ctx context.Context, playerName, towerName string) error {
	err := s.move(playerName, towerName, func(tx *gorm.DB, playerID uint, tower *model.Tower, minLevel uint, progress *model.Progress) error {
		if progress == nil {
			return s.ProgressRepo.InsertIgnoring(tx, &model.Progress{
				PlayerID: playerID,
				TowerID:  tower.TowerID,
				LevelID:  minLevel,
			})
		}
		if progress.LevelID == 0 {
			return nil
		}
		prev := progress.LevelID - 1
		ok, err := s.levelExists(tx, tower.TowerID, prev)
		if err != nil || !ok {
			return err
		}
		return s.ProgressRepo.SetLevel(tx, playerID, tower.TowerID, prev)
	})
	if err != nil {
		return err
	}
	s.Leaderboard.InvalidateLevel(ctx)
	return nil
}

func (s *ProgressService) move(
	playerName, towerName string,
	apply func(tx *gorm.DB, playerID uint, tower *model.Tower, minLevel uint, progress *model.Progress) error,
) error {
	player, err := s.PlayerRepo.FindByName(playerName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrPlayerNotFound
	} else if err != nil {
		return err
	}

	tower, err := s.ContentRepo.FindTowerByName(towerName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrTowerNotFound
	} else if err != nil {
		return err
	}

	minLevel, err := s.ContentRepo.MinLevelID(tower.TowerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrLevelNotFound
	} else if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := s.ProgressRepo.FindByPlayerTower(tx, player.PlayerID, tower.TowerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = nil
		} else if err != nil {
			return err
		}
		return apply(tx, player.PlayerID, tower, minLevel, progress)
	})
}

func (s *ProgressService) levelExists(tx *gorm.DB, towerID, levelID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.Level{}).
		Where("tower_id = ? AND level_id = ?", towerID, levelID).
		Count(&count).Error
	return count > 0, err
}
