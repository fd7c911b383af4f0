package service

import (
	"context"
	"encoding/json"
	"time"

	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const (
	levelBoardCacheKey    = "leaderboard:level"
	accuracyBoardCacheKey = "leaderboard:accuracy"
	leaderboardCacheTTL   = 30 * time.Second
)

// LeaderboardService shapes the two scoring aggregations into the
// [name, score] pair lists of the wire contract, behind a short redis
// cache that mutations invalidate.
type LeaderboardService struct {
	Repo  *repository.LeaderboardRepository
	Redis *redis.Client
}

func NewLeaderboardService(repo *repository.LeaderboardRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{
		Repo:  repo,
		Redis: rdb,
	}
}

func (s *LeaderboardService) LevelLeaderboard(ctx context.Context) ([][]interface{}, error) {
	if cached := s.fromCache(ctx, levelBoardCacheKey); cached != nil {
		return cached, nil
	}

	rows, err := s.Repo.LevelRows()
	if err != nil {
		return nil, err
	}
	pairs := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, []interface{}{row.PlayerName, row.Total})
	}

	s.toCache(ctx, levelBoardCacheKey, pairs)
	return pairs, nil
}

// LevelRank returns [rank, total] for one player; rank is the 1-based
// position in the full descending list.
func (s *LeaderboardService) LevelRank(playerName string) ([]interface{}, error) {
	rows, err := s.Repo.LevelRows()
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if row.PlayerName == playerName {
			return []interface{}{i + 1, row.Total}, nil
		}
	}
	return nil, util.ErrPlayerNotFound
}

func (s *LeaderboardService) AccuracyLeaderboard(ctx context.Context) ([][]interface{}, error) {
	if cached := s.fromCache(ctx, accuracyBoardCacheKey); cached != nil {
		return cached, nil
	}

	rows, err := s.Repo.AccuracyRows()
	if err != nil {
		return nil, err
	}
	pairs := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, []interface{}{row.PlayerName, row.Accuracy})
	}

	s.toCache(ctx, accuracyBoardCacheKey, pairs)
	return pairs, nil
}

func (s *LeaderboardService) AccuracyRank(playerName string) ([]interface{}, error) {
	rows, err := s.Repo.AccuracyRows()
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if row.PlayerName == playerName {
			return []interface{}{i + 1, row.Accuracy}, nil
		}
	}
	return nil, util.ErrPlayerNotFound
}

// InvalidateLevel drops the cached level board after a progress
// mutation.
func (s *LeaderboardService) InvalidateLevel(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, levelBoardCacheKey)
	}
}

// InvalidateAccuracy drops the cached accuracy board after a response
// submission.
func (s *LeaderboardService) InvalidateAccuracy(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, accuracyBoardCacheKey)
	}
}

func (s *LeaderboardService) fromCache(ctx context.Context, key string) [][]interface{} {
	if s.Redis == nil {
		return nil
	}
	val, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var pairs [][]interface{}
	if json.Unmarshal([]byte(val), &pairs) != nil {
		return nil
	}
	return pairs
}

func (s *LeaderboardService) toCache(ctx context.Context, key string, pairs [][]interface{}) {
	if s.Redis == nil {
		return
	}
	if payload, err := json.Marshal(pairs); err == nil {
		s.Redis.Set(ctx, key, payload, leaderboardCacheTTL)
	}
}
