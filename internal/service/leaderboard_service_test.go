package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newLeaderboardService(f *fixture, rdb *redis.Client) *LeaderboardService {
	return NewLeaderboardService(repository.NewLeaderboardRepository(f.db), rdb)
}

func seedProgress(t *testing.T, f *fixture, playerID, towerID, levelID uint) {
	t.Helper()
	err := f.db.Create(&model.Progress{PlayerID: playerID, TowerID: towerID, LevelID: levelID}).Error
	if err != nil {
		t.Fatalf("seed progress: %v", err)
	}
}

func TestLevelLeaderboardOrdering(t *testing.T) {
	f := newFixture(t)
	alice := createPlayer(t, f.db, "alice")
	bob := createPlayer(t, f.db, "bob")
	createPlayer(t, f.db, "carol")

	// North Tower's floor sits one below its entry level, so standing
	// on the entry level scores 1 and each level above adds 1.
	seedProgress(t, f, alice.PlayerID, f.tower.TowerID, f.levels[2].LevelID)
	seedProgress(t, f, bob.PlayerID, f.tower.TowerID, f.levels[0].LevelID)

	svc := newLeaderboardService(f, nil)
	pairs, err := svc.LevelLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("level leaderboard: %v", err)
	}

	wantNames := []string{"alice", "bob", "carol"}
	if len(pairs) != len(wantNames) {
		t.Fatalf("got %d rows, want %d", len(pairs), len(wantNames))
	}
	for i, name := range wantNames {
		if pairs[i][0] != name {
			t.Errorf("row %d is %v, want %s", i, pairs[i][0], name)
		}
	}
	if pairs[0][1] != 3 {
		t.Errorf("alice total = %v, want 3", pairs[0][1])
	}
	if pairs[2][1] != 0 {
		t.Errorf("carol total = %v, want 0 without progress", pairs[2][1])
	}
}

func TestLevelLeaderboardSumsAcrossTowers(t *testing.T) {
	f := newFixture(t)
	alice := createPlayer(t, f.db, "alice")
	seedProgress(t, f, alice.PlayerID, f.tower.TowerID, f.levels[1].LevelID)
	seedProgress(t, f, alice.PlayerID, f.caveTower.TowerID, f.caveLevel.LevelID)

	svc := newLeaderboardService(f, nil)
	rank, err := svc.LevelRank("alice")
	if err != nil {
		t.Fatalf("level rank: %v", err)
	}
	// 2 from North Tower plus 1 from Cave Tower.
	want := []interface{}{1, 3}
	if !reflect.DeepEqual(rank, want) {
		t.Errorf("got %v, want %v", rank, want)
	}
}

func TestLevelRankUnknownPlayer(t *testing.T) {
	f := newFixture(t)
	createPlayer(t, f.db, "alice")
	svc := newLeaderboardService(f, nil)

	if _, err := svc.LevelRank("ghost"); !errors.Is(err, util.ErrPlayerNotFound) {
		t.Fatalf("want ErrPlayerNotFound, got %v", err)
	}
}

func TestAccuracyLeaderboard(t *testing.T) {
	f := newFixture(t)
	alice := createPlayer(t, f.db, "alice")
	createPlayer(t, f.db, "bob")

	var correct, wrong model.Answer
	if err := f.db.Where("question_id = ? AND correct = ?", f.questions[0].QuestionID, true).First(&correct).Error; err != nil {
		t.Fatalf("find correct answer: %v", err)
	}
	if err := f.db.Where("question_id = ? AND correct = ?", f.questions[0].QuestionID, false).First(&wrong).Error; err != nil {
		t.Fatalf("find wrong answer: %v", err)
	}
	for _, answerID := range []uint{correct.AnswerID, wrong.AnswerID} {
		if err := f.db.Create(&model.Response{PlayerID: alice.PlayerID, AnswerID: answerID}).Error; err != nil {
			t.Fatalf("insert response: %v", err)
		}
	}

	svc := newLeaderboardService(f, nil)
	pairs, err := svc.AccuracyLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("accuracy leaderboard: %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("got %d rows, want 2", len(pairs))
	}
	if pairs[0][0] != "alice" || pairs[0][1] != 50.0 {
		t.Errorf("got %v, want [alice 50]", pairs[0])
	}
	if pairs[1][0] != "bob" || pairs[1][1] != 0.0 {
		t.Errorf("got %v, want [bob 0] for a player with no responses", pairs[1])
	}

	rank, err := svc.AccuracyRank("alice")
	if err != nil {
		t.Fatalf("accuracy rank: %v", err)
	}
	want := []interface{}{1, 50.0}
	if !reflect.DeepEqual(rank, want) {
		t.Errorf("got %v, want %v", rank, want)
	}
}

func TestLeaderboardCacheInvalidation(t *testing.T) {
	f := newFixture(t)
	createPlayer(t, f.db, "alice")
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := newLeaderboardService(f, rdb)
	ctx := context.Background()

	if _, err := svc.LevelLeaderboard(ctx); err != nil {
		t.Fatalf("level leaderboard: %v", err)
	}
	if !mr.Exists("leaderboard:level") {
		t.Fatal("expected the level board to be cached")
	}

	svc.InvalidateLevel(ctx)
	if mr.Exists("leaderboard:level") {
		t.Fatal("expected InvalidateLevel to drop the cache")
	}

	if _, err := svc.AccuracyLeaderboard(ctx); err != nil {
		t.Fatalf("accuracy leaderboard: %v", err)
	}
	svc.InvalidateAccuracy(ctx)
	if mr.Exists("leaderboard:accuracy") {
		t.Fatal("expected InvalidateAccuracy to drop the cache")
	}
}
