package service

import (
	"errors"
	"testing"
	"time"

	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"
)

func newAuthService(t *testing.T) (*AuthService, *repository.PlayerRepository) {
	t.Helper()
	db := newTestDB(t)
	playerRepo := repository.NewPlayerRepository(db)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(playerRepo, cfg, db), playerRepo
}

func TestRegisterCreatesPlayerAndDungeon(t *testing.T) {
	svc, playerRepo := newAuthService(t)

	if err := svc.Register("alice", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	player, err := playerRepo.FindByName("alice")
	if err != nil {
		t.Fatalf("player row missing: %v", err)
	}
	if player.Password == "hunter2" {
		t.Error("password stored in plaintext")
	}

	var dungeon model.Dungeon
	if err := svc.DB.Where("player_name = ?", "alice").First(&dungeon).Error; err != nil {
		t.Fatalf("dungeon row missing: %v", err)
	}
	if !dungeon.Lock {
		t.Error("new dungeon should start locked")
	}
	if ids := dungeon.QuestionIDs(); len(ids) != 0 {
		t.Errorf("new dungeon should have empty slots, got %v", ids)
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	svc, _ := newAuthService(t)

	if err := svc.Register("alice", "hunter2"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := svc.Register("alice", "other"); !errors.Is(err, util.ErrNameTaken) {
		t.Fatalf("want ErrNameTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	if err := svc.Register("alice", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name     string
		player   string
		password string
		wantErr  error
	}{
		{"success", "alice", "hunter2", nil},
		{"wrong password", "alice", "nope", util.ErrPasswordMismatch},
		{"unknown player", "bob", "hunter2", util.ErrPlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, token, err := svc.Login(tt.player, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if token == "" {
				t.Error("expected a session token")
			}
			if player.Password != "" {
				t.Error("password hash leaked in the returned player")
			}

			claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
			if err != nil {
				t.Fatalf("parse token: %v", err)
			}
			if claims.PlayerName != "alice" {
				t.Errorf("token carries %q, want alice", claims.PlayerName)
			}
		})
	}
}
