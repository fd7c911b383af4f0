package service

import (
	"context"
	"errors"

	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"
	"tower_trivia_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// ResponseService appends to the answer-submission log. Lookups that
// resolve nothing reject the submission instead of inserting a row of
// NULL references.
type ResponseService struct {
	PlayerRepo   *repository.PlayerRepository
	ContentRepo  *repository.ContentRepository
	ResponseRepo *repository.ResponseRepository
	Leaderboard  *LeaderboardService
}

func NewResponseService(
	playerRepo *repository.PlayerRepository,
	contentRepo *repository.ContentRepository,
	responseRepo *repository.ResponseRepository,
	leaderboard *LeaderboardService,
) *ResponseService {
	return &ResponseService{
		PlayerRepo:   playerRepo,
		ContentRepo:  contentRepo,
		ResponseRepo: responseRepo,
		Leaderboard:  leaderboard,
	}
}

func (s *ResponseService) Submit(ctx context.Context, playerName, questionBody, answerBody string) error {
	player, err := s.PlayerRepo.FindByName(playerName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrPlayerNotFound
	} else if err != nil {
		return err
	}

	answerID, err := s.ContentRepo.AnswerIDByBodies(questionBody, answerBody)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrAnswerNotFound
	} else if err != nil {
		return err
	}

	err = s.ResponseRepo.Create(&model.Response{
		PlayerID: player.PlayerID,
		AnswerID: answerID,
	})
	if err != nil {
		return err
	}

	monitoring.ResponseCounter.Inc()
	s.Leaderboard.InvalidateAccuracy(ctx)
	return nil
}
