package service

import (
	"context"
	"encoding/json"
	"time"

	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	worldNamesCacheKey = "content:worldnames"
	contentCacheTTL    = 60 * time.Second
)

type ContentService struct {
	ContentRepo *repository.ContentRepository
	Redis       *redis.Client
}

func NewContentService(contentRepo *repository.ContentRepository, rdb *redis.Client) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		Redis:       rdb,
	}
}

// WorldNames lists world names by ascending world id, behind a short
// redis cache since the content tree changes rarely.
func (s *ContentService) WorldNames(ctx context.Context) ([]string, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, worldNamesCacheKey).Result(); err == nil {
			var cached []string
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	worlds, err := s.ContentRepo.ListWorlds()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(worlds))
	for _, w := range worlds {
		names = append(names, w.WorldName)
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(names); err == nil {
			s.Redis.Set(ctx, worldNamesCacheKey, payload, contentCacheTTL)
		}
	}
	return names, nil
}

// TowerNames groups tower names by their owning world: one inner list
// per world in ascending world-id order, tower names in tower-id
// order. Worlds appear only when they own at least one tower, as in
// the flat join this replaces.
func (s *ContentService) TowerNames() ([][]string, error) {
	towers, err := s.ContentRepo.ListTowers()
	if err != nil {
		return nil, err
	}

	grouped := make([][]string, 0)
	var currentWorld uint
	for _, t := range towers {
		if len(grouped) == 0 || t.WorldID != currentWorld {
			grouped = append(grouped, []string{})
			currentWorld = t.WorldID
		}
		grouped[len(grouped)-1] = append(grouped[len(grouped)-1], t.TowerName)
	}
	return grouped, nil
}

// WorldQuestions returns each world's question bodies grouped the same
// way, flattening the tower/level dimensions.
func (s *ContentService) WorldQuestions() ([][]string, error) {
	rows, err := s.ContentRepo.WorldQuestionRows()
	if err != nil {
		return nil, err
	}

	grouped := make([][]string, 0)
	var currentWorld uint
	for _, row := range rows {
		if len(grouped) == 0 || row.WorldID != currentWorld {
			grouped = append(grouped, []string{})
			currentWorld = row.WorldID
		}
		grouped[len(grouped)-1] = append(grouped[len(grouped)-1], row.QuestionBody)
	}
	return grouped, nil
}

func (s *ContentService) CreateWorld(ctx context.Context, name string) (*model.World, error) {
	world := &model.World{WorldName: name}
	if err := s.ContentRepo.CreateWorld(world); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		s.Redis.Del(ctx, worldNamesCacheKey)
	}
	return world, nil
}

func (s *ContentService) CreateTower(worldID uint, name string) (*model.Tower, error) {
	tower := &model.Tower{WorldID: worldID, TowerName: name}
	if err := s.ContentRepo.CreateTower(tower); err != nil {
		return nil, err
	}
	return tower, nil
}

func (s *ContentService) CreateLevel(towerID uint, name string) (*model.Level, error) {
	level := &model.Level{TowerID: towerID, LevelName: name}
	if err := s.ContentRepo.CreateLevel(level); err != nil {
		return nil, err
	}
	return level, nil
}

type AnswerInput struct {
	AnswerBody string `json:"answer_body"`
	Correct    bool   `json:"correct"`
}

// CreateQuestion inserts a question with its answers, enforcing the
// exactly-one-correct-answer invariant the gameplay queries depend on.
func (s *ContentService) CreateQuestion(levelID uint, body string, answers []AnswerInput) (*model.Question, error) {
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}
	if correct != 1 {
		return nil, util.ErrBadAnswerSet
	}

	question := &model.Question{LevelID: levelID, QuestionBody: body}
	err := s.ContentRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		for _, a := range answers {
			answer := &model.Answer{
				QuestionID: question.QuestionID,
				AnswerBody: a.AnswerBody,
				Correct:    a.Correct,
			}
			if err := tx.Create(answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) DeleteQuestion(questionID uint) error {
	return s.ContentRepo.DeleteQuestion(questionID)
}
