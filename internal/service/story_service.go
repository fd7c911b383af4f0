package service

import (
	"errors"
	"math/rand"

	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionData is the wire shape of one question: its answer bodies
// and the 0-based index of the correct one (-1 when the data carries
// no correct answer).
type QuestionData struct {
	QuestionBody string   `json:"question_body"`
	Answers      []string `json:"answers"`
	Correct      int      `json:"correct"`
}

type StoryData struct {
	LevelName string         `json:"level_name"`
	Data      []QuestionData `json:"data"`
}

const storyQuestionCount = 5

type StoryService struct {
	ContentRepo  *repository.ContentRepository
	PlayerRepo   *repository.PlayerRepository
	ProgressRepo *repository.ProgressRepository
}

func NewStoryService(
	contentRepo *repository.ContentRepository,
	playerRepo *repository.PlayerRepository,
	progressRepo *repository.ProgressRepository,
) *StoryService {
	return &StoryService{
		ContentRepo:  contentRepo,
		PlayerRepo:   playerRepo,
		ProgressRepo: progressRepo,
	}
}

// StoryData picks up to 5 random questions from the player's current
// level in the tower. A player without a progress row plays the
// tower's entry level; with one, the greater of the two.
func (s *StoryService) StoryData(towerName, playerName string) (*StoryData, error) {
	tower, err := s.ContentRepo.FindTowerByName(towerName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTowerNotFound
	} else if err != nil {
		return nil, err
	}

	minLevel, err := s.ContentRepo.MinLevelID(tower.TowerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLevelNotFound
	} else if err != nil {
		return nil, err
	}

	levelID := minLevel
	if player, err := s.PlayerRepo.FindByName(playerName); err == nil {
		progress, err := s.ProgressRepo.FindByPlayerTower(s.ProgressRepo.DB, player.PlayerID, tower.TowerID)
		if err == nil && progress.LevelID > levelID {
			levelID = progress.LevelID
		}
	}

	level, err := s.ContentRepo.FindLevelByID(levelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLevelNotFound
	} else if err != nil {
		return nil, err
	}

	questions, err := s.ContentRepo.QuestionsByLevel(levelID)
	if err != nil {
		return nil, err
	}

	// Random selection without replacement across the level's pool.
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > storyQuestionCount {
		questions = questions[:storyQuestionCount]
	}

	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.QuestionID)
	}
	answers, err := s.ContentRepo.AnswersByQuestionIDs(ids)
	if err != nil {
		return nil, err
	}

	return &StoryData{
		LevelName: level.LevelName,
		Data:      shapeQuestions(questions, answers),
	}, nil
}

// shapeQuestions builds the per-question answer lists with the correct
// index, in the given question order. Identical
// (question, answer, correct) tuples collapse to the first occurrence.
func shapeQuestions(questions []model.Question, answers []model.Answer) []QuestionData {
	byQuestion := make(map[uint][]model.Answer, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	data := make([]QuestionData, 0, len(questions))
	for _, q := range questions {
		qd := QuestionData{
			QuestionBody: q.QuestionBody,
			Answers:      make([]string, 0),
			Correct:      -1,
		}
		type answerKey struct {
			body    string
			correct bool
		}
		seen := make(map[answerKey]bool)
		for _, a := range byQuestion[q.QuestionID] {
			key := answerKey{a.AnswerBody, a.Correct}
			if seen[key] {
				continue
			}
			seen[key] = true
			if a.Correct && qd.Correct == -1 {
				qd.Correct = len(qd.Answers)
			}
			qd.Answers = append(qd.Answers, a.AnswerBody)
		}
		data = append(data, qd)
	}
	return data
}
