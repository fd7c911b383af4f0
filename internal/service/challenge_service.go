package service

import (
	"errors"

	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"

	"gorm.io/gorm"
)

type InstructorData struct {
	Lock bool           `json:"lock"`
	Data []QuestionData `json:"data"`
}

type ChallengeService struct {
	DungeonRepo  *repository.DungeonRepository
	ContentRepo  *repository.ContentRepository
	ResponseRepo *repository.ResponseRepository
}

func NewChallengeService(
	dungeonRepo *repository.DungeonRepository,
	contentRepo *repository.ContentRepository,
	responseRepo *repository.ResponseRepository,
) *ChallengeService {
	return &ChallengeService{
		DungeonRepo:  dungeonRepo,
		ContentRepo:  contentRepo,
		ResponseRepo: responseRepo,
	}
}

// ChallengeData loads the player's five dungeon questions in the same
// shape as story data, without the level wrapper. A player with no
// dungeon row or empty slots yields an empty list.
func (s *ChallengeService) ChallengeData(playerName string) ([]QuestionData, error) {
	dungeon, err := s.DungeonRepo.FindByPlayerName(playerName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []QuestionData{}, nil
	} else if err != nil {
		return nil, err
	}

	return s.shapeByQuestionIDs(dungeon.QuestionIDs())
}

// InstructorDungeon returns the fixed Instructor identity's challenge
// set together with its lock flag.
func (s *ChallengeService) InstructorDungeon() (*InstructorData, error) {
	instructor, err := s.DungeonRepo.FindInstructor()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDungeonNotFound
	} else if err != nil {
		return nil, err
	}

	data, err := s.shapeByQuestionIDs(instructor.QuestionIDs())
	if err != nil {
		return nil, err
	}
	return &InstructorData{Lock: instructor.Lock, Data: data}, nil
}

// shapeByQuestionIDs shapes the referenced questions in first-seen
// slot order. A question filling several slots appears once; the read
// side is a set even though the slots are positional.
func (s *ChallengeService) shapeByQuestionIDs(ids []uint) ([]QuestionData, error) {
	questions, err := s.ContentRepo.QuestionsByIDs(ids)
	if err != nil {
		return nil, err
	}
	answers, err := s.ContentRepo.AnswersByQuestionIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.QuestionID] = q
	}
	ordered := make([]model.Question, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if q, ok := byID[id]; ok {
			seen[id] = true
			ordered = append(ordered, q)
		}
	}
	return shapeQuestions(ordered, answers), nil
}

// PossibleChallengeQuestions lists, per world in ascending id order,
// the question bodies the player has answered correctly at least once.
// Worlds without qualifying questions yield an empty inner list.
func (s *ChallengeService) PossibleChallengeQuestions(playerName string) ([][]string, error) {
	worlds, err := s.ContentRepo.ListWorlds()
	if err != nil {
		return nil, err
	}
	rows, err := s.ResponseRepo.CorrectQuestionRows(playerName)
	if err != nil {
		return nil, err
	}

	byWorld := make(map[uint][]string)
	for _, row := range rows {
		byWorld[row.WorldID] = append(byWorld[row.WorldID], row.QuestionBody)
	}

	grouped := make([][]string, 0, len(worlds))
	for _, w := range worlds {
		bodies := byWorld[w.WorldID]
		if bodies == nil {
			bodies = []string{}
		}
		grouped = append(grouped, bodies)
	}
	return grouped, nil
}

// UpdateDungeon replaces all five question slots, resolving each body
// to a question id. Any body that matches no question rejects the
// whole update; no partial write occurs.
func (s *ChallengeService) UpdateDungeon(playerName string, bodies []string) error {
	if _, err := s.DungeonRepo.FindByPlayerName(playerName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDungeonNotFound
		}
		return err
	}

	var ids [util.DungeonSlots]uint
	for i, body := range bodies {
		id, err := s.ContentRepo.FirstQuestionIDByBody(body)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		} else if err != nil {
			return err
		}
		ids[i] = id
	}

	return s.DungeonRepo.SetQuestions(playerName, ids)
}

// UpdateInstructorDungeon replaces the instructor's slots and lock
// flag with the same body-resolution policy as player dungeons.
func (s *ChallengeService) UpdateInstructorDungeon(bodies []string, lock bool) error {
	instructor, err := s.DungeonRepo.FindInstructor()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrDungeonNotFound
	} else if err != nil {
		return err
	}

	slots := make([]*uint, util.DungeonSlots)
	for i, body := range bodies {
		id, err := s.ContentRepo.FirstQuestionIDByBody(body)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		} else if err != nil {
			return err
		}
		idCopy := id
		slots[i] = &idCopy
	}

	instructor.Lock = lock
	instructor.Question1 = slots[0]
	instructor.Question2 = slots[1]
	instructor.Question3 = slots[2]
	instructor.Question4 = slots[3]
	instructor.Question5 = slots[4]
	return s.DungeonRepo.UpdateInstructor(instructor)
}
