package util

import "errors"

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNameTaken        = errors.New("player name already taken")
	ErrTowerNotFound    = errors.New("tower not found")
	ErrLevelNotFound    = errors.New("no level found for tower")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrDungeonNotFound  = errors.New("dungeon not found")
	ErrBadAnswerSet     = errors.New("question must have exactly one correct answer")
	ErrNotImage         = errors.New("file is not an image")
)
