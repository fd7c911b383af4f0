package repository

import (
	"tower_trivia_backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) Create(response *model.Response) error {
	return r.DB.Create(response).Error
}

// CorrectQuestionRows returns, flattened per world, the questions the
// player has answered correctly at least once.
func (r *ResponseRepository) CorrectQuestionRows(playerName string) ([]WorldQuestionRow, error) {
	var rows []WorldQuestionRow
	err := r.DB.
		Table("response").
		Select("world.world_id, question.question_body").
		Joins("JOIN answer ON answer.answer_id = response.answer_id").
		Joins("JOIN question ON question.question_id = answer.question_id").
		Joins("JOIN level ON level.level_id = question.level_id").
		Joins("JOIN tower ON tower.tower_id = level.tower_id").
		Joins("JOIN world ON world.world_id = tower.world_id").
		Joins("JOIN player ON player.player_id = response.player_id").
		Where("answer.correct = ? AND player.player_name = ?", true, playerName).
		Group("world.world_id, question.question_id, question.question_body").
		Order("world.world_id, question.question_id").
		Scan(&rows).Error
	return rows, err
}
