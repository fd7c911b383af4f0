package repository

import (
	"tower_trivia_backend/internal/model"

	"gorm.io/gorm"
)

type DungeonRepository struct {
	DB *gorm.DB
}

func NewDungeonRepository(db *gorm.DB) *DungeonRepository {
	return &DungeonRepository{DB: db}
}

func (r *DungeonRepository) FindByPlayerName(playerName string) (*model.Dungeon, error) {
	var dungeon model.Dungeon
	err := r.DB.Where("player_name = ?", playerName).First(&dungeon).Error
	return &dungeon, err
}

// SetQuestions replaces all five slots of the player's dungeon row.
func (r *DungeonRepository) SetQuestions(playerName string, ids [5]uint) error {
	return r.DB.Model(&model.Dungeon{}).
		Where("player_name = ?", playerName).
		Updates(map[string]interface{}{
			"question_1": ids[0],
			"question_2": ids[1],
			"question_3": ids[2],
			"question_4": ids[3],
			"question_5": ids[4],
		}).Error
}

func (r *DungeonRepository) FindInstructor() (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.DB.Where("instructor_name = ?", "Instructor").First(&instructor).Error
	return &instructor, err
}

func (r *DungeonRepository) UpdateInstructor(instructor *model.Instructor) error {
	return r.DB.Save(instructor).Error
}
