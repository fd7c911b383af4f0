package model

type Level struct {
	LevelID   uint   `gorm:"primaryKey;autoIncrement;column:level_id" json:"level_id"`
	TowerID   uint   `gorm:"index;not null;column:tower_id" json:"tower_id"`
	LevelName string `gorm:"size:100;not null;column:level_name" json:"level_name"`
}

func (Level) TableName() string {
	return "level"
}
