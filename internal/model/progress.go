package model

// Progress records a player's furthest level per tower. The composite
// unique index is the backstop against duplicate inserts when two
// increment calls race for the same (player, tower) pair.
type Progress struct {
	PlayerID uint `gorm:"uniqueIndex:idx_player_tower;not null;column:player_id" json:"player_id"`
	TowerID  uint `gorm:"uniqueIndex:idx_player_tower;not null;column:tower_id" json:"tower_id"`
	LevelID  uint `gorm:"not null;column:level_id" json:"level_id"`
}

func (Progress) TableName() string {
	return "progress"
}
