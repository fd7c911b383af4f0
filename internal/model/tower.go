package model

type Tower struct {
	TowerID   uint   `gorm:"primaryKey;autoIncrement;column:tower_id" json:"tower_id"`
	WorldID   uint   `gorm:"index;not null;column:world_id" json:"world_id"`
	TowerName string `gorm:"size:100;not null;column:tower_name" json:"tower_name"`
}

func (Tower) TableName() string {
	return "tower"
}
