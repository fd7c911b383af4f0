package model

// World is the top of the content hierarchy: a world owns towers,
// a tower owns ordered levels, a level owns questions.
type World struct {
	WorldID   uint   `gorm:"primaryKey;autoIncrement;column:world_id" json:"world_id"`
	WorldName string `gorm:"size:100;not null;column:world_name" json:"world_name"`
}

func (World) TableName() string {
	return "world"
}
