package model

// swagger:model Player
type Player struct {
	PlayerID   uint   `gorm:"primaryKey;autoIncrement;column:player_id" json:"player_id"`
	PlayerName string `gorm:"size:100;uniqueIndex;not null;column:player_name" json:"player_name"`
	Password   string `gorm:"size:100;not null" json:"-"`
	Avatar     string `gorm:"size:255" json:"avatar,omitempty"`
}

func (Player) TableName() string {
	return "player"
}
