package model

// Dungeon holds a player's fixed set of five challenge questions.
// Slots are nullable until the player assembles a dungeon.
type Dungeon struct {
	PlayerName string `gorm:"primaryKey;size:100;column:player_name" json:"player_name"`
	Lock       bool   `gorm:"column:lock;default:false" json:"lock"`
	Question1  *uint  `gorm:"column:question_1" json:"question_1"`
	Question2  *uint  `gorm:"column:question_2" json:"question_2"`
	Question3  *uint  `gorm:"column:question_3" json:"question_3"`
	Question4  *uint  `gorm:"column:question_4" json:"question_4"`
	Question5  *uint  `gorm:"column:question_5" json:"question_5"`
}

func (Dungeon) TableName() string {
	return "dungeon"
}

// QuestionIDs returns the populated slots in slot order.
func (d *Dungeon) QuestionIDs() []uint {
	ids := make([]uint, 0, 5)
	for _, q := range []*uint{d.Question1, d.Question2, d.Question3, d.Question4, d.Question5} {
		if q != nil {
			ids = append(ids, *q)
		}
	}
	return ids
}
