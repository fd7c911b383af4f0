package model

type Question struct {
	QuestionID   uint   `gorm:"primaryKey;autoIncrement;column:question_id" json:"question_id"`
	LevelID      uint   `gorm:"index;not null;column:level_id" json:"level_id"`
	QuestionBody string `gorm:"size:500;not null;column:question_body" json:"question_body"`
}

func (Question) TableName() string {
	return "question"
}
