package model

import "time"

// Response is the append-only log of answer submissions.
type Response struct {
	ResponseID uint      `gorm:"primaryKey;autoIncrement;column:response_id" json:"response_id"`
	PlayerID   uint      `gorm:"index;not null;column:player_id" json:"player_id"`
	AnswerID   uint      `gorm:"index;not null;column:answer_id" json:"answer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Response) TableName() string {
	return "response"
}
