package model

// Answer rows carry the correct flag; exactly one answer per question
// is expected to have Correct set.
type Answer struct {
	AnswerID   uint   `gorm:"primaryKey;autoIncrement;column:answer_id" json:"answer_id"`
	QuestionID uint   `gorm:"index;not null;column:question_id" json:"question_id"`
	AnswerBody string `gorm:"size:500;not null;column:answer_body" json:"answer_body"`
	Correct    bool   `gorm:"default:false" json:"correct"`
}

func (Answer) TableName() string {
	return "answer"
}
