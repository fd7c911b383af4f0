package model

// Instructor mirrors Dungeon for the single privileged identity.
type Instructor struct {
	InstructorName string `gorm:"primaryKey;size:100;column:instructor_name" json:"instructor_name"`
	Lock           bool   `gorm:"column:lock;default:false" json:"lock"`
	Question1      *uint  `gorm:"column:question_1" json:"question_1"`
	Question2      *uint  `gorm:"column:question_2" json:"question_2"`
	Question3      *uint  `gorm:"column:question_3" json:"question_3"`
	Question4      *uint  `gorm:"column:question_4" json:"question_4"`
	Question5      *uint  `gorm:"column:question_5" json:"question_5"`
}

func (Instructor) TableName() string {
	return "instructor"
}

func (i *Instructor) QuestionIDs() []uint {
	ids := make([]uint, 0, 5)
	for _, q := range []*uint{i.Question1, i.Question2, i.Question3, i.Question4, i.Question5} {
		if q != nil {
			ids = append(ids, *q)
		}
	}
	return ids
}
