package model

type Answer struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `gorm:"not null;uniqueIndex:idx_answers_question_order" json:"question_id"`
	Text       string `gorm:"size:500;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`
	Order      int    `gorm:"not null;uniqueIndex:idx_answers_question_order" json:"order"`
}
