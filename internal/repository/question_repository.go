package repository

import (
	"github.com/quizforge/quizforge/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// FindByIDs returns a map keyed by question id; ids that do not exist
	// are simply absent from the map.
	FindByIDs(ids []uint) (map[uint]model.Question, error)
	Save(question *model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByIDs(ids []uint) (map[uint]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]model.Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}
	return byID, nil
}

func (r *questionRepository) Save(question *model.Question) error {
	return r.db.Save(question).Error
}
