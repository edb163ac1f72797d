package repository

import (
	"github.com/quizforge/quizforge/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	// FindByIDs returns a map keyed by answer id; absent ids are missing
	// from the map.
	FindByIDs(ids []uint) (map[uint]model.Answer, error)
	Save(answer *model.Answer) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByIDs(ids []uint) (map[uint]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("id IN ?", ids).Find(&answers).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]model.Answer, len(answers))
	for _, answer := range answers {
		byID[answer.ID] = answer
	}
	return byID, nil
}

func (r *answerRepository) Save(answer *model.Answer) error {
	return r.db.Save(answer).Error
}
