package repository

import (
	"errors"

	"github.com/quizforge/quizforge/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerSubmissionRepository interface {
	BulkSave(submissions []model.AnswerSubmission) error
}

type answerSubmissionRepository struct {
	db *gorm.DB
}

func NewAnswerSubmissionRepository(db *gorm.DB) AnswerSubmissionRepository {
	return &answerSubmissionRepository{db: db}
}

// BulkSave inserts submissions one by one so a (participation, question)
// uniqueness violation can be attributed to the offending question. The
// unique index backs up the in-memory duplicate check against concurrent
// submissions racing past it.
func (r *answerSubmissionRepository) BulkSave(submissions []model.AnswerSubmission) error {
	for i := range submissions {
		if err := r.db.Omit(clause.Associations).Create(&submissions[i]).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &model.DuplicateAnswerSubmissionError{QuestionID: submissions[i].QuestionID}
			}
			return err
		}
	}
	return nil
}
