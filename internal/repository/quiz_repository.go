package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	FindByID(id uuid.UUID) (*model.Quiz, error)
	FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error)
	FindAllByCreator(creatorID uuid.UUID) ([]model.Quiz, error)
	Save(quiz *model.Quiz) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) FindByID(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.QuizNotFoundError{QuizID: id}
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.\"order\" ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.\"order\" ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.QuizNotFoundError{QuizID: id}
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllByCreator(creatorID uuid.UUID) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Preload("Questions").
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) Save(quiz *model.Quiz) error {
	if err := r.db.Save(quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &model.QuizAlreadyExistsError{Title: quiz.Title, CreatorID: quiz.CreatorID}
		}
		return err
	}
	return nil
}
