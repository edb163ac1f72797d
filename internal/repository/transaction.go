package repository

import "gorm.io/gorm"

// Store bundles the repositories that can take part in a single transaction.
type Store interface {
	Quizzes() QuizRepository
	Questions() QuestionRepository
	Answers() AnswerRepository
	Participations() ParticipationRepository
	AnswerSubmissions() AnswerSubmissionRepository
	Invitations() InvitationRepository
}

// TransactionManager runs a function against a transaction-scoped Store.
// If the function returns an error the transaction is rolled back and no
// partial writes remain visible.
type TransactionManager interface {
	Transaction(fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) Quizzes() QuizRepository                    { return NewQuizRepository(s.db) }
func (s *gormStore) Questions() QuestionRepository              { return NewQuestionRepository(s.db) }
func (s *gormStore) Answers() AnswerRepository                  { return NewAnswerRepository(s.db) }
func (s *gormStore) Participations() ParticipationRepository    { return NewParticipationRepository(s.db) }
func (s *gormStore) AnswerSubmissions() AnswerSubmissionRepository {
	return NewAnswerSubmissionRepository(s.db)
}
func (s *gormStore) Invitations() InvitationRepository { return NewInvitationRepository(s.db) }

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &gormTransactionManager{db: db}
}

func (m *gormTransactionManager) Transaction(fn func(tx Store) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
