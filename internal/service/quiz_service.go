package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/quizforge/quizforge/internal/dto"
	"github.com/quizforge/quizforge/internal/model"
	"github.com/quizforge/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	CreateQuiz(creatorID uuid.UUID, req dto.CreateQuizRequest) (*dto.CreateQuizResponse, error)
	GetQuiz(quizID, requesterID uuid.UUID) (*dto.QuizDetailDTO, error)
	GetCreatorQuizzes(creatorID uuid.UUID) ([]dto.QuizSummaryDTO, error)
	GetUserQuizzes(userID uuid.UUID) (*dto.UserQuizzesResponse, error)
}

type quizService struct {
	quizRepo          repository.QuizRepository
	userRepo          repository.UserRepository
	participationRepo repository.ParticipationRepository
	invitationRepo    repository.InvitationRepository
	txManager         repository.TransactionManager
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	participationRepo repository.ParticipationRepository,
	invitationRepo repository.InvitationRepository,
	txManager repository.TransactionManager,
) QuizService {
	return &quizService{
		quizRepo:          quizRepo,
		userRepo:          userRepo,
		participationRepo: participationRepo,
		invitationRepo:    invitationRepo,
		txManager:         txManager,
	}
}

func (s *quizService) CreateQuiz(creatorID uuid.UUID, req dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
	log.Info().Str("creatorID", creatorID.String()).Str("title", req.Title).Msg("Creating quiz")

	creator, err := s.userRepo.FindByID(creatorID)
	if err != nil {
		return nil, err
	}

	quiz, err := model.NewQuiz(req.Title, req.Description, creator.ID)
	if err != nil {
		return nil, err
	}

	for _, questionData := range req.Questions {
		question, err := mapQuestion(quiz.ID, questionData)
		if err != nil {
			return nil, err
		}
		quiz.Questions = append(quiz.Questions, *question)
	}

	// The quiz, its questions, and their answers persist together or not
	// at all.
	err = s.txManager.Transaction(func(tx repository.Store) error {
		return tx.Quizzes().Save(quiz)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("quizID", quiz.ID.String()).Str("creatorID", creatorID.String()).Msg("Quiz created")
	return &dto.CreateQuizResponse{QuizID: quiz.ID}, nil
}

// mapQuestion builds a question and enforces the creation-time invariants:
// exactly three answers, exactly one of them correct.
func mapQuestion(quizID uuid.UUID, data dto.QuestionCreateDTO) (*model.Question, error) {
	if len(data.Answers) != model.RequiredNumberOfAnswers {
		return nil, &model.InvalidNumberOfAnswersError{QuestionOrder: data.Order}
	}

	correctAnswers := 0
	answers := make([]model.Answer, 0, len(data.Answers))
	for _, answerData := range data.Answers {
		if answerData.IsCorrect {
			correctAnswers++
		}
		answers = append(answers, model.Answer{
			Text:      answerData.Text,
			IsCorrect: answerData.IsCorrect,
			Order:     answerData.Order,
		})
	}
	if correctAnswers != 1 {
		return nil, &model.InvalidNumberOfCorrectAnswersError{QuestionOrder: data.Order}
	}

	return &model.Question{
		QuizID:  quizID,
		Text:    data.Text,
		Order:   data.Order,
		Points:  data.Points,
		Answers: answers,
	}, nil
}

func (s *quizService) GetQuiz(quizID, requesterID uuid.UUID) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeQuizView(quiz, requesterID); err != nil {
		return nil, err
	}

	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy quiz model to detail DTO")
		return nil, err
	}
	return &resp, nil
}

// authorizeQuizView restricts the quiz detail to its creator, a participant,
// or an invited user.
func (s *quizService) authorizeQuizView(quiz *model.Quiz, requesterID uuid.UUID) error {
	if quiz.CreatorID == requesterID {
		return nil
	}

	_, err := s.participationRepo.FindByQuizAndParticipant(quiz.ID, requesterID)
	if err == nil {
		return nil
	}
	var notFound *model.ParticipationNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}

	invited, err := s.invitationRepo.ExistsByQuizAndInvited(quiz.ID, requesterID)
	if err != nil {
		return err
	}
	if !invited {
		return &model.UnauthorizedQuizAccessError{QuizID: quiz.ID, UserID: requesterID}
	}
	return nil
}

func (s *quizService) GetCreatorQuizzes(creatorID uuid.UUID) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllByCreator(creatorID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for i := range quizzes {
		summaries = append(summaries, dto.QuizSummaryDTO{
			ID:             quizzes[i].ID,
			Title:          quizzes[i].Title,
			Description:    quizzes[i].Description,
			TotalQuestions: quizzes[i].TotalQuestions(),
			CreatedAt:      quizzes[i].CreatedAt,
		})
	}
	return summaries, nil
}

func (s *quizService) GetUserQuizzes(userID uuid.UUID) (*dto.UserQuizzesResponse, error) {
	participations, err := s.participationRepo.FindAllByParticipant(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.QuizParticipationSummary, 0, len(participations))
	for i := range participations {
		p := &participations[i]
		summaries = append(summaries, dto.QuizParticipationSummary{
			QuizID:      p.QuizID,
			QuizTitle:   p.Quiz.Title,
			Status:      string(p.Status()),
			Score:       p.Score,
			CompletedAt: p.FormattedCompletedAt(),
			StartedAt:   p.FormattedCreatedAt(),
		})
	}
	return &dto.UserQuizzesResponse{Quizzes: summaries}, nil
}
