package service

import (
	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/model"
	"github.com/quizforge/quizforge/internal/repository"
)

type fakeQuizRepo struct {
	quizzes map[uuid.UUID]*model.Quiz

	savedQuizzes []*model.Quiz
	saveErr      error
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[uuid.UUID]*model.Quiz)}
}

func (f *fakeQuizRepo) FindByID(id uuid.UUID) (*model.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, &model.QuizNotFoundError{QuizID: id}
	}
	return quiz, nil
}

func (f *fakeQuizRepo) FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	return f.FindByID(id)
}

func (f *fakeQuizRepo) FindAllByCreator(creatorID uuid.UUID) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, quiz := range f.quizzes {
		if quiz.CreatorID == creatorID {
			out = append(out, *quiz)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) Save(quiz *model.Quiz) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedQuizzes = append(f.savedQuizzes, quiz)
	f.quizzes[quiz.ID] = quiz
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, &model.UserNotFoundError{UserID: id}
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, &model.UserNotFoundByEmailError{Email: email}
}

type participationKey struct {
	quizID        uuid.UUID
	participantID uuid.UUID
}

type fakeParticipationRepo struct {
	participations map[participationKey]*model.Participation

	savedParticipations []*model.Participation
	saveErr             error
}

func newFakeParticipationRepo() *fakeParticipationRepo {
	return &fakeParticipationRepo{participations: make(map[participationKey]*model.Participation)}
}

func (f *fakeParticipationRepo) add(p *model.Participation) {
	f.participations[participationKey{p.QuizID, p.ParticipantID}] = p
}

func (f *fakeParticipationRepo) FindByQuizAndParticipant(quizID, participantID uuid.UUID) (*model.Participation, error) {
	p, ok := f.participations[participationKey{quizID, participantID}]
	if !ok {
		return nil, &model.ParticipationNotFoundError{QuizID: quizID, ParticipantID: participantID}
	}
	return p, nil
}

func (f *fakeParticipationRepo) FindAllByParticipant(participantID uuid.UUID) ([]model.Participation, error) {
	var out []model.Participation
	for _, p := range f.participations {
		if p.ParticipantID == participantID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeParticipationRepo) Save(p *model.Participation) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedParticipations = append(f.savedParticipations, p)
	f.add(p)
	return nil
}

type fakeQuestionRepo struct {
	questions map[uint]model.Question

	findCalls   int
	lastFindIDs []uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uint]model.Question)}
}

func (f *fakeQuestionRepo) FindByIDs(ids []uint) (map[uint]model.Question, error) {
	f.findCalls++
	f.lastFindIDs = ids
	out := make(map[uint]model.Question)
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Save(q *model.Question) error {
	f.questions[q.ID] = *q
	return nil
}

type fakeAnswerRepo struct {
	answers map[uint]model.Answer

	findCalls int
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[uint]model.Answer)}
}

func (f *fakeAnswerRepo) FindByIDs(ids []uint) (map[uint]model.Answer, error) {
	f.findCalls++
	out := make(map[uint]model.Answer)
	for _, id := range ids {
		if a, ok := f.answers[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) Save(a *model.Answer) error {
	f.answers[a.ID] = *a
	return nil
}

type fakeSubmissionRepo struct {
	saved       []model.AnswerSubmission
	bulkSaveErr error
}

func (f *fakeSubmissionRepo) BulkSave(submissions []model.AnswerSubmission) error {
	if f.bulkSaveErr != nil {
		return f.bulkSaveErr
	}
	f.saved = append(f.saved, submissions...)
	return nil
}

type fakeInvitationRepo struct {
	invitations map[uuid.UUID]*model.Invitation

	savedInvitations []*model.Invitation
	saveErr          error
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[uuid.UUID]*model.Invitation)}
}

func (f *fakeInvitationRepo) FindByID(id uuid.UUID) (*model.Invitation, error) {
	invitation, ok := f.invitations[id]
	if !ok {
		return nil, &model.InvitationNotFoundError{InvitationID: id}
	}
	return invitation, nil
}

func (f *fakeInvitationRepo) ExistsByQuizAndInvited(quizID, invitedID uuid.UUID) (bool, error) {
	for _, invitation := range f.invitations {
		if invitation.QuizID == quizID && invitation.InvitedID == invitedID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInvitationRepo) Save(invitation *model.Invitation) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedInvitations = append(f.savedInvitations, invitation)
	f.invitations[invitation.ID] = invitation
	return nil
}

// fakeStore hands back the same fakes inside and outside transactions so
// tests can observe writes performed within a transaction scope.
type fakeStore struct {
	quizRepo          *fakeQuizRepo
	questionRepo      *fakeQuestionRepo
	answerRepo        *fakeAnswerRepo
	participationRepo *fakeParticipationRepo
	submissionRepo    *fakeSubmissionRepo
	invitationRepo    *fakeInvitationRepo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		quizRepo:          newFakeQuizRepo(),
		questionRepo:      newFakeQuestionRepo(),
		answerRepo:        newFakeAnswerRepo(),
		participationRepo: newFakeParticipationRepo(),
		submissionRepo:    &fakeSubmissionRepo{},
		invitationRepo:    newFakeInvitationRepo(),
	}
}

func (s *fakeStore) Quizzes() repository.QuizRepository                       { return s.quizRepo }
func (s *fakeStore) Questions() repository.QuestionRepository                 { return s.questionRepo }
func (s *fakeStore) Answers() repository.AnswerRepository                     { return s.answerRepo }
func (s *fakeStore) Participations() repository.ParticipationRepository       { return s.participationRepo }
func (s *fakeStore) AnswerSubmissions() repository.AnswerSubmissionRepository { return s.submissionRepo }
func (s *fakeStore) Invitations() repository.InvitationRepository             { return s.invitationRepo }

type fakeTxManager struct {
	store *fakeStore

	calls int
}

func (m *fakeTxManager) Transaction(fn func(tx repository.Store) error) error {
	m.calls++
	return fn(m.store)
}

type fakeParticipationFinder struct {
	scores        map[uuid.UUID]*model.QuizScoresSummary
	progress      map[uuid.UUID]*model.QuizProgressSummary
	participation map[participationKey]*model.UserParticipationData
}

func newFakeParticipationFinder() *fakeParticipationFinder {
	return &fakeParticipationFinder{
		scores:        make(map[uuid.UUID]*model.QuizScoresSummary),
		progress:      make(map[uuid.UUID]*model.QuizProgressSummary),
		participation: make(map[participationKey]*model.UserParticipationData),
	}
}

func (f *fakeParticipationFinder) FindQuizScoresSummary(quizID uuid.UUID) (*model.QuizScoresSummary, error) {
	if summary, ok := f.scores[quizID]; ok {
		return summary, nil
	}
	return &model.QuizScoresSummary{}, nil
}

func (f *fakeParticipationFinder) FindCreatorQuizProgressSummary(quizID uuid.UUID) (*model.QuizProgressSummary, error) {
	if summary, ok := f.progress[quizID]; ok {
		return summary, nil
	}
	return &model.QuizProgressSummary{}, nil
}

func (f *fakeParticipationFinder) FindUserParticipationForQuiz(quizID, userID uuid.UUID) (*model.UserParticipationData, error) {
	data, ok := f.participation[participationKey{quizID, userID}]
	if !ok {
		return nil, &model.ParticipationNotFoundError{QuizID: quizID, ParticipantID: userID}
	}
	return data, nil
}

type fakeInvitationSender struct {
	sentIDs   []uuid.UUID
	sentLinks []string
	sendErr   error
}

func (f *fakeInvitationSender) SendInvitation(invitationID uuid.UUID, acceptanceLink string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentIDs = append(f.sentIDs, invitationID)
	f.sentLinks = append(f.sentLinks, acceptanceLink)
	return nil
}
