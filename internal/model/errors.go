package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Domain errors carry the identifiers involved as structured fields so
// callers can match on the error type instead of parsing messages.

type QuizNotFoundError struct {
	QuizID uuid.UUID
}

func (e *QuizNotFoundError) Error() string {
	return fmt.Sprintf("quiz with ID '%s' not found", e.QuizID)
}

type UserNotFoundError struct {
	UserID uuid.UUID
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user with ID '%s' not found", e.UserID)
}

type UserNotFoundByEmailError struct {
	Email string
}

func (e *UserNotFoundByEmailError) Error() string {
	return fmt.Sprintf("user with email '%s' not found", e.Email)
}

type ParticipationNotFoundError struct {
	QuizID        uuid.UUID
	ParticipantID uuid.UUID
}

func (e *ParticipationNotFoundError) Error() string {
	return fmt.Sprintf("participation not found for quiz %s and participant %s", e.QuizID, e.ParticipantID)
}

type ParticipationAlreadyExistsError struct {
	QuizID        uuid.UUID
	ParticipantID uuid.UUID
}

func (e *ParticipationAlreadyExistsError) Error() string {
	return fmt.Sprintf("participation already exists for quiz %s and participant %s", e.QuizID, e.ParticipantID)
}

type QuizAlreadyCompletedError struct {
	QuizID uuid.UUID
}

func (e *QuizAlreadyCompletedError) Error() string {
	return fmt.Sprintf("quiz %s has already been completed", e.QuizID)
}

type DuplicateAnswerSubmissionError struct {
	QuestionID uint
}

func (e *DuplicateAnswerSubmissionError) Error() string {
	return fmt.Sprintf("multiple answers provided for question '%d', each question can only be answered once", e.QuestionID)
}

type IncompleteQuizSubmissionError struct {
	ExpectedAnswers int
	ReceivedAnswers int
}

func (e *IncompleteQuizSubmissionError) Error() string {
	return fmt.Sprintf("all questions must be answered to complete the quiz, expected %d answers but received %d",
		e.ExpectedAnswers, e.ReceivedAnswers)
}

type InvalidQuestionForQuizError struct {
	QuestionID uint
	QuizID     uuid.UUID
}

func (e *InvalidQuestionForQuizError) Error() string {
	return fmt.Sprintf("question '%d' does not belong to quiz '%s'", e.QuestionID, e.QuizID)
}

type InvalidAnswerForQuestionError struct {
	AnswerID   uint
	QuestionID uint
}

func (e *InvalidAnswerForQuestionError) Error() string {
	return fmt.Sprintf("answer '%d' does not belong to question '%d'", e.AnswerID, e.QuestionID)
}

type EmptyQuizTitleError struct{}

func (e *EmptyQuizTitleError) Error() string {
	return "quiz title must not be empty"
}

type InvalidQuizTitleLengthError struct {
	Title     string
	MaxLength int
}

func (e *InvalidQuizTitleLengthError) Error() string {
	return fmt.Sprintf("quiz title exceeds the maximum length of %d characters", e.MaxLength)
}

type QuizAlreadyExistsError struct {
	Title     string
	CreatorID uuid.UUID
}

func (e *QuizAlreadyExistsError) Error() string {
	return fmt.Sprintf("quiz with title '%s' already exists for creator %s", e.Title, e.CreatorID)
}

type InvalidNumberOfAnswersError struct {
	QuestionOrder int
}

func (e *InvalidNumberOfAnswersError) Error() string {
	return fmt.Sprintf("question %d must have exactly %d answers", e.QuestionOrder, RequiredNumberOfAnswers)
}

type InvalidNumberOfCorrectAnswersError struct {
	QuestionOrder int
}

func (e *InvalidNumberOfCorrectAnswersError) Error() string {
	return fmt.Sprintf("question %d must have exactly one correct answer", e.QuestionOrder)
}

type InvitationNotFoundError struct {
	InvitationID uuid.UUID
}

func (e *InvitationNotFoundError) Error() string {
	return fmt.Sprintf("invitation with ID '%s' not found", e.InvitationID)
}

type InvitationAlreadyExistsError struct {
	QuizID    uuid.UUID
	InvitedID uuid.UUID
}

func (e *InvitationAlreadyExistsError) Error() string {
	return fmt.Sprintf("invitation already exists for quiz %s and user %s", e.QuizID, e.InvitedID)
}

type InvitationAlreadyAcceptedError struct {
	InvitationID uuid.UUID
}

func (e *InvitationAlreadyAcceptedError) Error() string {
	return fmt.Sprintf("invitation %s has already been accepted", e.InvitationID)
}

type OnlyInvitedUserCanAcceptInvitationError struct {
	InvitationID uuid.UUID
	UserID       uuid.UUID
}

func (e *OnlyInvitedUserCanAcceptInvitationError) Error() string {
	return fmt.Sprintf("user %s is not the invited user of invitation %s", e.UserID, e.InvitationID)
}

type OnlyQuizCreatorCanSendInvitationError struct {
	QuizID uuid.UUID
	UserID uuid.UUID
}

func (e *OnlyQuizCreatorCanSendInvitationError) Error() string {
	return fmt.Sprintf("user %s is not the creator of quiz %s", e.UserID, e.QuizID)
}

type CreatorCannotBeInvitedError struct {
	QuizID uuid.UUID
}

func (e *CreatorCannotBeInvitedError) Error() string {
	return fmt.Sprintf("the creator of quiz %s cannot be invited to it", e.QuizID)
}

type UnauthorizedQuizAccessError struct {
	QuizID uuid.UUID
	UserID uuid.UUID
}

func (e *UnauthorizedQuizAccessError) Error() string {
	return fmt.Sprintf("user %s is not allowed to access quiz %s", e.UserID, e.QuizID)
}
