package dto

import (
	"time"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type SubmitQuizAnswersResponse struct {
	Message            string    `json:"message"`
	ParticipationID    uuid.UUID `json:"participation_id"`
	QuizID             uuid.UUID `json:"quiz_id"`
	QuizTitle          string    `json:"quiz_title"`
	Score              int       `json:"score"`
	TotalPossibleScore int       `json:"total_possible_score"`
	CompletedAt        string    `json:"completed_at"`
}

type CreateQuizResponse struct {
	QuizID uuid.UUID `json:"quiz_id"`
}

// AnswerDTO deliberately carries no correctness flag: the quiz detail view
// is served to participants before they submit.
type AnswerDTO struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type QuestionDTO struct {
	ID      uint        `json:"id"`
	Text    string      `json:"text"`
	Order   int         `json:"order"`
	Points  int         `json:"points"`
	Answers []AnswerDTO `json:"answers,omitempty"`
}

type QuizDetailDTO struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Questions   []QuestionDTO `json:"questions,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

type QuizSummaryDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

type SendInvitationResponse struct {
	InvitationID             uuid.UUID `json:"invitation_id"`
	QuizTitle                string    `json:"quiz_title"`
	ParticipantEmail         string    `json:"participant_email"`
	InvitedAt                string    `json:"invited_at"`
	InvitationAcceptanceLink string    `json:"invitation_acceptance_link"`
}

type AcceptInvitationResponse struct {
	Message         string    `json:"message"`
	InvitationID    uuid.UUID `json:"invitation_id"`
	ParticipationID uuid.UUID `json:"participation_id"`
	QuizID          uuid.UUID `json:"quiz_id"`
	QuizTitle       string    `json:"quiz_title"`
}

// QuizParticipationSummary is one entry of a user's quiz listing.
type QuizParticipationSummary struct {
	QuizID      uuid.UUID `json:"quiz_id"`
	QuizTitle   string    `json:"quiz_title"`
	Status      string    `json:"status"`
	Score       *int      `json:"score,omitempty"`
	CompletedAt string    `json:"completed_at,omitempty"`
	StartedAt   string    `json:"started_at"`
}

type UserQuizzesResponse struct {
	Quizzes []QuizParticipationSummary `json:"quizzes"`
}

type ParticipationProgressDTO struct {
	Status          string   `json:"status"`
	InvitedAt       string   `json:"invited_at,omitempty"`
	CompletedAt     string   `json:"completed_at,omitempty"`
	Score           *int     `json:"score,omitempty"`
	ScorePercentage *float64 `json:"score_percentage,omitempty"`
}

type UserQuizProgressResponse struct {
	QuizID              uuid.UUID                `json:"quiz_id"`
	QuizTitle           string                   `json:"quiz_title"`
	QuizDescription     string                   `json:"quiz_description,omitempty"`
	TotalQuestions      int                      `json:"total_questions"`
	TotalPossiblePoints int                      `json:"total_possible_points"`
	QuizCreatedAt       string                   `json:"quiz_created_at"`
	Participation       ParticipationProgressDTO `json:"participation"`
}

type InvitationStatsDTO struct {
	TotalSent          int     `json:"total_sent"`
	TotalAccepted      int     `json:"total_accepted"`
	AcceptanceRate     float64 `json:"acceptance_rate"`
	PendingInvitations int     `json:"pending_invitations"`
}

type ParticipationStatsDTO struct {
	TotalParticipants     int     `json:"total_participants"`
	CompletedParticipants int     `json:"completed_participants"`
	CompletionRate        float64 `json:"completion_rate"`
}

type CreatorQuizProgressResponse struct {
	QuizID             uuid.UUID             `json:"quiz_id"`
	QuizTitle          string                `json:"quiz_title"`
	InvitationStats    InvitationStatsDTO    `json:"invitation_stats"`
	ParticipationStats ParticipationStatsDTO `json:"participation_stats"`
}

type QuizScoresResponse struct {
	QuizID            uuid.UUID `json:"quiz_id"`
	QuizTitle         string    `json:"quiz_title"`
	TotalParticipants int       `json:"total_participants"`
	AverageScore      float64   `json:"average_score"`
	MaxScore          float64   `json:"max_score"`
	MinScore          float64   `json:"min_score"`
	TopScorerEmail    string    `json:"top_scorer_email,omitempty"`
}
