package model

// Read models for progress and score reporting, aggregated in the storage
// layer rather than loaded row by row.

type QuizScoresSummary struct {
	TotalParticipants int
	AverageScore      float64
	MaxScore          float64
	MinScore          float64
	TopScorerEmail    string
}

type InvitationStats struct {
	TotalSent          int
	TotalAccepted      int
	AcceptanceRate     float64
	PendingInvitations int
}

type ParticipationStats struct {
	TotalParticipants     int
	CompletedParticipants int
	CompletionRate        float64
}

type QuizProgressSummary struct {
	InvitationStats    InvitationStats
	ParticipationStats ParticipationStats
}

type UserParticipationData struct {
	Status      ParticipationStatus
	InvitedAt   string
	StartedAt   string
	CompletedAt string
	Score       *int
}
