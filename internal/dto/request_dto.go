package dto

// SubmittedAnswerDTO is one raw (question, answer) pair within a submission.
type SubmittedAnswerDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
	AnswerID   uint `json:"answer_id" binding:"required"`
}

// SubmitQuizAnswersRequest carries every answer of a quiz submission in the
// caller's order.
type SubmitQuizAnswersRequest struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
}

// AnswerCreateDTO is used within QuestionCreateDTO at quiz creation.
type AnswerCreateDTO struct {
	Text      string `json:"text" binding:"required,max=500"`
	IsCorrect bool   `json:"is_correct"`
	Order     int    `json:"order" binding:"required,min=1"`
}

type QuestionCreateDTO struct {
	Text    string            `json:"text" binding:"required"`
	Order   int               `json:"order" binding:"required,min=1"`
	Points  int               `json:"points" binding:"required,gt=0"`
	Answers []AnswerCreateDTO `json:"answers" binding:"required,dive"`
}

// CreateQuizRequest is for a creator to define a quiz with all its questions.
type CreateQuizRequest struct {
	Title       string              `json:"title" binding:"required,max=200"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type SendInvitationRequest struct {
	ParticipantEmail string `json:"participant_email" binding:"required,email"`
}
