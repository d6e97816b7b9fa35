package dto

// QuizCategory selects the category to draw from. ID 0 means every category;
// Type is informational.
type QuizCategory struct {
	ID   *FlexInt `json:"id" validate:"required,min=0" swaggertype:"integer" example:"1"`
	Type string   `json:"type" example:"Science"`
}

// QuizRequest is the body of POST /quizzes
// @Description Request body for drawing the next quiz question
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// QuizResponse carries the next question, or null when the quiz is over
type QuizResponse struct {
	Success  bool              `json:"success" example:"true"`
	Question *QuestionResponse `json:"question"`
}
