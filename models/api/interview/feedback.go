package interviewapimodels

type FeedbackView struct {
	MockID        string       `json:"mock_id"`
	JobPosition   string       `json:"job_position"`
	OverallRating float64      `json:"overall_rating"` // Средняя оценка по отвеченным вопросам, один знак после запятой
	QuestionCount int          `json:"question_count"` // Кол-во отвеченных вопросов
	Items         []AnswerView `json:"items"`
}

type SendFeedbackRequest struct {
	Email string `json:"email"` // Адрес, на который отправить отчёт
}
