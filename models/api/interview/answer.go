package interviewapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// MinAnswerChars - минимальная длина расшифровки ответа,
// более короткие ответы считаются шумом и не отправляются на оценку
const MinAnswerChars = 10

type SaveAnswerRequest struct {
	QuestionIndex int    `json:"question_index"` // Номер вопроса, начиная с 0
	UserAns       string `json:"user_ans"`       // Расшифровка ответа кандидата
}

func (r SaveAnswerRequest) Validate() error {
	if r.QuestionIndex < 0 {
		return errors.New("номер вопроса не может быть отрицательным")
	}
	if len([]rune(strings.TrimSpace(r.UserAns))) <= MinAnswerChars {
		return errors.New("ответ слишком короткий для оценки")
	}
	return nil
}

// AnswerScore - оценка ответа, как её возвращает ИИ
type AnswerScore struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

type AnswerView struct {
	Question   string    `json:"question"`
	CorrectAns string    `json:"correct_ans"`
	UserAns    string    `json:"user_ans"`
	Feedback   string    `json:"feedback"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}
