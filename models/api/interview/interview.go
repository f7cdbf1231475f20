package interviewapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CreateInterviewRequest struct {
	JobPosition   string `json:"job_position"`   // Должность
	JobDesc       string `json:"job_desc"`       // Описание вакансии, требования, стек
	JobExperience int    `json:"job_experience"` // Опыт работы в годах
}

func (r CreateInterviewRequest) Validate() error {
	if len(strings.TrimSpace(r.JobPosition)) == 0 {
		return errors.New("должность не должна быть пустой")
	}
	if len(strings.TrimSpace(r.JobDesc)) == 0 {
		return errors.New("описание вакансии не должно быть пустым")
	}
	if r.JobExperience < 0 || r.JobExperience > 50 {
		return errors.New("опыт работы должен быть в диапазоне от 0 до 50 лет")
	}
	return nil
}

// QuestionAnswer - пара вопрос/эталонный ответ,
// имена json-полей фиксированы форматом ответа ИИ
type QuestionAnswer struct {
	Question string `json:"Question"`
	Answer   string `json:"Answer"`
}

type InterviewView struct {
	MockID        string    `json:"mock_id"`
	JobPosition   string    `json:"job_position"`
	JobDesc       string    `json:"job_desc"`
	JobExperience int       `json:"job_experience"`
	QuestionCount int       `json:"question_count"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}
