package feedbackhandler

import (
	"bytes"
	"fmt"
	"strings"

	answerstore "ai-interview-backend/lib/answer/store"
	"ai-interview-backend/db"
	pdfexport "ai-interview-backend/lib/export/pdf"
	xlsexport "ai-interview-backend/lib/export/xls"
	interviewstore "ai-interview-backend/lib/interview/store"
	"ai-interview-backend/lib/smtp"
	"ai-interview-backend/lib/utils/helpers"
	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetFeedback(mockID string) (*interviewapimodels.FeedbackView, error)
	ExportXlsx(mockID string) (*bytes.Buffer, error)
	ExportPdf(mockID string) ([]byte, error)
	SendReport(fromEmail, toEmail, mockID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		interviewStore: interviewstore.NewInstance(db.DB),
		answerStore:    answerstore.NewInstance(db.DB),
	}
}

type impl struct {
	interviewStore interviewstore.Provider
	answerStore    answerstore.Provider
}

// GetFeedback собирает результаты интервью с общей оценкой.
// Общая оценка - среднее по сохранённым ответам, один знак после запятой,
// отсутствующая оценка ответа учитывается как 0
func (i impl) GetFeedback(mockID string) (*interviewapimodels.FeedbackView, error) {
	rec, err := i.interviewStore.GetByMockID(mockID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения интервью")
	}
	if rec == nil {
		return nil, errors.New("интервью не найдено")
	}
	list, err := i.answerStore.ListByMockID(mockID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения ответов")
	}
	view := interviewapimodels.FeedbackView{
		MockID:        mockID,
		JobPosition:   rec.JobPosition,
		QuestionCount: len(list),
		Items:         make([]interviewapimodels.AnswerView, 0, len(list)),
	}
	total := 0
	for _, item := range list {
		total += item.Rating
		view.Items = append(view.Items, interviewapimodels.AnswerView{
			Question:   item.Question,
			CorrectAns: item.CorrectAns,
			UserAns:    item.UserAns,
			Feedback:   item.Feedback,
			Rating:     item.Rating,
			CreatedAt:  item.CreatedAt,
		})
	}
	if len(list) > 0 {
		view.OverallRating = helpers.RoundToTenth(float64(total) / float64(len(list)))
	}
	return &view, nil
}

func (i impl) ExportXlsx(mockID string) (*bytes.Buffer, error) {
	view, err := i.GetFeedback(mockID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportFeedback(*view)
}

func (i impl) ExportPdf(mockID string) ([]byte, error) {
	view, err := i.GetFeedback(mockID)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateReport(*view)
}

func (i impl) SendReport(fromEmail, toEmail, mockID string) error {
	view, err := i.GetFeedback(mockID)
	if err != nil {
		return err
	}
	message := buildReportText(*view)
	err = smtp.Instance.SendEMail(fromEmail, toEmail, message, fmt.Sprintf("Результаты интервью: %v", view.JobPosition))
	if err != nil {
		return errors.Wrap(err, "ошибка отправки отчёта")
	}
	log.
		WithField("mock_id", mockID).
		WithField("to", toEmail).
		Info("отчёт по интервью отправлен")
	return nil
}

func buildReportText(view interviewapimodels.FeedbackView) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Интервью: %v\n", view.JobPosition))
	sb.WriteString(fmt.Sprintf("Общая оценка: %v/10, отвечено вопросов: %v\n\n", view.OverallRating, view.QuestionCount))
	for k, item := range view.Items {
		sb.WriteString(fmt.Sprintf("Вопрос %v: %v\n", k+1, item.Question))
		sb.WriteString(fmt.Sprintf("Оценка: %v/10\n", item.Rating))
		sb.WriteString(fmt.Sprintf("Ваш ответ: %v\n", item.UserAns))
		sb.WriteString(fmt.Sprintf("Рекомендации: %v\n\n", item.Feedback))
	}
	return sb.String()
}
