package pdfexport

import (
	"bytes"
	"fmt"

	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateReport формирует pdf-отчёт по результатам интервью
func GenerateReport(view interviewapimodels.FeedbackView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	// заголовок
	pdf.MultiCell(0, 8, fmt.Sprintf("Результаты интервью: %v", view.JobPosition), "", "L", false)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Общая оценка: %v/10, отвечено вопросов: %v", view.OverallRating, view.QuestionCount), "", "L", false)
	pdf.Ln(4)

	for k, item := range view.Items {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 6, fmt.Sprintf("Вопрос %v. %v", k+1, item.Question), "", "L", false)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 5, fmt.Sprintf("Оценка: %v/10", item.Rating), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Ответ кандидата: %v", item.UserAns), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Эталонный ответ: %v", item.CorrectAns), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Рекомендации: %v", item.Feedback), "", "L", false)
		pdf.Ln(3)
		if pdf.Error() != nil {
			return nil, pdf.Error()
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
