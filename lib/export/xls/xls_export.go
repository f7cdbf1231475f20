package xlsexport

import (
	"bytes"
	"fmt"

	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportFeedback(view interviewapimodels.FeedbackView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var feedbackHeaders = []string{"№", "Вопрос", "Эталонный ответ", "Ответ кандидата", "Оценка", "Рекомендации"}

func (i impl) ExportFeedback(view interviewapimodels.FeedbackView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, feedbackHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(view.Items) != 0 {
		row, err = writeFeedbackData(f, sheet, view, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	// итоговая строка с общей оценкой
	row++
	if err := writeColumn(f, sheet, 4, row, "Общая оценка"); err != nil {
		return nil, err
	}
	if err := writeColumn(f, sheet, 5, row, fmt.Sprintf("%v/10", view.OverallRating)); err != nil {
		return nil, err
	}
	f.SetSheetName(sheet, "Результаты интервью")
	return f.WriteToBuffer()
}

func writeFeedbackData(f *excelize.File, sheet string, view interviewapimodels.FeedbackView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(feedbackHeaders), len(view.Items)+1); err != nil {
		return row, err
	}
	for k, item := range view.Items {
		row++
		// "№"
		col := 1
		if err := writeColumn(f, sheet, col, row, k+1); err != nil {
			return row, err
		}

		// "Вопрос"
		col++
		if err := writeColumn(f, sheet, col, row, item.Question); err != nil {
			return row, err
		}

		// "Эталонный ответ"
		col++
		if err := writeColumn(f, sheet, col, row, item.CorrectAns); err != nil {
			return row, err
		}

		// "Ответ кандидата"
		col++
		if err := writeColumn(f, sheet, col, row, item.UserAns); err != nil {
			return row, err
		}

		// "Оценка"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v/10", item.Rating)); err != nil {
			return row, err
		}

		// "Рекомендации"
		col++
		if err := writeColumn(f, sheet, col, row, item.Feedback); err != nil {
			return row, err
		}
	}
	return row, nil
}
