package xlsexport

import (
	"testing"

	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportFeedback(t *testing.T) {
	t.Run(`export check`, func(t *testing.T) {
		view := interviewapimodels.FeedbackView{
			MockID:        "mock-1",
			JobPosition:   "Backend Developer",
			OverallRating: 7.5,
			QuestionCount: 2,
			Items: []interviewapimodels.AnswerView{
				{Question: "Q1", CorrectAns: "A1", UserAns: "ответ 1", Feedback: "ок", Rating: 7},
				{Question: "Q2", CorrectAns: "A2", UserAns: "ответ 2", Feedback: "норм", Rating: 8},
			},
		}

		buf, err := impl{}.ExportFeedback(view)
		require.Nil(t, err)
		require.NotNil(t, buf)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		sheet := "Результаты интервью"
		value, err := f.GetCellValue(sheet, "B2")
		require.Nil(t, err)
		require.Equal(t, "Q1", value)

		value, err = f.GetCellValue(sheet, "E3")
		require.Nil(t, err)
		require.Equal(t, "8/10", value)

		value, err = f.GetCellValue(sheet, "E4")
		require.Nil(t, err)
		require.Equal(t, "7.5/10", value)
	})
}
