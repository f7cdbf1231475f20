package interviewapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run(`create interview request check`, func(t *testing.T) {
		req := CreateInterviewRequest{
			JobPosition:   "Backend Developer",
			JobDesc:       "Go, gRPC",
			JobExperience: 3,
		}
		require.Nil(t, req.Validate())

		req.JobPosition = "  "
		require.NotNil(t, req.Validate())

		req.JobPosition = "Backend Developer"
		req.JobDesc = ""
		require.NotNil(t, req.Validate())

		req.JobDesc = "Go"
		req.JobExperience = -1
		require.NotNil(t, req.Validate())

		req.JobExperience = 51
		require.NotNil(t, req.Validate())
	})

	t.Run(`save answer request check`, func(t *testing.T) {
		req := SaveAnswerRequest{
			QuestionIndex: 0,
			UserAns:       "развёрнутый ответ кандидата",
		}
		require.Nil(t, req.Validate())

		req.QuestionIndex = -1
		require.NotNil(t, req.Validate())

		req.QuestionIndex = 0
		req.UserAns = "коротко"
		require.NotNil(t, req.Validate())

		// ровно 10 символов - всё ещё мало
		req.UserAns = "1234567890"
		require.NotNil(t, req.Validate())
	})
}
