package answerhandler

import (
	"testing"

	interviewapimodels "ai-interview-backend/models/api/interview"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeInterviewStore struct {
	rec *dbmodels.MockInterview
	err error
}

func (f *fakeInterviewStore) Create(rec dbmodels.MockInterview) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeInterviewStore) GetByMockID(mockID string) (*dbmodels.MockInterview, error) {
	return f.rec, f.err
}

func (f *fakeInterviewStore) ListByUser(userEmail string) ([]dbmodels.MockInterview, error) {
	return nil, nil
}

type fakeAnswerStore struct {
	created []dbmodels.UserAnswer
	err     error
}

func (f *fakeAnswerStore) Create(rec dbmodels.UserAnswer) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, rec)
	return "answer-id", nil
}

func (f *fakeAnswerStore) ListByMockID(mockID string) ([]dbmodels.UserAnswer, error) {
	return f.created, nil
}

type fakeGpt struct {
	score interviewapimodels.AnswerScore
	err   error
	calls int
}

func (f *fakeGpt) GenerateInterviewQuestions(mockID, jobPosition, jobDesc string, jobExperience, questionCount int) (string, []interviewapimodels.QuestionAnswer, error) {
	return "", nil, errors.New("not used")
}

func (f *fakeGpt) ScoreAnswer(mockID, question, userAns string) (interviewapimodels.AnswerScore, error) {
	f.calls++
	return f.score, f.err
}

const answerText = "использую каналы и горутины для конкурентной обработки"

func testInterview() *dbmodels.MockInterview {
	return &dbmodels.MockInterview{
		MockID:       "mock-1",
		JsonMockResp: `[{"Question":"Что такое goroutine","Answer":"**Лёгкий** поток, управляемый рантаймом Go"}]`,
	}
}

func TestScoreAndSave(t *testing.T) {
	t.Run(`answer is scored and saved check`, func(t *testing.T) {
		answers := &fakeAnswerStore{}
		gpt := &fakeGpt{score: interviewapimodels.AnswerScore{Rating: 8, Feedback: "хорошо"}}
		handler := impl{
			interviewStore: &fakeInterviewStore{rec: testInterview()},
			answerStore:    answers,
			gpt:            gpt,
		}

		view, err := handler.ScoreAndSave("mock-1", "user@example.com", 0, answerText)
		require.Nil(t, err)
		require.Equal(t, 8, view.Rating)
		require.Equal(t, "хорошо", view.Feedback)
		require.Len(t, answers.created, 1)

		saved := answers.created[0]
		require.Equal(t, "mock-1", saved.MockIDRef)
		require.Equal(t, "user@example.com", saved.UserEmail)
		require.Equal(t, answerText, saved.UserAns)
		// markdown в эталонном ответе вычищается перед сохранением
		require.Equal(t, "Лёгкий поток, управляемый рантаймом Go", saved.CorrectAns)
	})

	t.Run(`short answer is rejected check`, func(t *testing.T) {
		gpt := &fakeGpt{}
		handler := impl{
			interviewStore: &fakeInterviewStore{rec: testInterview()},
			answerStore:    &fakeAnswerStore{},
			gpt:            gpt,
		}

		_, err := handler.ScoreAndSave("mock-1", "user@example.com", 0, "не знаю")
		require.NotNil(t, err)
		require.Equal(t, 0, gpt.calls)
	})

	t.Run(`scoring error keeps store untouched check`, func(t *testing.T) {
		answers := &fakeAnswerStore{}
		handler := impl{
			interviewStore: &fakeInterviewStore{rec: testInterview()},
			answerStore:    answers,
			gpt:            &fakeGpt{err: errors.New("сервис недоступен")},
		}

		_, err := handler.ScoreAndSave("mock-1", "user@example.com", 0, answerText)
		require.NotNil(t, err)
		require.Len(t, answers.created, 0)
	})

	t.Run(`unknown interview check`, func(t *testing.T) {
		handler := impl{
			interviewStore: &fakeInterviewStore{},
			answerStore:    &fakeAnswerStore{},
			gpt:            &fakeGpt{},
		}

		_, err := handler.ScoreAndSave("missing", "user@example.com", 0, answerText)
		require.NotNil(t, err)
	})

	t.Run(`question index out of range check`, func(t *testing.T) {
		gpt := &fakeGpt{}
		handler := impl{
			interviewStore: &fakeInterviewStore{rec: testInterview()},
			answerStore:    &fakeAnswerStore{},
			gpt:            gpt,
		}

		_, err := handler.ScoreAndSave("mock-1", "user@example.com", 5, answerText)
		require.NotNil(t, err)
		require.Equal(t, 0, gpt.calls)
	})
}
