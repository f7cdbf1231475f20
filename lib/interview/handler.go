package interviewhandler

import (
	"ai-interview-backend/db"
	gpthandler "ai-interview-backend/lib/gpt"
	interviewstore "ai-interview-backend/lib/interview/store"
	interviewapimodels "ai-interview-backend/models/api/interview"
	dbmodels "ai-interview-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(userEmail string, req interviewapimodels.CreateInterviewRequest) (*interviewapimodels.InterviewView, error)
	GetByMockID(mockID string) (*interviewapimodels.InterviewView, error)
	GetQuestions(mockID string) ([]interviewapimodels.QuestionAnswer, error)
	List(userEmail string) ([]interviewapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler(questionCount int) {
	Instance = impl{
		store:         interviewstore.NewInstance(db.DB),
		gpt:           gpthandler.Instance,
		questionCount: questionCount,
	}
}

type impl struct {
	store         interviewstore.Provider
	gpt           gpthandler.Provider
	questionCount int
}

// Create генерирует вопросы через ИИ и сохраняет интервью одной вставкой.
// При ошибке генерации или кривом json интервью не создаётся вовсе
func (i impl) Create(userEmail string, req interviewapimodels.CreateInterviewRequest) (*interviewapimodels.InterviewView, error) {
	mockID := uuid.NewString()
	raw, list, err := i.gpt.GenerateInterviewQuestions(mockID, req.JobPosition, req.JobDesc, req.JobExperience, i.questionCount)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.New("ИИ вернул пустой список вопросов")
	}
	rec := dbmodels.MockInterview{
		MockID:        mockID,
		JsonMockResp:  raw,
		JobPosition:   req.JobPosition,
		JobDesc:       req.JobDesc,
		JobExperience: req.JobExperience,
		CreatedBy:     userEmail,
	}
	_, err = i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения интервью")
	}
	log.
		WithField("mock_id", mockID).
		WithField("created_by", userEmail).
		Infof("создано интервью с %v вопросами", len(list))
	view := getView(rec, len(list))
	return &view, nil
}

func (i impl) GetByMockID(mockID string) (*interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByMockID(mockID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения интервью")
	}
	if rec == nil {
		return nil, nil
	}
	_, list, err := gpthandler.ParseQuestionsResponse(rec.JsonMockResp)
	if err != nil {
		return nil, err
	}
	view := getView(*rec, len(list))
	return &view, nil
}

func (i impl) GetQuestions(mockID string) ([]interviewapimodels.QuestionAnswer, error) {
	rec, err := i.store.GetByMockID(mockID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения интервью")
	}
	if rec == nil {
		return nil, errors.New("интервью не найдено")
	}
	_, list, err := gpthandler.ParseQuestionsResponse(rec.JsonMockResp)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List(userEmail string) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.ListByUser(userEmail)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка интервью")
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, getView(rec, 0))
	}
	return result, nil
}

func getView(rec dbmodels.MockInterview, questionCount int) interviewapimodels.InterviewView {
	return interviewapimodels.InterviewView{
		MockID:        rec.MockID,
		JobPosition:   rec.JobPosition,
		JobDesc:       rec.JobDesc,
		JobExperience: rec.JobExperience,
		QuestionCount: questionCount,
		CreatedBy:     rec.CreatedBy,
		CreatedAt:     rec.CreatedAt,
	}
}
