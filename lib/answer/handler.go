package answerhandler

import (
	"strings"

	"ai-interview-backend/db"
	answerstore "ai-interview-backend/lib/answer/store"
	gpthandler "ai-interview-backend/lib/gpt"
	interviewstore "ai-interview-backend/lib/interview/store"
	"ai-interview-backend/lib/utils/helpers"
	interviewapimodels "ai-interview-backend/models/api/interview"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	ScoreAndSave(mockID, userEmail string, questionIndex int, userAns string) (*interviewapimodels.AnswerView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		interviewStore: interviewstore.NewInstance(db.DB),
		answerStore:    answerstore.NewInstance(db.DB),
		gpt:            gpthandler.Instance,
	}
}

type impl struct {
	interviewStore interviewstore.Provider
	answerStore    answerstore.Provider
	gpt            gpthandler.Provider
}

// ScoreAndSave оценивает расшифровку ответа через ИИ и сохраняет результат.
// При ошибке оценки ответ не сохраняется, расшифровка теряется -
// пользователь записывает ответ на вопрос заново
func (i impl) ScoreAndSave(mockID, userEmail string, questionIndex int, userAns string) (*interviewapimodels.AnswerView, error) {
	if len([]rune(strings.TrimSpace(userAns))) <= interviewapimodels.MinAnswerChars {
		return nil, errors.New("ответ слишком короткий для оценки")
	}
	rec, err := i.interviewStore.GetByMockID(mockID)
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
	if questionIndex >= len(list) {
		return nil, errors.Errorf("вопрос с номером %v отсутствует в интервью", questionIndex)
	}
	pair := list[questionIndex]

	score, err := i.gpt.ScoreAnswer(mockID, pair.Question, userAns)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка оценки ответа")
	}

	answerRec := dbmodels.UserAnswer{
		MockIDRef:  mockID,
		Question:   pair.Question,
		CorrectAns: helpers.CleanMarkdown(pair.Answer),
		UserAns:    userAns,
		Feedback:   score.Feedback,
		Rating:     score.Rating,
		UserEmail:  userEmail,
	}
	_, err = i.answerStore.Create(answerRec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения ответа")
	}
	log.
		WithField("mock_id", mockID).
		WithField("question_index", questionIndex).
		Infof("ответ сохранён с оценкой %v/10", score.Rating)
	return &interviewapimodels.AnswerView{
		Question:   answerRec.Question,
		CorrectAns: answerRec.CorrectAns,
		UserAns:    answerRec.UserAns,
		Feedback:   answerRec.Feedback,
		Rating:     answerRec.Rating,
		CreatedAt:  answerRec.CreatedAt,
	}, nil
}
