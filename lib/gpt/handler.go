package gpthandler

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ai-interview-backend/config"
	"ai-interview-backend/db"
	ailogstore "ai-interview-backend/lib/gpt/store"
	yagptclient "ai-interview-backend/lib/gpt/yagpt-client"
	interviewapimodels "ai-interview-backend/models/api/interview"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrMalformedAIResponse - ответ ИИ не разобрался в ожидаемую json-структуру.
// Ретраев нет, действие пользователя завершается ошибкой и повторяется вручную
var ErrMalformedAIResponse = errors.New("ответ ИИ не соответствует ожидаемому формату")

type Provider interface {
	GenerateInterviewQuestions(mockID, jobPosition, jobDesc string, jobExperience, questionCount int) (raw string, list []interviewapimodels.QuestionAnswer, err error)
	ScoreAnswer(mockID, question, userAns string) (resp interviewapimodels.AnswerScore, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		aiLogStore: ailogstore.NewInstance(db.DB),
	}
}

type impl struct {
	aiLogStore ailogstore.Provider
}

const (
	questionsSysPromt = "Ты — нейросеть, помогаешь кандидатам готовиться к собеседованиям."
	questionsTemplate = `Должность: %v, Описание вакансии: %v, Опыт работы в годах: %v.
Сгенерируй %v вопросов для собеседования на эту должность с эталонными ответами,
вопросы подбирай под уровень опыта и требования вакансии.
Формат ответа: json-массив объектов с полями "Question" и "Answer", без пояснений.`

	scoreSysPromt = "Ты — нейросеть, оцениваешь ответы кандидатов на вопросы собеседования."
	scoreTemplate = `Вопрос: %v. Ответ кандидата: %v.
Оцени ответ по шкале от 0 до 10 и дай рекомендации по улучшению в 3-5 строк.
Формат ответа: json-объект с полями "rating" и "feedback", без пояснений.`
)

func (i impl) getYaClient() yagptclient.Provider {
	return yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID)
}

func (i impl) GenerateInterviewQuestions(mockID, jobPosition, jobDesc string, jobExperience, questionCount int) (raw string, list []interviewapimodels.QuestionAnswer, err error) {
	userPromt := fmt.Sprintf(questionsTemplate, jobPosition, jobDesc, jobExperience, questionCount)
	answer, err := i.getYaClient().
		GenerateByPromtAndText(questionsSysPromt, userPromt)
	if err != nil {
		log.
			WithField("mock_id", mockID).
			WithError(err).
			Error("ошибка генерации вопросов интервью через GPT")
		return "", nil, err
	}
	i.saveLog(mockID, questionsSysPromt, userPromt, answer, dbmodels.AiInterviewQuestionsType)

	raw, list, err = ParseQuestionsResponse(answer)
	if err != nil {
		return "", nil, err
	}
	return raw, list, nil
}

func (i impl) ScoreAnswer(mockID, question, userAns string) (resp interviewapimodels.AnswerScore, err error) {
	userPromt := fmt.Sprintf(scoreTemplate, question, userAns)
	answer, err := i.getYaClient().
		GenerateByPromtAndText(scoreSysPromt, userPromt)
	if err != nil {
		log.
			WithField("mock_id", mockID).
			WithError(err).
			Error("ошибка оценки ответа через GPT")
		return resp, err
	}
	i.saveLog(mockID, scoreSysPromt, userPromt, answer, dbmodels.AiScoreAnswerType)

	return ParseScoreResponse(answer)
}

// ParseQuestionsResponse разбирает ответ ИИ в список пар вопрос/ответ,
// возвращает также очищенный от код-блоков json - он сохраняется в БД как есть
func ParseQuestionsResponse(answer string) (raw string, list []interviewapimodels.QuestionAnswer, err error) {
	raw = StripCodeFence(answer)
	err = json.Unmarshal([]byte(raw), &list)
	if err != nil {
		return "", nil, errors.Wrapf(ErrMalformedAIResponse, "ошибка декодирования json в список вопросов, json: %v", raw)
	}
	return raw, list, nil
}

// ParseScoreResponse разбирает ответ ИИ в оценку с рекомендациями.
// Оценку ИИ может вернуть и числом и строкой, оба варианта принимаются,
// значение зажимается в диапазон 0..10
func ParseScoreResponse(answer string) (resp interviewapimodels.AnswerScore, err error) {
	raw := StripCodeFence(answer)
	var parsed struct {
		Rating   json.RawMessage `json:"rating"`
		Feedback string          `json:"feedback"`
	}
	err = json.Unmarshal([]byte(raw), &parsed)
	if err != nil {
		return resp, errors.Wrapf(ErrMalformedAIResponse, "ошибка декодирования json в оценку ответа, json: %v", raw)
	}
	rating, err := parseRating(parsed.Rating)
	if err != nil {
		return resp, errors.Wrapf(ErrMalformedAIResponse, "оценка не является числом, json: %v", raw)
	}
	if rating < 0 {
		rating = 0
	}
	if rating > 10 {
		rating = 10
	}
	resp.Rating = rating
	resp.Feedback = parsed.Feedback
	return resp, nil
}

func parseRating(value json.RawMessage) (int, error) {
	if len(value) == 0 {
		// оценка отсутствует - считаем 0
		return 0, nil
	}
	text := strings.Trim(strings.TrimSpace(string(value)), `"`)
	if text == "" {
		return 0, nil
	}
	floatValue, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(floatValue)), nil
}

func (i impl) saveLog(mockID, sysPromt, userPromt, answer string, reqType dbmodels.AiReqestType) {
	rec := dbmodels.AiLog{
		SysPromt:   sysPromt,
		UserPromt:  userPromt,
		Answer:     answer,
		MockID:     mockID,
		ReqestType: reqType,
		AiName:     dbmodels.AiYaGptType,
	}
	_, err := i.aiLogStore.Save(rec)
	if err != nil {
		log.
			WithField("mock_id", mockID).
			WithError(err).
			Error("ошибка сохранения лога запроса к ИИ")
	}
}
