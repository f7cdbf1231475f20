package recording

import (
	interviewapimodels "ai-interview-backend/models/api/interview"
)

// Feed - лента вопросов интервью с текущей позицией
type Feed struct {
	pairs []interviewapimodels.QuestionAnswer
	idx   int
}

func NewFeed(pairs []interviewapimodels.QuestionAnswer) *Feed {
	return &Feed{pairs: pairs}
}

func (f *Feed) Current() (pair interviewapimodels.QuestionAnswer, index int) {
	if len(f.pairs) == 0 {
		return interviewapimodels.QuestionAnswer{}, 0
	}
	return f.pairs[f.idx], f.idx
}

// Advance переходит к следующему вопросу,
// на последнем вопросе ничего не делает - конец ленты определяет вызывающий
func (f *Feed) Advance() {
	if f.idx < len(f.pairs)-1 {
		f.idx++
	}
}

func (f *Feed) Len() int {
	return len(f.pairs)
}

// IsLast - текущий вопрос последний в интервью
func (f *Feed) IsLast() bool {
	return f.idx >= len(f.pairs)-1
}
