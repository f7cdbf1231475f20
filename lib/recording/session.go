package recording

import (
	"context"
	"time"

	interviewapimodels "ai-interview-backend/models/api/interview"
	wsmodels "ai-interview-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

// Evaluator оценивает расшифровку ответа и сохраняет результат
type Evaluator interface {
	ScoreAndSave(mockID, userEmail string, questionIndex int, userAns string) (*interviewapimodels.AnswerView, error)
}

// Sink отправляет сообщение сессии клиенту
type Sink func(msg wsmodels.ServerMessage)

// задержка показа состояния completed перед возвратом в idle
const completedRevertDelay = 2 * time.Second

// Session - машина состояний записи ответов одного интервью.
// Все события обрабатываются одной горутиной цикла Run, без блокировок:
// пока идёт оценка ответа, новые события просто ждут в канале
type Session struct {
	mockID    string
	userEmail string

	state   State
	elapsed int // секунды в состоянии recording

	feed      *Feed
	acc       *TranscriptAccumulator
	evaluator Evaluator
	sink      Sink

	revertDelay time.Duration
	eventCh     chan wsmodels.ClientEvent
}

func NewSession(mockID, userEmail string, pairs []interviewapimodels.QuestionAnswer, evaluator Evaluator, sink Sink) *Session {
	return &Session{
		mockID:      mockID,
		userEmail:   userEmail,
		state:       StateIdle,
		feed:        NewFeed(pairs),
		acc:         &TranscriptAccumulator{},
		evaluator:   evaluator,
		sink:        sink,
		revertDelay: completedRevertDelay,
		eventCh:     make(chan wsmodels.ClientEvent, 8),
	}
}

// Post передаёт событие клиента в цикл сессии
func (s *Session) Post(ev wsmodels.ClientEvent) {
	s.eventCh <- ev
}

// Run крутит цикл сессии до отмены контекста.
// Отмена контекста во время записи равносильна остановке записи:
// накопленная расшифровка уходит на оценку, чтобы ответ не потерялся
func (s *Session) Run(ctx context.Context) {
	s.sendQuestion()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	var revertCh <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if s.state == StateRecording {
				s.stopRecording()
			}
			return
		case ev := <-s.eventCh:
			s.handle(ev)
			if s.state == StateCompleted {
				revertCh = time.After(s.revertDelay)
			}
		case <-ticker.C:
			s.tick()
		case <-revertCh:
			revertCh = nil
			s.revertToIdle()
		}
	}
}

func (s *Session) handle(ev wsmodels.ClientEvent) {
	switch ev.Type {
	case wsmodels.EventStart:
		s.startRecording()
	case wsmodels.EventFragment:
		s.addFragments(ev.Fragments)
	case wsmodels.EventStop:
		s.stopRecording()
	case wsmodels.EventNext:
		s.nextQuestion()
	default:
		s.sendError("неизвестное событие: " + ev.Type)
	}
}

func (s *Session) startRecording() {
	if !CanTransition(s.state, StateRecording) {
		s.sendError(ErrInvalidTransition.Error())
		return
	}
	// новая запись - секундомер и расшифровка прошлой попытки обнуляются
	s.elapsed = 0
	s.acc.Reset()
	s.state = StateRecording
	s.sendState()
}

func (s *Session) addFragments(fragments []string) {
	if s.state != StateRecording {
		// расшифровка мутирует только во время записи
		return
	}
	s.acc.Append(fragments)
	_, index := s.feed.Current()
	s.sink(wsmodels.ServerMessage{
		Type:          wsmodels.MsgTranscript,
		QuestionIndex: index,
		Transcript:    s.acc.Committed(),
	})
}

func (s *Session) tick() {
	if s.state != StateRecording {
		return
	}
	s.elapsed++
	_, index := s.feed.Current()
	s.sink(wsmodels.ServerMessage{
		Type:          wsmodels.MsgTick,
		QuestionIndex: index,
		Elapsed:       s.elapsed,
	})
}

func (s *Session) stopRecording() {
	if s.state != StateRecording {
		s.sendError(ErrInvalidTransition.Error())
		return
	}
	s.elapsed = 0
	if !s.acc.HasMinAnswer() {
		// речи по сути не было - сразу в idle, оценка не вызывается
		s.state = StateIdle
		s.sendState()
		return
	}
	s.state = StateProcessing
	s.sendState()

	_, index := s.feed.Current()
	view, err := s.evaluator.ScoreAndSave(s.mockID, s.userEmail, index, s.acc.Committed())
	if err != nil {
		log.
			WithField("mock_id", s.mockID).
			WithField("question_index", index).
			WithError(err).
			Error("ошибка оценки ответа в сессии записи")
		s.state = StateIdle
		s.sendError(err.Error())
		s.sendState()
		return
	}
	s.state = StateCompleted
	s.sink(wsmodels.ServerMessage{
		Type:          wsmodels.MsgResult,
		QuestionIndex: index,
		Rating:        view.Rating,
		Feedback:      view.Feedback,
	})
	s.sendState()
}

func (s *Session) nextQuestion() {
	if s.state != StateIdle {
		s.sendError("перейти к следующему вопросу можно только между записями")
		return
	}
	s.feed.Advance()
	s.acc.Reset()
	s.sendQuestion()
}

func (s *Session) revertToIdle() {
	if s.state != StateCompleted {
		return
	}
	s.state = StateIdle
	s.sendState()
}

func (s *Session) sendState() {
	_, index := s.feed.Current()
	s.sink(wsmodels.ServerMessage{
		Type:          wsmodels.MsgState,
		State:         string(s.state),
		QuestionIndex: index,
	})
}

func (s *Session) sendQuestion() {
	pair, index := s.feed.Current()
	s.sink(wsmodels.ServerMessage{
		Type:          wsmodels.MsgQuestion,
		QuestionIndex: index,
		Question:      pair.Question,
	})
}

func (s *Session) sendError(message string) {
	_, index := s.feed.Current()
	s.sink(wsmodels.ServerMessage{
		Type:          wsmodels.MsgError,
		QuestionIndex: index,
		Message:       message,
	})
}
