package recording

import (
	"context"
	"testing"
	"time"

	interviewapimodels "ai-interview-backend/models/api/interview"
	wsmodels "ai-interview-backend/models/ws"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeEvaluator struct {
	calls     int
	lastIndex int
	lastAns   string
	err       error
	rating    int
	feedback  string
}

func (f *fakeEvaluator) ScoreAndSave(mockID, userEmail string, questionIndex int, userAns string) (*interviewapimodels.AnswerView, error) {
	f.calls++
	f.lastIndex = questionIndex
	f.lastAns = userAns
	if f.err != nil {
		return nil, f.err
	}
	return &interviewapimodels.AnswerView{
		Question: "Q",
		UserAns:  userAns,
		Rating:   f.rating,
		Feedback: f.feedback,
	}, nil
}

func newTestSession(evaluator Evaluator) (*Session, *[]wsmodels.ServerMessage) {
	messages := &[]wsmodels.ServerMessage{}
	sink := func(msg wsmodels.ServerMessage) {
		*messages = append(*messages, msg)
	}
	pairs := []interviewapimodels.QuestionAnswer{
		{Question: "Расскажите о себе", Answer: "A1"},
		{Question: "Что такое goroutine", Answer: "A2"},
	}
	return NewSession("mock-1", "user@example.com", pairs, evaluator, sink), messages
}

func lastOfType(messages []wsmodels.ServerMessage, msgType string) (wsmodels.ServerMessage, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Type == msgType {
			return messages[i], true
		}
	}
	return wsmodels.ServerMessage{}, false
}

func TestSession(t *testing.T) {
	t.Run(`full recording flow check`, func(t *testing.T) {
		eval := &fakeEvaluator{rating: 7, feedback: "неплохо"}
		sess, messages := newTestSession(eval)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStart})
		require.Equal(t, StateRecording, sess.state)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventFragment, Fragments: []string{"я работаю с go уже пять лет"}})
		transcript, ok := lastOfType(*messages, wsmodels.MsgTranscript)
		require.True(t, ok)
		require.Equal(t, "я работаю с go уже пять лет", transcript.Transcript)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStop})
		require.Equal(t, StateCompleted, sess.state)
		require.Equal(t, 1, eval.calls)
		require.Equal(t, 0, eval.lastIndex)
		require.Equal(t, "я работаю с go уже пять лет", eval.lastAns)

		result, ok := lastOfType(*messages, wsmodels.MsgResult)
		require.True(t, ok)
		require.Equal(t, 7, result.Rating)
		require.Equal(t, "неплохо", result.Feedback)
	})

	t.Run(`short transcript skips evaluation check`, func(t *testing.T) {
		eval := &fakeEvaluator{}
		sess, _ := newTestSession(eval)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStart})
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventFragment, Fragments: []string{"да"}})
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStop})

		require.Equal(t, StateIdle, sess.state)
		require.Equal(t, 0, eval.calls)
	})

	t.Run(`evaluation error reverts to idle check`, func(t *testing.T) {
		eval := &fakeEvaluator{err: errTest}
		sess, messages := newTestSession(eval)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStart})
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventFragment, Fragments: []string{"достаточно длинный ответ для оценки"}})
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStop})

		require.Equal(t, StateIdle, sess.state)
		require.Equal(t, 1, eval.calls)
		_, ok := lastOfType(*messages, wsmodels.MsgError)
		require.True(t, ok)
	})

	t.Run(`invalid transitions are rejected check`, func(t *testing.T) {
		eval := &fakeEvaluator{}
		sess, messages := newTestSession(eval)

		// stop без записи
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStop})
		require.Equal(t, StateIdle, sess.state)
		_, ok := lastOfType(*messages, wsmodels.MsgError)
		require.True(t, ok)

		// повторный start во время записи
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStart})
		countBefore := len(*messages)
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStart})
		require.Equal(t, StateRecording, sess.state)
		require.Equal(t, wsmodels.MsgError, (*messages)[countBefore].Type)

		// next во время записи
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventNext})
		_, index := sess.feed.Current()
		require.Equal(t, 0, index)
	})

	t.Run(`restart resets transcript and timer check`, func(t *testing.T) {
		eval := &fakeEvaluator{rating: 5}
		sess, _ := newTestSession(eval)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStart})
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventFragment, Fragments: []string{"не знаю"}})
		sess.tick()
		sess.tick()
		require.Equal(t, 2, sess.elapsed)

		// остановка с коротким ответом возвращает в idle
		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStop})
		require.Equal(t, StateIdle, sess.state)
		require.Equal(t, 0, eval.calls)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventStart})
		require.Equal(t, 0, sess.elapsed)
		require.Equal(t, "", sess.acc.Committed())
	})

	t.Run(`fragments outside recording are dropped check`, func(t *testing.T) {
		eval := &fakeEvaluator{}
		sess, _ := newTestSession(eval)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventFragment, Fragments: []string{"до начала записи"}})
		require.Equal(t, "", sess.acc.Committed())

		// секундомер тоже тикает только во время записи
		sess.tick()
		require.Equal(t, 0, sess.elapsed)
	})

	t.Run(`next question advances feed check`, func(t *testing.T) {
		eval := &fakeEvaluator{}
		sess, messages := newTestSession(eval)

		sess.handle(wsmodels.ClientEvent{Type: wsmodels.EventNext})
		pair, index := sess.feed.Current()
		require.Equal(t, 1, index)
		require.Equal(t, "Что такое goroutine", pair.Question)

		question, ok := lastOfType(*messages, wsmodels.MsgQuestion)
		require.True(t, ok)
		require.Equal(t, "Что такое goroutine", question.Question)
	})

	t.Run(`completed auto reverts to idle check`, func(t *testing.T) {
		eval := &fakeEvaluator{rating: 9}
		messages := make(chan wsmodels.ServerMessage, 64)
		sink := func(msg wsmodels.ServerMessage) {
			messages <- msg
		}
		pairs := []interviewapimodels.QuestionAnswer{{Question: "Q1", Answer: "A1"}}
		sess := NewSession("mock-1", "user@example.com", pairs, eval, sink)
		sess.revertDelay = 10 * time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go sess.Run(ctx)

		sess.Post(wsmodels.ClientEvent{Type: wsmodels.EventStart})
		sess.Post(wsmodels.ClientEvent{Type: wsmodels.EventFragment, Fragments: []string{"развёрнутый ответ кандидата на вопрос"}})
		sess.Post(wsmodels.ClientEvent{Type: wsmodels.EventStop})

		sawCompleted := false
		deadline := time.After(2 * time.Second)
		for {
			select {
			case msg := <-messages:
				if msg.Type != wsmodels.MsgState {
					continue
				}
				if msg.State == string(StateCompleted) {
					sawCompleted = true
					continue
				}
				if sawCompleted && msg.State == string(StateIdle) {
					return
				}
			case <-deadline:
				t.Fatal("сессия не вернулась в idle после completed")
			}
		}
	})
}

var errTest = errors.New("ошибка оценки")
