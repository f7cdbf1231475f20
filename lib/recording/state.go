package recording

import (
	"github.com/pkg/errors"
)

type State string

const (
	StateIdle       State = "idle"
	StateRecording  State = "recording"
	StateProcessing State = "processing"
	StateCompleted  State = "completed"
)

var ErrInvalidTransition = errors.New("недопустимый переход состояния записи")

// допустимые переходы машины состояний записи ответа.
// recording -> idle - остановка без пригодной расшифровки, оценка не запускается;
// processing -> idle - ошибка оценки или сохранения
var transitions = map[State][]State{
	StateIdle:       {StateRecording},
	StateRecording:  {StateProcessing, StateIdle},
	StateProcessing: {StateCompleted, StateIdle},
	StateCompleted:  {StateIdle},
}

func CanTransition(from, to State) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
