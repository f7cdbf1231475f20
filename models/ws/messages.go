package wsmodels

// события от браузера, управляющие сессией записи
const (
	EventStart    = "start"    // начать запись текущего вопроса
	EventFragment = "fragment" // порция распознанных фрагментов речи
	EventStop     = "stop"     // остановить запись и отправить ответ на оценку
	EventNext     = "next"     // перейти к следующему вопросу
)

type ClientEvent struct {
	Type      string   `json:"type"`
	Fragments []string `json:"fragments,omitempty"`
}

const (
	MsgState      = "state"      // смена состояния сессии записи
	MsgTick       = "tick"       // секундомер записи
	MsgTranscript = "transcript" // накопленная расшифровка
	MsgQuestion   = "question"   // текущий вопрос
	MsgResult     = "result"     // результат оценки ответа
	MsgError      = "error"
)

type ServerMessage struct {
	Type          string `json:"type"`
	State         string `json:"state,omitempty"`
	QuestionIndex int    `json:"question_index"`
	Question      string `json:"question,omitempty"`
	Elapsed       int    `json:"elapsed,omitempty"`
	Transcript    string `json:"transcript,omitempty"`
	Rating        int    `json:"rating,omitempty"`
	Feedback      string `json:"feedback,omitempty"`
	Message       string `json:"message,omitempty"`
}
