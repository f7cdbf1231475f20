package recording

import (
	"strings"

	interviewapimodels "ai-interview-backend/models/api/interview"
)

// TranscriptAccumulator копит фрагменты распознанной речи в единую расшифровку.
// Дедупликации нет: если движок распознавания присылает одни и те же фрагменты
// повторно, текст задублируется - это контракт движка, а не наша ошибка
type TranscriptAccumulator struct {
	committed string
}

func (a *TranscriptAccumulator) Append(fragments []string) {
	batch := strings.Join(fragments, " ")
	if strings.TrimSpace(batch) == "" {
		return
	}
	a.committed += batch
}

func (a *TranscriptAccumulator) Committed() string {
	return a.committed
}

func (a *TranscriptAccumulator) Reset() {
	a.committed = ""
}

// HasMinAnswer - расшифровка достаточно длинная, чтобы отдавать её на оценку
func (a *TranscriptAccumulator) HasMinAnswer() bool {
	return len([]rune(strings.TrimSpace(a.committed))) > interviewapimodels.MinAnswerChars
}
