package recording

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscriptAccumulator(t *testing.T) {
	t.Run(`append joins fragments check`, func(t *testing.T) {
		acc := &TranscriptAccumulator{}
		acc.Append([]string{"добрый", "день"})
		require.Equal(t, "добрый день", acc.Committed())

		acc.Append([]string{", я backend-разработчик"})
		require.Equal(t, "добрый день, я backend-разработчик", acc.Committed())
	})

	t.Run(`duplicate fragments are kept check`, func(t *testing.T) {
		acc := &TranscriptAccumulator{}
		acc.Append([]string{"опыт работы"})
		acc.Append([]string{"опыт работы"})
		require.Equal(t, "опыт работыопыт работы", acc.Committed())
	})

	t.Run(`empty batch is skipped check`, func(t *testing.T) {
		acc := &TranscriptAccumulator{}
		acc.Append([]string{})
		acc.Append([]string{"", "  "})
		require.Equal(t, "", acc.Committed())
	})

	t.Run(`min answer threshold check`, func(t *testing.T) {
		acc := &TranscriptAccumulator{}
		require.False(t, acc.HasMinAnswer())

		acc.Append([]string{"да"})
		require.False(t, acc.HasMinAnswer())

		// ровно 10 символов - ещё недостаточно
		acc.Reset()
		acc.Append([]string{"1234567890"})
		require.False(t, acc.HasMinAnswer())

		acc.Append([]string{"1"})
		require.True(t, acc.HasMinAnswer())
	})

	t.Run(`reset check`, func(t *testing.T) {
		acc := &TranscriptAccumulator{}
		acc.Append([]string{"что-то достаточно длинное"})
		require.True(t, acc.HasMinAnswer())

		acc.Reset()
		require.Equal(t, "", acc.Committed())
		require.False(t, acc.HasMinAnswer())
	})
}
