package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`CleanMarkdown check`, func(t *testing.T) {
		require.Equal(t, "жирный текст", CleanMarkdown("**жирный** текст"))
		require.Equal(t, "курсив текст", CleanMarkdown("*курсив* текст"))
		require.Equal(t, "всё сразу", CleanMarkdown("***всё сразу***"))
		require.Equal(t, "подчёркнутый", CleanMarkdown("__подчёркнутый__"))
		require.Equal(t, "термин", CleanMarkdown("_термин_"))
		require.Equal(t, "тройное", CleanMarkdown("___тройное___"))
		require.Equal(t, "без разметки", CleanMarkdown("без разметки"))
		require.Equal(t, "", CleanMarkdown(""))
		require.Equal(t, "goroutine - лёгкий поток", CleanMarkdown("**goroutine** - _лёгкий_ поток"))
	})

	t.Run(`RoundToTenth check`, func(t *testing.T) {
		require.Equal(t, 8.0, RoundToTenth(8.0))
		require.Equal(t, 7.7, RoundToTenth(7.666666))
		require.Equal(t, 7.6, RoundToTenth(7.64))
		require.Equal(t, 0.0, RoundToTenth(0))
	})

	t.Run(`IsContextDone check`, func(t *testing.T) {
		require.True(t, IsContextDone(nil))

		ctx, cancel := context.WithCancel(context.Background())
		require.False(t, IsContextDone(ctx))
		cancel()
		require.True(t, IsContextDone(ctx))
	})
}
