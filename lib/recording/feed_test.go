package recording

import (
	"testing"

	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/stretchr/testify/require"
)

func TestFeed(t *testing.T) {
	pairs := []interviewapimodels.QuestionAnswer{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	}

	t.Run(`advance check`, func(t *testing.T) {
		feed := NewFeed(pairs)
		pair, index := feed.Current()
		require.Equal(t, "Q1", pair.Question)
		require.Equal(t, 0, index)
		require.False(t, feed.IsLast())

		feed.Advance()
		pair, index = feed.Current()
		require.Equal(t, "Q2", pair.Question)
		require.Equal(t, 1, index)
	})

	t.Run(`advance stops at last question check`, func(t *testing.T) {
		feed := NewFeed(pairs)
		feed.Advance()
		feed.Advance()
		require.True(t, feed.IsLast())

		// повторные advance на последнем вопросе ничего не меняют
		feed.Advance()
		feed.Advance()
		pair, index := feed.Current()
		require.Equal(t, "Q3", pair.Question)
		require.Equal(t, 2, index)
	})

	t.Run(`empty feed check`, func(t *testing.T) {
		feed := NewFeed(nil)
		pair, index := feed.Current()
		require.Equal(t, "", pair.Question)
		require.Equal(t, 0, index)
		require.Equal(t, 0, feed.Len())
		require.True(t, feed.IsLast())
	})

	t.Run(`state transitions table check`, func(t *testing.T) {
		require.True(t, CanTransition(StateIdle, StateRecording))
		require.True(t, CanTransition(StateRecording, StateProcessing))
		require.True(t, CanTransition(StateRecording, StateIdle))
		require.True(t, CanTransition(StateProcessing, StateCompleted))
		require.True(t, CanTransition(StateProcessing, StateIdle))
		require.True(t, CanTransition(StateCompleted, StateIdle))

		require.False(t, CanTransition(StateIdle, StateProcessing))
		require.False(t, CanTransition(StateIdle, StateCompleted))
		require.False(t, CanTransition(StateRecording, StateCompleted))
		require.False(t, CanTransition(StateCompleted, StateRecording))
	})
}
