package gpthandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionsResponse(t *testing.T) {
	t.Run(`plain json check`, func(t *testing.T) {
		raw, list, err := ParseQuestionsResponse(`[{"Question":"Q1","Answer":"A1"},{"Question":"Q2","Answer":"A2"}]`)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Q1", list[0].Question)
		require.Equal(t, "A2", list[1].Answer)
		require.Equal(t, `[{"Question":"Q1","Answer":"A1"},{"Question":"Q2","Answer":"A2"}]`, raw)
	})

	t.Run(`json wrapped in code fence check`, func(t *testing.T) {
		answer := "```json\n[{\"Question\":\"Q1\",\"Answer\":\"A1\"}]\n```"
		raw, list, err := ParseQuestionsResponse(answer)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Q1", list[0].Question)
		require.Equal(t, `[{"Question":"Q1","Answer":"A1"}]`, raw)
	})

	t.Run(`non json answer check`, func(t *testing.T) {
		_, _, err := ParseQuestionsResponse("Извините, я не могу ответить на этот вопрос")
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrMalformedAIResponse))
	})
}

func TestParseScoreResponse(t *testing.T) {
	t.Run(`numeric rating check`, func(t *testing.T) {
		resp, err := ParseScoreResponse(`{"rating":8,"feedback":"хороший ответ"}`)
		require.Nil(t, err)
		require.Equal(t, 8, resp.Rating)
		require.Equal(t, "хороший ответ", resp.Feedback)
	})

	t.Run(`quoted rating check`, func(t *testing.T) {
		resp, err := ParseScoreResponse(`{"rating":"7","feedback":"норм"}`)
		require.Nil(t, err)
		require.Equal(t, 7, resp.Rating)
	})

	t.Run(`fractional rating is rounded check`, func(t *testing.T) {
		resp, err := ParseScoreResponse(`{"rating":7.6,"feedback":"ок"}`)
		require.Nil(t, err)
		require.Equal(t, 8, resp.Rating)
	})

	t.Run(`rating is clamped to scale check`, func(t *testing.T) {
		resp, err := ParseScoreResponse(`{"rating":15,"feedback":"ок"}`)
		require.Nil(t, err)
		require.Equal(t, 10, resp.Rating)

		resp, err = ParseScoreResponse(`{"rating":-3,"feedback":"ок"}`)
		require.Nil(t, err)
		require.Equal(t, 0, resp.Rating)
	})

	t.Run(`missing rating means zero check`, func(t *testing.T) {
		resp, err := ParseScoreResponse(`{"feedback":"без оценки"}`)
		require.Nil(t, err)
		require.Equal(t, 0, resp.Rating)
		require.Equal(t, "без оценки", resp.Feedback)
	})

	t.Run(`score wrapped in code fence check`, func(t *testing.T) {
		resp, err := ParseScoreResponse("```json\n{\"rating\":5,\"feedback\":\"средне\"}\n```")
		require.Nil(t, err)
		require.Equal(t, 5, resp.Rating)
	})

	t.Run(`non numeric rating check`, func(t *testing.T) {
		_, err := ParseScoreResponse(`{"rating":"отлично","feedback":"ок"}`)
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrMalformedAIResponse))
	})
}

func TestStripCodeFence(t *testing.T) {
	t.Run(`strip check`, func(t *testing.T) {
		require.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
		require.Equal(t, `{"a":1}`, StripCodeFence("```\n{\"a\":1}\n```"))
		require.Equal(t, `{"a":1}`, StripCodeFence(`{"a":1}`))
	})
}
