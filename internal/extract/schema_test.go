package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResult(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		res, dropped, err := DecodeResult([]byte(`{"sourceType":"PDF","text":"body","pageCount":3,"durationMs":120}`))
		require.NoError(t, err)
		assert.Empty(t, dropped)
		assert.Equal(t, "PDF", *res.SourceType)
		assert.Equal(t, 3, *res.PageCount)
		assert.EqualValues(t, 120, *res.DurationMs)
		assert.Nil(t, res.Sentiment)
		assert.Nil(t, res.Suggestions)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		res, dropped, err := DecodeResult([]byte(`{"text":"x","confidence":0.9,"nested":{"a":1}}`))
		require.NoError(t, err)
		assert.Empty(t, dropped)
		assert.Equal(t, "x", *res.Text)
	})

	t.Run("invalid optional fields dropped", func(t *testing.T) {
		res, dropped, err := DecodeResult([]byte(`{"text":"x","pageCount":"three","suggestions":[1,2]}`))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"pageCount", "suggestions"}, dropped)
		assert.Equal(t, "x", *res.Text)
		assert.Nil(t, res.PageCount)
		assert.Nil(t, res.Suggestions)
	})

	t.Run("non-object body", func(t *testing.T) {
		_, _, err := DecodeResult([]byte(`"just text"`))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}
