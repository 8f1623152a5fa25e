package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/ContentAnalyzer/internal/models"
)

type fakeCompleter struct {
	reqs    []openai.ChatCompletionRequest
	content string
	err     error
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: f.content}}},
	}, nil
}

func TestVisionClient_AnalyzeImage(t *testing.T) {
	fake := &fakeCompleter{content: "```json\n{\"text\":\"Sale today\",\"sentiment\":\"positive\",\"suggestions\":[\"Add a call to action\"]}\n```"}
	client := NewVisionClientWith(fake, "", nil)

	res, err := client.Analyze(context.Background(), models.FileFromBytes("post.png", "image/png", []byte("img")))
	require.NoError(t, err)

	assert.Equal(t, "Sale today", *res.Text)
	assert.Equal(t, "positive", *res.Sentiment)
	assert.Equal(t, []string{"Add a call to action"}, res.Suggestions)
	assert.Equal(t, "IMAGE", *res.SourceType)
	require.NotNil(t, res.DurationMs)

	require.Len(t, fake.reqs, 1)
	req := fake.reqs[0]
	assert.Equal(t, openai.GPT4oMini, req.Model)
	require.Len(t, req.Messages, 2)
	parts := req.Messages[1].MultiContent
	require.Len(t, parts, 2)
	require.NotNil(t, parts[1].ImageURL)
	assert.True(t, strings.HasPrefix(parts[1].ImageURL.URL, "data:image/png;base64,"))
}

func TestVisionClient_RejectsPDF(t *testing.T) {
	fake := &fakeCompleter{}
	client := NewVisionClientWith(fake, "gpt-4o", nil)

	_, err := client.Analyze(context.Background(), models.FileFromBytes("doc.pdf", "application/pdf", []byte("%PDF")))

	assert.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Empty(t, fake.reqs)
}

func TestVisionClient_Failures(t *testing.T) {
	img := models.FileFromBytes("a.jpg", "image/jpeg", []byte("jpg"))

	_, err := NewVisionClientWith(&fakeCompleter{err: errors.New("rate limited")}, "", nil).Analyze(context.Background(), img)
	assert.Error(t, err)

	_, err = NewVisionClientWith(&fakeCompleter{content: "not json"}, "", nil).Analyze(context.Background(), img)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
