package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/ContentAnalyzer/internal/models"
)

func strPtr(s string) *string { return &s }

func TestRenderResult(t *testing.T) {
	pages := 2
	tests := []struct {
		name     string
		result   models.AnalysisResult
		contains []string
		excludes []string
	}{
		{
			name:     "text present",
			result:   models.AnalysisResult{Text: strPtr("hello")},
			contains: []string{"Extracted Text", "hello"},
			excludes: []string{NoTextPlaceholder, "Sentiment", "Suggestions"},
		},
		{
			name:     "empty result",
			result:   models.AnalysisResult{},
			contains: []string{NoTextPlaceholder},
		},
		{
			name:     "empty text",
			result:   models.AnalysisResult{Text: strPtr("")},
			contains: []string{NoTextPlaceholder},
		},
		{
			name:     "whitespace text is shown as extracted",
			result:   models.AnalysisResult{Text: strPtr("  \n ")},
			excludes: []string{NoTextPlaceholder},
		},
		{
			name: "sentiment and suggestions",
			result: models.AnalysisResult{
				Text:        strPtr("Big sale"),
				Sentiment:   strPtr("positive"),
				Suggestions: []string{"Add emojis", "Post at noon"},
			},
			contains: []string{"Sentiment", "positive", "1. Add emojis", "2. Post at noon"},
		},
		{
			name:     "source metadata",
			result:   models.AnalysisResult{Text: strPtr("x"), SourceType: strPtr("PDF"), PageCount: &pages},
			contains: []string{"PDF", "2 page(s)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out string
			assert.NotPanics(t, func() { out = RenderResult(tt.result, 80) })
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderDropZone(t *testing.T) {
	idle := RenderDropZone(models.DropZone{}, 60)
	assert.Contains(t, idle, "Drag & Drop")
	assert.NotContains(t, idle, "Selected:")

	held := RenderDropZone(models.DropZone{HasFile: true, FileName: "post.png"}, 60)
	assert.Contains(t, held, "Selected: post.png")

	active := RenderDropZone(models.DropZone{DragActive: true}, 60)
	assert.Contains(t, active, "Release to drop")
}

func TestRenderNotice(t *testing.T) {
	blocking := RenderNotice(models.Notice{Kind: models.NoticeNoFileSelected, Message: models.MsgNoFileSelected}, 80)
	assert.Contains(t, blocking, models.MsgNoFileSelected)
	assert.Contains(t, blocking, "[enter] OK")

	info := RenderNotice(models.Notice{Kind: models.NoticeBusy, Message: models.MsgBusy}, 80)
	assert.False(t, strings.Contains(info, "[enter] OK"))
}
