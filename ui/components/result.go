package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/ContentAnalyzer/internal/models"
	"github.com/Rorical/ContentAnalyzer/ui/styles"
)

const NoTextPlaceholder = "No text extracted"

// RenderResult draws an analysis. Absent optional fields are skipped; a
// missing or empty text shows NoTextPlaceholder.
func RenderResult(result models.AnalysisResult, width int) string {
	heading := styles.HeadingStyle()
	var b strings.Builder

	b.WriteString(heading.Render("Result") + "\n\n")
	b.WriteString(heading.Render("Extracted Text") + "\n")
	if result.Text != nil && *result.Text != "" {
		b.WriteString(*result.Text)
	} else {
		b.WriteString(styles.PlaceholderStyle().Render(NoTextPlaceholder))
	}
	b.WriteString("\n")

	if result.Sentiment != nil && *result.Sentiment != "" {
		b.WriteString("\n" + heading.Render("Sentiment") + "\n" + *result.Sentiment + "\n")
	}

	if len(result.Suggestions) > 0 {
		b.WriteString("\n" + heading.Render("Suggestions") + "\n")
		for i, s := range result.Suggestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}

	if meta := renderMeta(result); meta != "" {
		b.WriteString("\n" + styles.PlaceholderStyle().Render(meta) + "\n")
	}

	return styles.ResultStyle(width).Render(strings.TrimRight(b.String(), "\n"))
}

func renderMeta(result models.AnalysisResult) string {
	var parts []string
	if result.SourceType != nil && *result.SourceType != "" {
		parts = append(parts, *result.SourceType)
	}
	if result.PageCount != nil {
		parts = append(parts, fmt.Sprintf("%d page(s)", *result.PageCount))
	}
	if result.DurationMs != nil {
		parts = append(parts, fmt.Sprintf("%d ms", *result.DurationMs))
	}
	return strings.Join(parts, " · ")
}
