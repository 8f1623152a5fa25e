package components

import (
	"strings"

	"github.com/Rorical/ContentAnalyzer/internal/models"
	"github.com/Rorical/ContentAnalyzer/ui/styles"
)

func RenderStatus(status string, loading bool, loadingDots int, width int) string {
	statusStyle := styles.StatusStyle(width)

	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}

	return statusStyle.Render(statusContent)
}

func RenderLoader(fileName string, loadingDots int) string {
	return styles.LoaderStyle().Render("Analyzing " + fileName + strings.Repeat(".", loadingDots))
}

func RenderNotice(notice models.Notice, width int) string {
	body := notice.Message
	if notice.Blocking() {
		body += "\n\n[enter] OK"
	}
	return styles.NoticeStyle(width, notice.Kind == models.NoticeAnalysisFailed).Render(body)
}
