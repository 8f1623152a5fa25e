package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/ContentAnalyzer/internal/models"
	"github.com/Rorical/ContentAnalyzer/internal/update"
	"github.com/Rorical/ContentAnalyzer/ui/components"
	"github.com/Rorical/ContentAnalyzer/ui/styles"
)

const helpLine = "tab: select path · enter: upload · esc: clear · ctrl+c: quit"

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	cmd := update.HandleUpdate(&m.appModel, m.picker, msg)
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder
	am := &m.appModel

	header := styles.TitleStyle().Render("Social Media Content Analyzer") + "\n" +
		styles.PlaceholderStyle().Render("  "+am.BackendLabel) + "\n\n"
	b.WriteString(header)

	zone := components.RenderDropZone(am.DropZone, am.Width)
	am.DropZoneTop = lipgloss.Height(header) - 1
	am.DropZoneRows = lipgloss.Height(zone)
	b.WriteString(zone + "\n")

	b.WriteString(components.RenderInput(am.Input, am.Width) + "\n")
	b.WriteString(styles.PlaceholderStyle().Render("  "+helpLine) + "\n\n")

	b.WriteString(renderRequest(am))

	if am.Notice != nil {
		b.WriteString(components.RenderNotice(*am.Notice, am.Width) + "\n\n")
	}

	b.WriteString(components.RenderStatus(am.Status, am.Request.Loading(), am.LoadingDots, am.Width))

	return b.String()
}

// renderRequest shows the loader while submitting and the result once
// succeeded; idle and failed show nothing.
func renderRequest(am *models.AppModel) string {
	switch am.Request.Phase {
	case models.Submitting:
		return components.RenderLoader(am.Request.FileName, am.LoadingDots) + "\n\n"
	case models.Succeeded:
		if am.Request.Result != nil {
			return components.RenderResult(*am.Request.Result, am.Width) + "\n\n"
		}
	}
	return ""
}
