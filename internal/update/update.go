package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ContentAnalyzer/internal/acquisition"
	"github.com/Rorical/ContentAnalyzer/internal/models"
)

func HandleUpdate(appModel *models.AppModel, picker *acquisition.Picker, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := HandleKeyMsg(appModel, picker, msg)
		appModel.DropZone = picker.View()
		return cmd
	case tea.MouseMsg:
		HandleMouseMsg(appModel, picker, msg)
		return nil
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(appModel)
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}
	return nil
}
