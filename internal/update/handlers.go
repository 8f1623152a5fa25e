package update

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ContentAnalyzer/internal/acquisition"
	"github.com/Rorical/ContentAnalyzer/internal/eventbus"
	"github.com/Rorical/ContentAnalyzer/internal/models"
)

// BusSubmitter forwards confirmed submissions to the core over the event bus.
type BusSubmitter struct {
	EventBus *eventbus.EventBus
}

func (s BusSubmitter) Submit(file models.SelectedFile) error {
	return s.EventBus.SendToCore(eventbus.SubmitFileEvent{File: file})
}

// NoticeSink stores notices raised by UI-local components on the app model.
type NoticeSink struct {
	AppModel *models.AppModel
}

func (n NoticeSink) Notify(notice models.Notice) {
	applyNotice(n.AppModel, notice)
}

// HandleKeyMsg handles keyboard input. While a blocking notice is shown only
// dismissal and quit are accepted.
func HandleKeyMsg(appModel *models.AppModel, picker *acquisition.Picker, keyMsg tea.KeyMsg) tea.Cmd {
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}

	if appModel.Notice != nil {
		switch keyMsg.String() {
		case "enter", "esc", " ":
			appModel.Notice = nil
		}
		return nil
	}

	if keyMsg.Paste {
		HandleDrop(appModel, picker, string(keyMsg.Runes))
		return nil
	}

	switch keyMsg.String() {
	case "tab":
		handleBrowse(appModel, picker)
	case "enter":
		handleConfirm(appModel, picker)
	case "esc":
		appModel.Input = ""
	case "backspace":
		if r := []rune(appModel.Input); len(r) > 0 {
			appModel.Input = string(r[:len(r)-1])
		}
	default:
		switch keyMsg.Type {
		case tea.KeyRunes:
			appModel.Input += string(keyMsg.Runes)
		case tea.KeySpace:
			appModel.Input += " "
		}
	}
	return nil
}

// HandleDrop treats pasted text as a drop of the files it names.
func HandleDrop(appModel *models.AppModel, picker *acquisition.Picker, payload string) {
	picker.DragEnter()
	files := acquisition.FilesFromPaths(acquisition.ParseDropped(payload))
	if picker.Drop(files) {
		appModel.Status = "Dropped " + files[0].Name
	} else {
		appModel.Status = "Dropped content is not a readable file"
	}
	appModel.DropZone = picker.View()
}

// HandleMouseMsg maps pointer motion over the drop zone to drag enter/leave.
// Cell motion is only reported while a button is held, so a release ends the drag.
func HandleMouseMsg(appModel *models.AppModel, picker *acquisition.Picker, mouseMsg tea.MouseMsg) {
	switch mouseMsg.Action {
	case tea.MouseActionRelease:
		if picker.DragActive() {
			picker.DragLeave()
			appModel.DropZone = picker.View()
		}
		return
	case tea.MouseActionMotion:
	default:
		return
	}
	inside := mouseMsg.Y >= appModel.DropZoneTop && mouseMsg.Y < appModel.DropZoneTop+appModel.DropZoneRows
	switch {
	case inside && !picker.DragActive():
		picker.DragEnter()
	case inside:
		picker.DragOver()
	case picker.DragActive():
		picker.DragLeave()
	}
	appModel.DropZone = picker.View()
}

func handleBrowse(appModel *models.AppModel, picker *acquisition.Picker) {
	files, err := acquisition.ExpandBrowse(appModel.Input)
	if err != nil {
		appModel.Status = "Error: " + err.Error()
		return
	}
	if !picker.Browse(files) {
		appModel.Status = fmt.Sprintf("No matching %s file", strings.Join(acquisition.AcceptedExtensions, "/"))
		return
	}
	appModel.Input = ""
	appModel.Status = "Selected " + files[0].Name
	if len(files) > 1 {
		appModel.Status += fmt.Sprintf(" (first of %d matches)", len(files))
	}
	appModel.DropZone = picker.View()
}

func handleConfirm(appModel *models.AppModel, picker *acquisition.Picker) {
	err := picker.Confirm()
	switch {
	case err == nil, errors.Is(err, acquisition.ErrNoFileSelected):
	default:
		appModel.Status = "Error sending file: " + err.Error()
	}
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.Request = event.State
		switch event.State.Phase {
		case models.Submitting:
			appModel.Status = "Uploading " + event.State.FileName
		case models.Succeeded:
			appModel.Status = "Analysis complete"
		case models.Failed:
			appModel.Status = "Analysis failed"
		default:
			appModel.Status = "Ready"
		}
	case eventbus.NoticeEvent:
		applyNotice(appModel, event.Notice)
	case eventbus.BackendStatusEvent:
		if event.Err != nil {
			appModel.Status = "Backend unreachable at " + event.Origin
		} else {
			appModel.Status = "Backend ready at " + event.Origin
		}
	}

	return nil
}

func applyNotice(appModel *models.AppModel, notice models.Notice) {
	if notice.Blocking() {
		n := notice
		appModel.Notice = &n
		return
	}
	appModel.Status = notice.Message
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.Request.Loading() {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
