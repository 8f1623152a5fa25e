package update

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/ContentAnalyzer/internal/acquisition"
	"github.com/Rorical/ContentAnalyzer/internal/eventbus"
	"github.com/Rorical/ContentAnalyzer/internal/models"
)

type harness struct {
	model  *models.AppModel
	picker *acquisition.Picker
	bus    *eventbus.EventBus
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	eb := eventbus.NewEventBus()
	t.Cleanup(eb.Close)
	h := &harness{model: &models.AppModel{Status: "Ready"}, bus: eb}
	h.picker = acquisition.NewPicker(BusSubmitter{EventBus: eb}, NoticeSink{AppModel: h.model})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	return HandleUpdate(h.model, h.picker, msg)
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(name), 0644))
	return p
}

func pendingSubmissions(eb *eventbus.EventBus) []eventbus.SubmitFileEvent {
	var out []eventbus.SubmitFileEvent
	for {
		select {
		case ev := <-eb.UIToCore():
			if s, ok := ev.(eventbus.SubmitFileEvent); ok {
				out = append(out, s)
			}
		default:
			return out
		}
	}
}

func TestConfirmWithoutFileShowsNoticeAndSendsNothing(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, h.model.Notice)
	assert.Equal(t, models.NoticeNoFileSelected, h.model.Notice.Kind)
	assert.Empty(t, pendingSubmissions(h.bus))
}

func TestBlockingNoticeSwallowsInputUntilDismissed(t *testing.T) {
	h := newHarness(t)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, h.model.Notice)

	h.typeText("abc")
	assert.Empty(t, h.model.Input)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, h.model.Notice)
	assert.Empty(t, pendingSubmissions(h.bus))

	h.typeText("abc")
	assert.Equal(t, "abc", h.model.Input)
}

func TestBrowseThenConfirmSubmitsOnce(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	writeFile(t, dir, "b.pdf")
	writeFile(t, dir, "a.png")

	h.typeText(filepath.Join(dir, "*"))
	h.send(tea.KeyMsg{Type: tea.KeyTab})

	assert.Empty(t, h.model.Input)
	assert.True(t, h.model.DropZone.HasFile)
	assert.Equal(t, "a.png", h.model.DropZone.FileName)
	assert.Contains(t, h.model.Status, "first of 2")

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	subs := pendingSubmissions(h.bus)
	require.Len(t, subs, 1)
	assert.Equal(t, "a.png", subs[0].File.Name)
}

func TestBrowseWithoutMatchKeepsInput(t *testing.T) {
	h := newHarness(t)
	h.typeText(filepath.Join(t.TempDir(), "nothing.pdf"))

	h.send(tea.KeyMsg{Type: tea.KeyTab})

	assert.NotEmpty(t, h.model.Input)
	assert.False(t, h.model.DropZone.HasFile)
	assert.Contains(t, h.model.Status, "No matching")
}

func TestPasteActsAsDropAndReplacesSelection(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	first := writeFile(t, dir, "first.pdf")
	second := writeFile(t, dir, "second file.jpg")

	h.typeText(first)
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "first.pdf", h.model.DropZone.FileName)

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("'" + second + "'"), Paste: true})

	assert.Equal(t, "second file.jpg", h.model.DropZone.FileName)
	assert.False(t, h.model.DropZone.DragActive)
	assert.Empty(t, h.model.Input)
}

func TestPasteOfNonFileKeepsSelection(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	h.typeText(writeFile(t, dir, "keep.png"))
	h.send(tea.KeyMsg{Type: tea.KeyTab})

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("just some words"), Paste: true})

	assert.Equal(t, "keep.png", h.model.DropZone.FileName)
	assert.Contains(t, h.model.Status, "not a readable file")
}

func TestMouseHoverTogglesDragActive(t *testing.T) {
	h := newHarness(t)
	h.model.DropZoneTop = 3
	h.model.DropZoneRows = 5

	h.send(tea.MouseMsg{Y: 4, Action: tea.MouseActionMotion})
	assert.True(t, h.model.DropZone.DragActive)

	h.send(tea.MouseMsg{Y: 6, Action: tea.MouseActionMotion})
	assert.True(t, h.model.DropZone.DragActive)

	h.send(tea.MouseMsg{Y: 12, Action: tea.MouseActionMotion})
	assert.False(t, h.model.DropZone.DragActive)
	assert.False(t, h.model.DropZone.HasFile)
}

func TestMouseReleaseInsideZoneEndsDrag(t *testing.T) {
	h := newHarness(t)
	h.model.DropZoneTop = 3
	h.model.DropZoneRows = 5

	h.send(tea.MouseMsg{Y: 4, Action: tea.MouseActionMotion})
	require.True(t, h.model.DropZone.DragActive)

	h.send(tea.MouseMsg{Y: 4, Action: tea.MouseActionRelease})
	assert.False(t, h.model.DropZone.DragActive)
	assert.False(t, h.model.DropZone.HasFile)
}

func TestCoreEventsUpdateRequestState(t *testing.T) {
	h := newHarness(t)
	text := "hello"

	h.send(CoreEventMsg{Event: eventbus.StateUpdateEvent{State: models.RequestState{Phase: models.Submitting, FileName: "a.png"}}})
	assert.True(t, h.model.Request.Loading())
	assert.Equal(t, "Uploading a.png", h.model.Status)

	h.send(CoreEventMsg{Event: eventbus.StateUpdateEvent{State: models.RequestState{
		Phase:  models.Succeeded,
		Result: &models.AnalysisResult{Text: &text},
	}}})
	assert.False(t, h.model.Request.Loading())
	require.NotNil(t, h.model.Request.Result)
	assert.Equal(t, "Analysis complete", h.model.Status)

	h.send(CoreEventMsg{Event: eventbus.NoticeEvent{Notice: models.Notice{Kind: models.NoticeAnalysisFailed, Message: models.MsgAnalysisFailed}}})
	require.NotNil(t, h.model.Notice)
	assert.Equal(t, models.MsgAnalysisFailed, h.model.Notice.Message)
}

func TestBusyNoticeIsNonBlocking(t *testing.T) {
	h := newHarness(t)

	h.send(CoreEventMsg{Event: eventbus.NoticeEvent{Notice: models.Notice{Kind: models.NoticeBusy, Message: models.MsgBusy}}})

	assert.Nil(t, h.model.Notice)
	assert.Equal(t, models.MsgBusy, h.model.Status)
}

func TestTickAnimatesOnlyWhileLoading(t *testing.T) {
	h := newHarness(t)

	h.send(TickMsg{})
	assert.Zero(t, h.model.LoadingDots)

	h.model.Request = models.RequestState{Phase: models.Submitting}
	h.send(TickMsg{})
	assert.Equal(t, 1, h.model.LoadingDots)
}
