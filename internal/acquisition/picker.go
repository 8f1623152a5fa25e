package acquisition

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/Rorical/ContentAnalyzer/internal/models"
)

// ErrNoFileSelected is returned by Confirm when nothing has been acquired yet.
var ErrNoFileSelected = errors.New("no file selected")

// AcceptedExtensions is the picker filter hint. The service does its own checks.
var AcceptedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

// Submitter receives confirmed submissions.
type Submitter interface {
	Submit(file models.SelectedFile) error
}

// Notifier surfaces user-visible signals.
type Notifier interface {
	Notify(notice models.Notice)
}

// Picker holds the currently selected file and the drag hover flag.
type Picker struct {
	file       *models.SelectedFile
	dragActive bool
	submitter  Submitter
	notifier   Notifier
}

func NewPicker(submitter Submitter, notifier Notifier) *Picker {
	return &Picker{
		submitter: submitter,
		notifier:  notifier,
	}
}

// Browse stores the first of the offered files. An empty offer is a no-op.
func (p *Picker) Browse(files []models.SelectedFile) bool {
	return p.take(files)
}

func (p *Picker) DragEnter() {
	p.dragActive = true
}

func (p *Picker) DragOver() {
	p.dragActive = true
}

func (p *Picker) DragLeave() {
	p.dragActive = false
}

// Drop ends the drag and stores the first dropped file, if any.
func (p *Picker) Drop(files []models.SelectedFile) bool {
	p.dragActive = false
	return p.take(files)
}

// Confirm hands the held file to the submitter exactly once. Without a held
// file the submitter is never called and a NoFileSelected notice is emitted.
func (p *Picker) Confirm() error {
	if p.file == nil {
		p.notify(models.Notice{Kind: models.NoticeNoFileSelected, Message: models.MsgNoFileSelected})
		return ErrNoFileSelected
	}
	return p.submitter.Submit(*p.file)
}

// Selected returns the held file.
func (p *Picker) Selected() (models.SelectedFile, bool) {
	if p.file == nil {
		return models.SelectedFile{}, false
	}
	return *p.file, true
}

func (p *Picker) DragActive() bool {
	return p.dragActive
}

// View returns the render snapshot.
func (p *Picker) View() models.DropZone {
	zone := models.DropZone{DragActive: p.dragActive}
	if p.file != nil {
		zone.HasFile = true
		zone.FileName = p.file.Name
	}
	return zone
}

func (p *Picker) take(files []models.SelectedFile) bool {
	if len(files) == 0 {
		return false
	}
	f := files[0]
	p.file = &f
	return true
}

func (p *Picker) notify(n models.Notice) {
	if p.notifier != nil {
		p.notifier.Notify(n)
	}
}

// Accepts reports whether name carries one of the accepted extensions.
func Accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range AcceptedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}
