package core

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Rorical/ContentAnalyzer/internal/models"
)

// Analyzer performs the single remote analysis attempt for a file.
type Analyzer interface {
	Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResult, error)
}

// Notifier surfaces user-visible signals.
type Notifier interface {
	Notify(notice models.Notice)
}

// Ticket identifies one submission.
type Ticket struct {
	ID   string
	File models.SelectedFile
}

// Resolution is the outcome of executing a ticket.
type Resolution struct {
	TicketID string
	Result   models.AnalysisResult
	Err      error
}

// Orchestrator owns the request lifecycle. State changes only through Begin
// and Resolve; readers get copies.
type Orchestrator struct {
	mu       sync.Mutex
	state    models.RequestState
	ticketID string
	analyzer Analyzer
	notifier Notifier
	log      *slog.Logger
}

func NewOrchestrator(analyzer Analyzer, notifier Notifier, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		state:    models.RequestState{Phase: models.Idle},
		analyzer: analyzer,
		notifier: notifier,
		log:      logger,
	}
}

// Begin moves to Submitting and clears the previous result. A submission while
// another is in flight is ignored and reported with a Busy notice.
func (o *Orchestrator) Begin(file models.SelectedFile) (Ticket, bool) {
	o.mu.Lock()
	if o.state.Phase == models.Submitting {
		inFlight := o.state.FileName
		o.mu.Unlock()
		o.log.Warn("core.begin.ignored", "file", file.Name, "in_flight", inFlight)
		o.notify(models.Notice{Kind: models.NoticeBusy, Message: models.MsgBusy})
		return Ticket{}, false
	}

	t := Ticket{ID: uuid.New().String(), File: file}
	o.ticketID = t.ID
	o.state = models.RequestState{Phase: models.Submitting, FileName: file.Name}
	o.mu.Unlock()

	o.log.Info("core.begin", "ticket", t.ID, "file", file.Name, "size", file.Size)
	return t, true
}

// Execute runs the network call for t. It does not touch the state.
func (o *Orchestrator) Execute(ctx context.Context, t Ticket) Resolution {
	result, err := o.analyzer.Analyze(ctx, t.File)
	return Resolution{TicketID: t.ID, Result: result, Err: err}
}

// Resolve settles the in-flight submission. Both outcomes leave Submitting.
// Resolutions for anything but the current ticket are dropped.
func (o *Orchestrator) Resolve(res Resolution) bool {
	o.mu.Lock()
	if o.state.Phase != models.Submitting || res.TicketID != o.ticketID {
		o.mu.Unlock()
		o.log.Warn("core.resolve.stale", "ticket", res.TicketID)
		return false
	}

	file := o.state.FileName
	if res.Err != nil {
		o.state = models.RequestState{Phase: models.Failed, FileName: file}
		o.mu.Unlock()

		o.log.Error("core.resolve.failed", "ticket", res.TicketID, "file", file, "error", res.Err)
		o.notify(models.Notice{Kind: models.NoticeAnalysisFailed, Message: models.MsgAnalysisFailed})
		return true
	}

	result := res.Result.Clone()
	o.state = models.RequestState{Phase: models.Succeeded, FileName: file, Result: &result}
	o.mu.Unlock()

	o.log.Info("core.resolve.succeeded", "ticket", res.TicketID, "file", file)
	return true
}

// Submit runs a whole cycle synchronously and returns the settled state.
func (o *Orchestrator) Submit(ctx context.Context, file models.SelectedFile) models.RequestState {
	t, ok := o.Begin(file)
	if !ok {
		return o.State()
	}
	o.Resolve(o.Execute(ctx, t))
	return o.State()
}

// State returns a copy of the current request state.
func (o *Orchestrator) State() models.RequestState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Clone()
}

func (o *Orchestrator) notify(n models.Notice) {
	if o.notifier != nil {
		o.notifier.Notify(n)
	}
}
