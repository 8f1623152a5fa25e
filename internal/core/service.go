package core

import (
	"context"
	"log/slog"

	"github.com/Rorical/ContentAnalyzer/internal/eventbus"
	"github.com/Rorical/ContentAnalyzer/internal/models"
)

// HealthChecker is implemented by analyzers that expose a health probe.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// AnalysisService hosts the Orchestrator on a single event loop. Submissions
// from the UI and resolutions of in-flight calls are both applied on that loop.
type AnalysisService struct {
	orchestrator *Orchestrator
	analyzer     Analyzer
	origin       string
	eventBus     *eventbus.EventBus
	resolutions  chan Resolution
	log          *slog.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	done         chan struct{}
	started      bool
}

// NewAnalysisService wires an orchestrator whose notices go to the UI.
func NewAnalysisService(analyzer Analyzer, origin string, eb *eventbus.EventBus, logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	s := &AnalysisService{
		analyzer:    analyzer,
		origin:      origin,
		eventBus:    eb,
		resolutions: make(chan Resolution, 1),
		log:         logger,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	s.orchestrator = NewOrchestrator(analyzer, s, logger)
	return s
}

// Start pushes the initial state and runs the loop in a goroutine
func (s *AnalysisService) Start() {
	s.started = true
	s.pushStateToUI()
	if hc, ok := s.analyzer.(HealthChecker); ok {
		go s.probeHealth(hc)
	}
	go s.eventLoop()
}

// Stop cancels in-flight requests and waits for the loop to exit.
func (s *AnalysisService) Stop() {
	s.cancel()
	if s.started {
		<-s.done
	}
}

// State returns the orchestrator's current snapshot.
func (s *AnalysisService) State() models.RequestState {
	return s.orchestrator.State()
}

// Notify implements Notifier by forwarding notices to the UI.
func (s *AnalysisService) Notify(n models.Notice) {
	if err := s.eventBus.SendToUI(eventbus.NoticeEvent{Notice: n}); err != nil {
		s.log.Error("core.notice.send_error", "error", err, "notice", n.Message)
	}
}

func (s *AnalysisService) eventLoop() {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		case res := <-s.resolutions:
			if s.orchestrator.Resolve(res) {
				s.pushStateToUI()
			}
		}
	}
}

func (s *AnalysisService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitFileEvent:
		s.submit(e.File)
	}
}

func (s *AnalysisService) submit(file models.SelectedFile) {
	ticket, ok := s.orchestrator.Begin(file)
	if !ok {
		return
	}
	s.pushStateToUI()

	go func() {
		res := s.orchestrator.Execute(s.ctx, ticket)
		select {
		case s.resolutions <- res:
		case <-s.ctx.Done():
		}
	}()
}

func (s *AnalysisService) probeHealth(hc HealthChecker) {
	err := hc.Health(s.ctx)
	if err != nil {
		s.log.Warn("core.health.unreachable", "origin", s.origin, "error", err)
	} else {
		s.log.Info("core.health.ok", "origin", s.origin)
	}
	if sendErr := s.eventBus.SendToUI(eventbus.BackendStatusEvent{Origin: s.origin, Err: err}); sendErr != nil {
		s.log.Error("core.health.send_error", "error", sendErr)
	}
}

func (s *AnalysisService) pushStateToUI() {
	if err := s.eventBus.SendToUI(eventbus.StateUpdateEvent{State: s.orchestrator.State()}); err != nil {
		s.log.Error("core.state.send_error", "error", err)
	}
}
