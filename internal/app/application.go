package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ContentAnalyzer/internal/acquisition"
	"github.com/Rorical/ContentAnalyzer/internal/config"
	"github.com/Rorical/ContentAnalyzer/internal/core"
	"github.com/Rorical/ContentAnalyzer/internal/dispatcher"
	"github.com/Rorical/ContentAnalyzer/internal/eventbus"
	"github.com/Rorical/ContentAnalyzer/internal/extract"
	"github.com/Rorical/ContentAnalyzer/internal/models"
	"github.com/Rorical/ContentAnalyzer/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *slog.Logger
	logFile    io.Closer
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.AnalysisService
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	picker     *acquisition.Picker
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication(cfg *config.Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("profile '%s' is not usable: %w", cfg.ActiveProfile, err)
	}

	logger, logFile, err := NewFileLogger(cfg.SlogLevel())
	if err != nil {
		return nil, err
	}

	profile := cfg.Current()
	analyzer := NewAnalyzer(profile, logger)

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Error("eventbus.error", "operation", e.Operation, "error", e.Err)
	})
	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewAnalysisService(analyzer, BackendLabel(profile), eb, logger)

	model := &AppModel{dispatcher: disp}
	model.appModel = createInitialAppModel(cfg)
	model.picker = acquisition.NewPicker(
		update.BusSubmitter{EventBus: eb},
		update.NoticeSink{AppModel: &model.appModel},
	)

	logger.Info("app.start", "profile", cfg.ActiveProfile, "backend", profile.GetBackend(), "target", BackendLabel(profile))

	return &Application{
		config:     cfg,
		logger:     logger,
		logFile:    logFile,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	app.logger.Info("app.stop")
	if err := app.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
	}
}

// NewAnalyzer builds the analyzer for a profile's backend.
func NewAnalyzer(profile config.Profile, logger *slog.Logger) core.Analyzer {
	if profile.GetBackend() == config.BackendOpenAI {
		return extract.NewVisionClient(profile.APIKey, profile.BaseURL, profile.GetModel(), logger)
	}
	return extract.NewClient(profile.GetOrigin(), nil, logger)
}

// BackendLabel names where analyses are sent.
func BackendLabel(profile config.Profile) string {
	if profile.GetBackend() == config.BackendOpenAI {
		return "openai:" + profile.GetModel()
	}
	return profile.GetOrigin()
}

func createInitialAppModel(cfg *config.Config) models.AppModel {
	return models.AppModel{
		Request:      models.RequestState{Phase: models.Idle},
		Status:       "Ready",
		BackendLabel: fmt.Sprintf("%s -> %s", cfg.ActiveProfile, BackendLabel(cfg.Current())),
	}
}
