package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/ContentAnalyzer/internal/acquisition"
	"github.com/Rorical/ContentAnalyzer/internal/app"
	"github.com/Rorical/ContentAnalyzer/internal/core"
	"github.com/Rorical/ContentAnalyzer/internal/models"
	"github.com/Rorical/ContentAnalyzer/ui/components"
)

var outputFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file-or-glob...]",
	Short: "Analyze one document without the interactive UI",
	Long: `Analyze sends a single document to the active backend and prints the result.
When several paths or glob matches are given, only the first accepted file is sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("profile '%s' is not usable: %w", cfg.ActiveProfile, err)
		}

		logger := app.NewStderrLogger(cfg.SlogLevel())
		analyzer := app.NewAnalyzer(cfg.Current(), logger)
		notifier := stderrNotifier{w: cmd.ErrOrStderr()}

		var files []models.SelectedFile
		for _, arg := range args {
			matched, err := acquisition.ExpandBrowse(arg)
			if err != nil {
				return err
			}
			files = append(files, matched...)
		}

		runner := &headlessSubmitter{
			ctx:          cmd.Context(),
			orchestrator: core.NewOrchestrator(analyzer, notifier, logger),
		}
		picker := acquisition.NewPicker(runner, notifier)
		picker.Browse(files)

		if err := picker.Confirm(); err != nil {
			return err
		}
		if runner.state.Phase != models.Succeeded || runner.state.Result == nil {
			return errors.New("analysis failed")
		}
		return writeResult(cmd.OutOrStdout(), *runner.state.Result, outputFormat)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(analyzeCmd)
}

// headlessSubmitter runs each submission to completion before returning.
type headlessSubmitter struct {
	ctx          context.Context
	orchestrator *core.Orchestrator
	state        models.RequestState
}

func (h *headlessSubmitter) Submit(file models.SelectedFile) error {
	ctx := h.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	h.state = h.orchestrator.Submit(ctx, file)
	return nil
}

type stderrNotifier struct {
	w io.Writer
}

func (n stderrNotifier) Notify(notice models.Notice) {
	fmt.Fprintln(n.w, notice.Message)
}

func writeResult(w io.Writer, result models.AnalysisResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(result)
	case "text", "":
		_, err := fmt.Fprintln(w, components.RenderResult(result, 0))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
