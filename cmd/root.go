package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/ContentAnalyzer/internal/app"
	"github.com/Rorical/ContentAnalyzer/internal/config"
)

var originFlag string

var rootCmd = &cobra.Command{
	Use:   "contentanalyzer",
	Short: "Extract and analyze text from documents in the terminal",
	Long: `contentanalyzer uploads a PDF or image to a text extraction service and
shows the extracted text, sentiment and suggestions.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		runApp(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().StringVar(&originFlag, "origin", "", "extraction service origin for this run (overrides the profile)")
	rootCmd.AddCommand(profileCmd)
}

func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.OverrideOrigin(originFlag)
	return cfg
}

func runApp(cfg *config.Config) {
	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
