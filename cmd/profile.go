package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/ContentAnalyzer/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage backend profiles",
	Long:  `Manage profiles that choose where documents are sent for analysis.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range cfg.ProfileNames() {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			printProfile(profile, "    ")
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		printProfile(profile, "")
		if err := profile.Validate(); err != nil {
			fmt.Printf("Problem: %v\n", err)
		}
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label:    "Profile name",
				Validate: notBlank,
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.Profile{})
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := selectProfile(cfg, args, "Select profile to edit")
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := selectProfile(cfg, args, "Select profile to delete")
		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}
		if len(cfg.Profiles) == 1 {
			log.Fatalf("Cannot delete the only profile")
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err = confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		delete(cfg.Profiles, profileName)
		if cfg.ActiveProfile == profileName {
			cfg.ActiveProfile = cfg.ProfileNames()[0]
			fmt.Printf("Active profile switched to '%s'\n", cfg.ActiveProfile)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
}

func printProfile(profile config.Profile, indent string) {
	fmt.Printf("%sBackend: %s\n", indent, profile.GetBackend())
	if profile.GetBackend() == config.BackendOpenAI {
		fmt.Printf("%sModel: %s\n", indent, profile.GetModel())
		if profile.BaseURL != "" {
			fmt.Printf("%sBase URL: %s\n", indent, profile.BaseURL)
		}
		hasKey := "No"
		if profile.APIKey != "" {
			hasKey = "Yes"
		}
		fmt.Printf("%sAPI Key: %s\n", indent, hasKey)
		return
	}
	fmt.Printf("%sOrigin: %s\n", indent, profile.GetOrigin())
}

// promptProfile asks for every field of the chosen backend, defaulting to the
// values already in p.
func promptProfile(p config.Profile) (config.Profile, error) {
	backends := []string{config.BackendExtract, config.BackendOpenAI}
	cursor := 0
	if p.GetBackend() == config.BackendOpenAI {
		cursor = 1
	}
	backendPrompt := promptui.Select{
		Label:     "Backend",
		Items:     backends,
		CursorPos: cursor,
	}
	_, backend, err := backendPrompt.Run()
	if err != nil {
		return p, err
	}
	p.Backend = backend

	if backend == config.BackendExtract {
		originPrompt := promptui.Prompt{
			Label:   "Service origin",
			Default: p.GetOrigin(),
			Validate: func(s string) error {
				return config.Profile{Backend: config.BackendExtract, Origin: s}.Validate()
			},
		}
		p.Origin, err = originPrompt.Run()
		return p, err
	}

	apiKeyPrompt := promptui.Prompt{
		Label:    "API Key",
		Default:  p.APIKey,
		Mask:     '*',
		Validate: notBlank,
	}
	if p.APIKey, err = apiKeyPrompt.Run(); err != nil {
		return p, err
	}

	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: p.GetModel(),
	}
	if p.Model, err = modelPrompt.Run(); err != nil {
		return p, err
	}

	baseURLPrompt := promptui.Prompt{
		Label:   "Base URL (optional)",
		Default: p.BaseURL,
	}
	p.BaseURL, err = baseURLPrompt.Run()
	return p, err
}

func selectProfile(cfg *config.Config, args []string, label string) string {
	if len(args) > 0 {
		return args[0]
	}

	profileNames := cfg.ProfileNames()
	if len(profileNames) == 0 {
		log.Fatalf("No profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: profileNames,
	}
	_, profileName, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return profileName
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}
