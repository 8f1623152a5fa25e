package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	BackendExtract = "extract"
	BackendOpenAI  = "openai"

	DefaultOrigin = "http://localhost:8080"
	DefaultModel  = "gpt-4o-mini"
)

type Profile struct {
	Backend string `json:"backend"`
	Origin  string `json:"origin,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	LogLevel       string             `json:"log_level,omitempty"`
	currentProfile *Profile
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Validate and set current profile
	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// IsValid reports whether the active profile can build an analyzer.
func (c *Config) IsValid() bool {
	return c.Validate() == nil
}

func (c *Config) Validate() error {
	if c.currentProfile == nil {
		return fmt.Errorf("no active profile")
	}
	return c.currentProfile.Validate()
}

func (p Profile) Validate() error {
	switch p.GetBackend() {
	case BackendExtract:
		if !strings.HasPrefix(p.GetOrigin(), "http://") && !strings.HasPrefix(p.GetOrigin(), "https://") {
			return fmt.Errorf("origin %q must start with http:// or https://", p.GetOrigin())
		}
	case BackendOpenAI:
		if p.APIKey == "" {
			return fmt.Errorf("backend %q requires an api_key", BackendOpenAI)
		}
	default:
		return fmt.Errorf("unknown backend %q", p.Backend)
	}
	return nil
}

func (p Profile) GetBackend() string {
	if p.Backend == "" {
		return BackendExtract
	}
	return p.Backend
}

func (p Profile) GetOrigin() string {
	if p.Origin == "" {
		return DefaultOrigin
	}
	return strings.TrimRight(p.Origin, "/")
}

func (p Profile) GetModel() string {
	if p.Model == "" {
		return DefaultModel
	}
	return p.Model
}

// Current returns the active profile, or the zero profile if none is set.
func (c *Config) Current() Profile {
	if c.currentProfile == nil {
		return Profile{}
	}
	return *c.currentProfile
}

// OverrideOrigin points the active profile at origin for this run only.
func (c *Config) OverrideOrigin(origin string) {
	if origin == "" {
		return
	}
	p := c.Current()
	p.Origin = origin
	c.currentProfile = &p
}

// SlogLevel maps log_level to a slog level; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// LogPath is where the terminal UI writes its log.
func LogPath() (string, error) {
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "contentanalyzer.log"), nil
}

func getConfigDir() (string, error) {
	var baseDir string

	// Use CONTENTANALYZER_HOME if set, otherwise use user's home directory
	if home := os.Getenv("CONTENTANALYZER_HOME"); home != "" {
		baseDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = homeDir
	}

	return filepath.Join(baseDir, ".contentanalyzer"), nil
}

func getConfigPath() (string, error) {
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": {
				Backend: BackendExtract,
				Origin:  DefaultOrigin,
			},
		},
		ActiveProfile: "default",
		LogLevel:      "info",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

// SetActive switches the active profile.
func (c *Config) SetActive(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, fall back to the first name in order
		names := c.ProfileNames()
		c.ActiveProfile = names[0]
		profile = c.Profiles[names[0]]
	}

	c.currentProfile = &profile
	return nil
}

// ProfileNames returns profile names sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
