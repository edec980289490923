package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned by Load when no config file exists in any searched location
var ErrConfigNotFound = errors.New("config file not found in current directory or home directory")

// ShiftTemplate describes a recurring shift that organizers can stamp onto an event
type ShiftTemplate struct {
	Name               string   `yaml:"name" validate:"required"`
	Title              string   `yaml:"title" validate:"required"`
	Description        string   `yaml:"description,omitempty"`
	RRule              string   `yaml:"rrule" validate:"required"`
	StartTime          string   `yaml:"startTime" validate:"required,datetime=15:04"`
	DurationMinutes    int      `yaml:"durationMinutes" validate:"min=1"`
	RequiredVolunteers int      `yaml:"requiredVolunteers" validate:"min=1"`
	Location           string   `yaml:"location,omitempty"`
	Skills             []string `yaml:"skills,omitempty"`
}

// Duration returns the template's shift length
func (t ShiftTemplate) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}

// Config represents the application configuration
type Config struct {
	SessionDir           string          `yaml:"sessionDir" validate:"required"`
	LogsDir              string          `yaml:"logsDir" validate:"required"`
	SeedMockData         bool            `yaml:"seedMockData"`
	LoginDelay           time.Duration   `yaml:"loginDelay"`
	RegisterDelay        time.Duration   `yaml:"registerDelay"`
	UpcomingShiftLimit   int             `yaml:"upcomingShiftLimit" validate:"min=1"`
	MaxSeriesOccurrences int             `yaml:"maxSeriesOccurrences" validate:"min=1,max=366"`
	ShiftTemplates       []ShiftTemplate `yaml:"shiftTemplates,omitempty" validate:"dive"`
}

// Template looks up a shift template by name
func (c *Config) Template(name string) (ShiftTemplate, bool) {
	for _, t := range c.ShiftTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return ShiftTemplate{}, false
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no file is present
func Default() *Config {
	sessionDir := ".crewsync"
	if home, err := os.UserHomeDir(); err == nil {
		sessionDir = filepath.Join(home, ".crewsync")
	}

	return &Config{
		SessionDir:           sessionDir,
		LogsDir:              "logs",
		SeedMockData:         true,
		LoginDelay:           time.Second,
		RegisterDelay:        1500 * time.Millisecond,
		UpcomingShiftLimit:   5,
		MaxSeriesOccurrences: 52,
	}
}

// Load loads and validates the configuration from crewsync_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads crewsync_config.<env>.yaml, or crewsync_config.yaml when env is empty
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(configFileName(env))
	if err != nil {
		return nil, err
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Keys missing from the file keep their Default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.LoginDelay < 0 || cfg.RegisterDelay < 0 {
		return fmt.Errorf("config validation failed: delays must not be negative")
	}

	seen := make(map[string]bool)
	for i, tmpl := range cfg.ShiftTemplates {
		if seen[tmpl.Name] {
			return fmt.Errorf("duplicate shift template name %q in shiftTemplates[%d]", tmpl.Name, i)
		}
		seen[tmpl.Name] = true

		if _, err := rrule.StrToRRule(tmpl.RRule); err != nil {
			return fmt.Errorf("invalid rrule in shiftTemplates[%d]: %w", i, err)
		}
	}

	return nil
}

func configFileName(env string) string {
	if env == "" {
		return "crewsync_config.yaml"
	}
	return fmt.Sprintf("crewsync_config.%s.yaml", env)
}

// findConfigFile searches for the named file in current directory and home directory
func findConfigFile(configFileName string) (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", ErrConfigNotFound
}
