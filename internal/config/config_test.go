package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTemplate() ShiftTemplate {
	return ShiftTemplate{
		Name:               "saturday-breakfast",
		Title:              "Breakfast service",
		RRule:              "FREQ=WEEKLY;BYDAY=SA",
		StartTime:          "08:30",
		DurationMinutes:    180,
		RequiredVolunteers: 4,
		Skills:             []string{"Catering"},
	}
}

func TestValidate_DefaultConfig(t *testing.T) {
	err := Validate(Default())
	assert.NoError(t, err)
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Default()
	cfg.ShiftTemplates = []ShiftTemplate{validTemplate()}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := Default()
	cfg.SessionDir = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_OutOfRangeNumbers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero upcoming limit", func(c *Config) { c.UpcomingShiftLimit = 0 }},
		{"zero series occurrences", func(c *Config) { c.MaxSeriesOccurrences = 0 }},
		{"too many series occurrences", func(c *Config) { c.MaxSeriesOccurrences = 1000 }},
		{"negative login delay", func(c *Config) { c.LoginDelay = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidate_InvalidRRule(t *testing.T) {
	tmpl := validTemplate()
	tmpl.RRule = "INVALID_RRULE_SYNTAX"
	cfg := Default()
	cfg.ShiftTemplates = []ShiftTemplate{tmpl}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule in shiftTemplates[0]")
}

func TestValidate_MultipleInvalidRRules(t *testing.T) {
	good := validTemplate()
	bad := validTemplate()
	bad.Name = "second"
	bad.RRule = "FREQ=SOMETIMES"

	cfg := Default()
	cfg.ShiftTemplates = []ShiftTemplate{good, bad}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shiftTemplates[1]")
}

func TestValidate_ComplexValidRRule(t *testing.T) {
	tmpl := validTemplate()
	tmpl.RRule = "FREQ=MONTHLY;BYDAY=1SU,3SU;COUNT=6"
	cfg := Default()
	cfg.ShiftTemplates = []ShiftTemplate{tmpl}

	assert.NoError(t, Validate(cfg))
}

func TestValidate_BadStartTime(t *testing.T) {
	tmpl := validTemplate()
	tmpl.StartTime = "8.30am"
	cfg := Default()
	cfg.ShiftTemplates = []ShiftTemplate{tmpl}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_DuplicateTemplateName(t *testing.T) {
	cfg := Default()
	cfg.ShiftTemplates = []ShiftTemplate{validTemplate(), validTemplate()}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate shift template name")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
sessionDir: "/tmp/crewsync-session"
logsDir: "/tmp/crewsync-logs"
seedMockData: false
loginDelay: 250ms
registerDelay: 2s
upcomingShiftLimit: 3
maxSeriesOccurrences: 12
shiftTemplates:
  - name: "saturday-breakfast"
    title: "Breakfast service"
    rrule: "FREQ=WEEKLY;BYDAY=SA"
    startTime: "08:30"
    durationMinutes: 180
    requiredVolunteers: 4
    location: "Main hall"
    skills:
      - "Catering"
      - "Guest Services"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/crewsync-session", cfg.SessionDir)
	assert.Equal(t, "/tmp/crewsync-logs", cfg.LogsDir)
	assert.False(t, cfg.SeedMockData)
	assert.Equal(t, 250*time.Millisecond, cfg.LoginDelay)
	assert.Equal(t, 2*time.Second, cfg.RegisterDelay)
	assert.Equal(t, 3, cfg.UpcomingShiftLimit)
	assert.Equal(t, 12, cfg.MaxSeriesOccurrences)

	require.Len(t, cfg.ShiftTemplates, 1)
	tmpl, ok := cfg.Template("saturday-breakfast")
	require.True(t, ok)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SA", tmpl.RRule)
	assert.Equal(t, 3*time.Hour, tmpl.Duration())
	assert.Contains(t, tmpl.Skills, "Catering")

	_, ok = cfg.Template("missing")
	assert.False(t, ok)
}

func TestLoadFromPath_MinimalConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	minimalConfig := `
sessionDir: "/tmp/session"
`

	err := os.WriteFile(configPath, []byte(minimalConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, "/tmp/session", cfg.SessionDir)
	assert.Equal(t, defaults.LogsDir, cfg.LogsDir)
	assert.True(t, cfg.SeedMockData)
	assert.Equal(t, time.Second, cfg.LoginDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.RegisterDelay)
	assert.Equal(t, 5, cfg.UpcomingShiftLimit)
	assert.Empty(t, cfg.ShiftTemplates)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_rrule.yaml")

	invalidConfig := `
shiftTemplates:
  - name: "broken"
    title: "Broken"
    rrule: "INVALID_RRULE_SYNTAX"
    startTime: "09:00"
    durationMinutes: 60
    requiredVolunteers: 1
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_TemplateWithoutRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_template.yaml")

	invalidTemplate := `
shiftTemplates:
  - name: "no-rule"
    title: "No rule"
    startTime: "09:00"
    durationMinutes: 60
    requiredVolunteers: 1
`

	err := os.WriteFile(configPath, []byte(invalidTemplate), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
sessionDir: "/tmp/session"
  invalid indentation
logsDir: "logs"
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithEnv_FindsEnvFileInWorkingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	t.Setenv("HOME", t.TempDir())

	err = os.WriteFile(filepath.Join(tmpDir, "crewsync_config.test.yaml"), []byte("upcomingShiftLimit: 9\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadWithEnv("test")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.UpcomingShiftLimit)

	_, err = LoadWithEnv("prod")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestConfigFileName(t *testing.T) {
	assert.Equal(t, "crewsync_config.yaml", configFileName(""))
	assert.Equal(t, "crewsync_config.dev.yaml", configFileName("dev"))
}
