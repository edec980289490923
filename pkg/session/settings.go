package session

import (
	"encoding/json"
	"fmt"
	_ "time/tzdata" // timezone validation must not depend on the host zoneinfo

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings is the UI preference bag
type Settings struct {
	Theme         Theme  `json:"theme" validate:"oneof=light dark"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language" validate:"required,bcp47_language_tag"`
	Timezone      string `json:"timezone" validate:"required,timezone"`
	AutoRefresh   bool   `json:"autoRefresh"`
	CompactView   bool   `json:"compactView"`
}

// SettingsPatch holds a partial update; nil fields are left unchanged
type SettingsPatch struct {
	Theme         *Theme
	Notifications *bool
	Language      *string
	Timezone      *string
	AutoRefresh   *bool
	CompactView   *bool
}

var validate = validator.New()

// DefaultSettings returns the settings used when nothing valid is stored
func DefaultSettings() Settings {
	return Settings{
		Theme:         ThemeLight,
		Notifications: true,
		Language:      "en",
		Timezone:      "UTC",
		AutoRefresh:   true,
		CompactView:   false,
	}
}

// Settings returns the stored settings, or the defaults when the document is
// missing, unreadable or fails validation
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadSettings()
}

func (s *Store) loadSettings() Settings {
	data, ok, err := s.get(SettingsKey)
	if err != nil {
		s.logger.Warn("Could not read settings, using defaults", zap.Error(err))
		return DefaultSettings()
	}
	if !ok {
		return DefaultSettings()
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn("Discarding corrupted settings", zap.Error(err))
		return DefaultSettings()
	}
	if err := validate.Struct(settings); err != nil {
		s.logger.Warn("Discarding invalid settings", zap.Error(err))
		return DefaultSettings()
	}
	return settings
}

// UpdateSettings merges the patch into the current settings and persists the result
func (s *Store) UpdateSettings(patch SettingsPatch) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.loadSettings()
	patch.apply(&settings)

	if err := validate.Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	if err := s.saveSettings(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// ToggleTheme switches between light and dark
func (s *Store) ToggleTheme() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.loadSettings()
	if settings.Theme == ThemeLight {
		settings.Theme = ThemeDark
	} else {
		settings.Theme = ThemeLight
	}

	if err := s.saveSettings(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s *Store) saveSettings(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.set(SettingsKey, data)
}

func (p SettingsPatch) apply(settings *Settings) {
	if p.Theme != nil {
		settings.Theme = *p.Theme
	}
	if p.Notifications != nil {
		settings.Notifications = *p.Notifications
	}
	if p.Language != nil {
		settings.Language = *p.Language
	}
	if p.Timezone != nil {
		settings.Timezone = *p.Timezone
	}
	if p.AutoRefresh != nil {
		settings.AutoRefresh = *p.AutoRefresh
	}
	if p.CompactView != nil {
		settings.CompactView = *p.CompactView
	}
}
