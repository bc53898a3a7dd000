package engine

import (
	"log/slog"

	"github.com/Janimeister/Taskmaster/internal/storage"
)

// SettingsStore persists the app configuration under one key. Updates are
// explicit partial merges; there is no two-way binding to keep persistence
// timing deterministic.
type SettingsStore struct {
	store    *storage.SafeStore
	log      *slog.Logger
	settings Settings
}

// NewSettingsStore loads persisted settings, falling back to defaults.
// Unknown theme or language values in storage are normalized back to the
// default rather than carried along.
func NewSettingsStore(store *storage.SafeStore, log *slog.Logger) *SettingsStore {
	if log == nil {
		log = slog.Default()
	}
	s := &SettingsStore{store: store, log: log}
	loaded := storage.Get(store, KeySettings, DefaultSettings())
	if !validTheme(loaded.Theme) {
		loaded.Theme = DefaultSettings().Theme
	}
	if !validLanguage(loaded.Language) {
		loaded.Language = DefaultSettings().Language
	}
	s.settings = loaded
	return s
}

func validTheme(t string) bool    { return t == "light" || t == "dark" }
func validLanguage(l string) bool { return l == "en" || l == "fi" }

// Current returns the active settings.
func (s *SettingsStore) Current() Settings { return s.settings }

// Update merges the patch into the current settings, persists, and returns
// the merged result. Invalid theme/language values reject the whole patch.
func (s *SettingsStore) Update(patch SettingsPatch) (Settings, error) {
	merged := s.settings
	if patch.Theme != nil {
		if !validTheme(*patch.Theme) {
			return s.settings, ValidationError{Field: "theme", Reason: "must be light or dark"}
		}
		merged.Theme = *patch.Theme
	}
	if patch.Language != nil {
		if !validLanguage(*patch.Language) {
			return s.settings, ValidationError{Field: "language", Reason: "must be en or fi"}
		}
		merged.Language = *patch.Language
	}
	if patch.SoundEnabled != nil {
		merged.SoundEnabled = *patch.SoundEnabled
	}
	if patch.ShowMotivation != nil {
		merged.ShowMotivation = *patch.ShowMotivation
	}

	s.settings = merged
	if !s.store.Set(KeySettings, merged) {
		s.log.Error("settings: failed to persist")
	}
	return merged, nil
}
