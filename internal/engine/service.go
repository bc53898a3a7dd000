package engine

import (
	"log/slog"

	"github.com/Janimeister/Taskmaster/internal/secure"
	"github.com/Janimeister/Taskmaster/internal/storage"
)

// Service owns the stores and coordinates the operations that touch more
// than one of them. Store instances are constructed here and passed
// explicitly; there are no package-level singletons.
type Service struct {
	store    *storage.SafeStore
	catalog  *Catalog
	progress *ProgressStore
	stats    *Stats
	settings *SettingsStore
}

// NewService builds a Service over the given persistence medium. A nil
// medium is valid: everything runs in memory with storage degraded to
// defaults.
func NewService(medium storage.Medium, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	store := storage.NewSafeStore(medium, log)
	return &Service{
		store:    store,
		catalog:  NewCatalog(store, log),
		progress: NewProgressStore(store, secure.NewRateLimiter(), log),
		stats:    NewStats(),
		settings: NewSettingsStore(store, log),
	}
}

func (s *Service) Catalog() *Catalog        { return s.catalog }
func (s *Service) Progress() *ProgressStore { return s.progress }
func (s *Service) Stats() *Stats            { return s.stats }
func (s *Service) Settings() *SettingsStore { return s.settings }

// Login points the current user at nickname and counts the login event.
// Validation and rate-limit failures pass through from the progress store
// and leave the stats untouched.
func (s *Service) Login(nickname string) error {
	if err := s.progress.SetCurrentUser(nickname); err != nil {
		return err
	}
	s.stats.RecordLogin(s.progress.CurrentUser())
	return nil
}

// Logout clears the current user. Progress records stay.
func (s *Service) Logout() {
	s.progress.ClearCurrentUser()
}

// CompleteResult reports what a Complete call did. Changed is false for
// idempotent repeats. AllCompleted marks the "all tasks completed" event
// point; the caller decides how to surface it (sound, banner, nothing).
type CompleteResult struct {
	TaskID       string
	Changed      bool
	AllCompleted bool
	Stats        CompletionStats
}

// Complete marks taskID done for the current user. Unknown task IDs are
// rejected before any state changes.
func (s *Service) Complete(taskID string) (*CompleteResult, error) {
	if s.catalog.ByID(taskID) == nil {
		return nil, ValidationError{Field: "task", Reason: "task not found"}
	}
	changed, err := s.progress.CompleteTask(taskID)
	if err != nil {
		return nil, err
	}
	if changed {
		s.stats.RecordTaskCompletion()
	}
	stats := s.progress.CompletionStats(s.catalog.Len())
	return &CompleteResult{
		TaskID:       taskID,
		Changed:      changed,
		AllCompleted: changed && stats.Total > 0 && stats.Completed == stats.Total,
		Stats:        stats,
	}, nil
}

// Uncomplete reverses a completion for the current user.
func (s *Service) Uncomplete(taskID string) (*CompleteResult, error) {
	changed, err := s.progress.UncompleteTask(taskID)
	if err != nil {
		return nil, err
	}
	if changed {
		s.stats.RecordTaskUncompletion()
	}
	return &CompleteResult{
		TaskID:  taskID,
		Changed: changed,
		Stats:   s.progress.CompletionStats(s.catalog.Len()),
	}, nil
}

// CompletionStats returns the current user's standing against the catalog.
func (s *Service) CompletionStats() CompletionStats {
	return s.progress.CompletionStats(s.catalog.Len())
}

// Leaderboard ranks every known user. Derived on each call.
func (s *Service) Leaderboard() []LeaderboardEntry {
	return Leaderboard(s.progress.All(), s.catalog.Len())
}

// ResetAllUserData wipes every user's progress and the current-user
// pointer. The catalog and settings are untouched.
func (s *Service) ResetAllUserData() {
	s.progress.ResetAll()
	s.stats.Reset()
}
