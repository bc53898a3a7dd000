package engine

import "time"

// Storage keys. The task-checker-* names match the companion web client's
// localStorage keys so an exported dump can be imported as-is.
const (
	KeyCurrentUser  = "task-checker-current-user"
	KeyUserProgress = "task-checker-user-progress"
	KeyTasks        = "task-checker-tasks"
	KeySettings     = "appSettings"

	// Legacy keys cleared by a full reset.
	keyLegacyAllUsers = "taskApp_allUsers"
	keyLegacyUserData = "taskApp_userData"
)

// Task is one unit of work in the shared catalog.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UserProgress is one nickname's record: which tasks were completed and
// when. CompletedTasks and CompletedAt are parallel slices — index i of
// one corresponds to index i of the other, always mutated together.
type UserProgress struct {
	Nickname       string      `json:"nickname"`
	CompletedTasks []string    `json:"completedTasks"`
	CompletedAt    []time.Time `json:"completedAt"`
}

// LeaderboardEntry is a derived row, never persisted. LastActivity is the
// zero time for users who have completed nothing.
type LeaderboardEntry struct {
	Nickname       string
	CompletedCount int
	CompletionRate float64
	LastActivity   time.Time
}

// CompletionStats summarizes the current user's progress against the
// catalog.
type CompletionStats struct {
	Completed  int
	Total      int
	Percentage int
}

// Settings is the persisted app configuration.
type Settings struct {
	Theme          string `json:"theme"`
	Language       string `json:"language"`
	SoundEnabled   bool   `json:"soundEnabled"`
	ShowMotivation bool   `json:"showMotivation"`
}

// SettingsPatch is a partial settings update; nil fields are left as-is.
type SettingsPatch struct {
	Theme          *string
	Language       *string
	SoundEnabled   *bool
	ShowMotivation *bool
}

// DefaultSettings is the configuration used before anything is persisted.
func DefaultSettings() Settings {
	return Settings{
		Theme:          "light",
		Language:       "en",
		SoundEnabled:   true,
		ShowMotivation: false,
	}
}
