package engine

import (
	"log/slog"
	"math"
	"time"

	"github.com/Janimeister/Taskmaster/internal/secure"
	"github.com/Janimeister/Taskmaster/internal/storage"
)

// Login rate limit: at most loginMaxAttempts SetCurrentUser calls per
// loginWindow.
const (
	loginAction      = "setCurrentUser"
	loginMaxAttempts = 5
	loginWindow      = 30 * time.Second
)

// ProgressStore owns every UserProgress record and the current-user
// pointer. All mutations are explicit mutate-then-persist; nothing writes
// to storage as a side effect of reads.
//
// The store is implicitly a two-state machine: logged out (current user
// empty) or logged in (current user set, with a progress record that is
// created on demand).
type ProgressStore struct {
	store   *storage.SafeStore
	limiter *secure.RateLimiter
	log     *slog.Logger
	now     func() time.Time

	current  string
	progress map[string]*UserProgress
}

// NewProgressStore loads persisted state. Stored values are not trusted:
// the current-user pointer is re-validated (and cleared from storage when
// invalid), and each progress entry is validated and sanitized
// individually, dropping the ones that fail.
func NewProgressStore(store *storage.SafeStore, limiter *secure.RateLimiter, log *slog.Logger) *ProgressStore {
	return newProgressStoreAt(store, limiter, log, time.Now)
}

func newProgressStoreAt(store *storage.SafeStore, limiter *secure.RateLimiter, log *slog.Logger, now func() time.Time) *ProgressStore {
	if log == nil {
		log = slog.Default()
	}
	if limiter == nil {
		limiter = secure.NewRateLimiter()
	}
	p := &ProgressStore{
		store:    store,
		limiter:  limiter,
		log:      log,
		now:      now,
		progress: map[string]*UserProgress{},
	}
	p.load()
	return p
}

func (p *ProgressStore) load() {
	if raw, ok := p.store.GetRaw(KeyCurrentUser); ok {
		if res := secure.ValidateNickname(raw); res.Valid {
			p.current = secure.SanitizeInput(raw)
		} else {
			p.log.Warn("progress: clearing invalid stored current user", "reason", res.Err)
			p.store.Remove(KeyCurrentUser)
		}
	}

	stored := storage.Get(p.store, KeyUserProgress, map[string]UserProgress{})
	for nickname, up := range stored {
		if res := secure.ValidateNickname(nickname); !res.Valid {
			p.log.Warn("progress: dropping invalid stored entry", "reason", res.Err)
			continue
		}
		clean := secure.SanitizeInput(nickname)
		tasks := up.CompletedTasks
		stamps := up.CompletedAt
		// Clamp the parallel slices to equal length; a torn write must not
		// break the index correspondence invariant.
		if len(stamps) > len(tasks) {
			stamps = stamps[:len(tasks)]
		}
		if len(tasks) > len(stamps) {
			tasks = tasks[:len(stamps)]
		}
		p.progress[clean] = &UserProgress{
			Nickname:       clean,
			CompletedTasks: tasks,
			CompletedAt:    stamps,
		}
	}
}

func (p *ProgressStore) save() {
	if p.current != "" {
		if !p.store.SetRaw(KeyCurrentUser, p.current) {
			p.log.Error("progress: failed to persist current user")
		}
	}
	if !p.store.Set(KeyUserProgress, p.progress) {
		p.log.Error("progress: failed to persist user progress")
	}
}

// CurrentUser returns the logged-in nickname, empty when logged out.
func (p *ProgressStore) CurrentUser() string { return p.current }

// All returns every progress record keyed by nickname. The caller must
// not mutate the returned map.
func (p *ProgressStore) All() map[string]*UserProgress { return p.progress }

// CurrentProgress returns the logged-in user's record, or nil.
func (p *ProgressStore) CurrentProgress() *UserProgress {
	if p.current == "" {
		return nil
	}
	return p.progress[p.current]
}

// SetCurrentUser validates, sanitizes and repoints the current user,
// lazily creating a progress record, then persists. Other users' records
// are untouched. Returns ErrRateLimited when the login window is
// exhausted and a ValidationError when the nickname is rejected; in both
// cases no state changes.
func (p *ProgressStore) SetCurrentUser(nickname string) error {
	if p.limiter.Limited(loginAction, loginMaxAttempts, loginWindow) {
		p.log.Warn("progress: login rate limit exceeded")
		return ErrRateLimited
	}

	res := secure.ValidateNickname(nickname)
	if !res.Valid {
		p.log.Warn("progress: rejected nickname", "reason", res.Err)
		return ValidationError{Field: "nickname", Reason: res.Err}
	}

	clean := secure.SanitizeInput(nickname)
	p.current = clean
	if _, ok := p.progress[clean]; !ok {
		p.progress[clean] = &UserProgress{Nickname: clean}
	}
	p.save()
	return nil
}

// ClearCurrentUser logs out: the pointer is cleared in memory and in
// storage, progress records stay.
func (p *ProgressStore) ClearCurrentUser() {
	p.current = ""
	p.store.Remove(KeyCurrentUser)
}

// CompleteTask appends taskID and a timestamp to the current user's
// parallel slices and persists. Completing an already-completed task is a
// no-op; the result reports whether anything changed.
func (p *ProgressStore) CompleteTask(taskID string) (bool, error) {
	up := p.CurrentProgress()
	if up == nil {
		return false, ErrNoCurrentUser
	}
	for _, id := range up.CompletedTasks {
		if id == taskID {
			return false, nil
		}
	}
	up.CompletedTasks = append(up.CompletedTasks, taskID)
	up.CompletedAt = append(up.CompletedAt, p.now())
	p.save()
	return true, nil
}

// UncompleteTask removes the first occurrence of taskID (and its
// timestamp, at the same index) from the current user's record and
// persists. Unknown IDs are a no-op.
func (p *ProgressStore) UncompleteTask(taskID string) (bool, error) {
	up := p.CurrentProgress()
	if up == nil {
		return false, ErrNoCurrentUser
	}
	for i, id := range up.CompletedTasks {
		if id == taskID {
			up.CompletedTasks = append(up.CompletedTasks[:i], up.CompletedTasks[i+1:]...)
			up.CompletedAt = append(up.CompletedAt[:i], up.CompletedAt[i+1:]...)
			p.save()
			return true, nil
		}
	}
	return false, nil
}

// IsTaskCompleted reports membership in the current user's completed set.
// Always false when logged out.
func (p *ProgressStore) IsTaskCompleted(taskID string) bool {
	up := p.CurrentProgress()
	if up == nil {
		return false
	}
	for _, id := range up.CompletedTasks {
		if id == taskID {
			return true
		}
	}
	return false
}

// ResetAll clears the current user and every progress record, in memory
// and in storage, including the legacy keys older builds wrote.
// Confirmation is the caller's concern.
func (p *ProgressStore) ResetAll() {
	p.current = ""
	p.progress = map[string]*UserProgress{}

	p.store.Remove(KeyCurrentUser)
	p.store.Remove(KeyUserProgress)
	p.store.Remove(keyLegacyAllUsers)
	p.store.Remove(keyLegacyUserData)
}

// CompletionStats computes the current user's standing against totalTasks.
// Recomputed on demand, never cached.
func (p *ProgressStore) CompletionStats(totalTasks int) CompletionStats {
	up := p.CurrentProgress()
	if up == nil {
		return CompletionStats{}
	}
	completed := len(up.CompletedTasks)
	pct := 0
	if totalTasks > 0 {
		pct = int(math.Round(float64(completed) / float64(totalTasks) * 100))
	}
	return CompletionStats{Completed: completed, Total: totalTasks, Percentage: pct}
}
