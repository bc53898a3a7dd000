package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Janimeister/Taskmaster/internal/secure"
	"github.com/Janimeister/Taskmaster/internal/storage"
)

func TestSetCurrentUserCreatesRecord(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)

	if err := p.SetCurrentUser("Ada"); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}
	if got := p.CurrentUser(); got != "Ada" {
		t.Fatalf("CurrentUser = %q, want Ada", got)
	}
	if p.CurrentProgress() == nil {
		t.Fatal("no progress record created")
	}

	// A fresh store over the same medium sees the persisted state.
	p2 := newTestStore(t, m)
	if got := p2.CurrentUser(); got != "Ada" {
		t.Fatalf("reloaded CurrentUser = %q, want Ada", got)
	}
	if p2.All()["Ada"] == nil {
		t.Fatal("progress record not persisted")
	}
}

func TestSetCurrentUserKeepsOtherRecords(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)

	if err := p.SetCurrentUser("Ada"); err != nil {
		t.Fatalf("login Ada: %v", err)
	}
	if _, err := p.CompleteTask("1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := p.SetCurrentUser("Grace"); err != nil {
		t.Fatalf("login Grace: %v", err)
	}

	if got := p.CurrentUser(); got != "Grace" {
		t.Fatalf("CurrentUser = %q, want Grace", got)
	}
	if ada := p.All()["Ada"]; ada == nil || len(ada.CompletedTasks) != 1 {
		t.Fatalf("Ada's record lost on relogin: %+v", ada)
	}
}

func TestSetCurrentUserRejectsInvalidNickname(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)

	err := p.SetCurrentUser("")
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if got := p.CurrentUser(); got != "" {
		t.Fatalf("CurrentUser = %q, want unchanged empty", got)
	}
	if keys := m.Keys(); len(keys) != 0 {
		t.Fatalf("storage written on failed login: %v", keys)
	}
}

func TestSetCurrentUserSanitizes(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)

	// Valid per the nickname charset, but sanitization strips the
	// "script" substring before it becomes a storage key.
	if err := p.SetCurrentUser("scripter"); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}
	if got := p.CurrentUser(); got != "er" {
		t.Fatalf("CurrentUser = %q, want sanitized er", got)
	}
}

func TestSetCurrentUserRateLimited(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := storage.NewMemory()
	safe := storage.NewSafeStore(m, testLogger())
	limiter := secure.NewRateLimiterAt(func() time.Time { return now })
	p := NewProgressStore(safe, limiter, testLogger())

	for i := 0; i < 5; i++ {
		if err := p.SetCurrentUser("user-" + string(rune('a'+i))); err != nil {
			t.Fatalf("login %d: %v", i+1, err)
		}
	}
	err := p.SetCurrentUser("one-too-many")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("6th login err = %v, want ErrRateLimited", err)
	}
	if got := p.CurrentUser(); got != "user-e" {
		t.Fatalf("CurrentUser = %q, want user-e (unchanged by rejected login)", got)
	}

	now = now.Add(31 * time.Second)
	if err := p.SetCurrentUser("late-arrival"); err != nil {
		t.Fatalf("login after window: %v", err)
	}
}

func TestCompleteTaskIdempotent(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)
	if err := p.SetCurrentUser("Ada"); err != nil {
		t.Fatalf("login: %v", err)
	}

	changed, err := p.CompleteTask("1")
	if err != nil || !changed {
		t.Fatalf("first complete = %v,%v, want true,nil", changed, err)
	}
	want := append([]string(nil), p.CurrentProgress().CompletedTasks...)

	changed, err = p.CompleteTask("1")
	if err != nil || changed {
		t.Fatalf("second complete = %v,%v, want false,nil", changed, err)
	}
	if got := p.CurrentProgress().CompletedTasks; !reflect.DeepEqual(got, want) {
		t.Fatalf("completed tasks = %v, want %v", got, want)
	}
}

func TestUncompleteTaskIsInverse(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)
	if err := p.SetCurrentUser("Ada"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := p.CompleteTask("1"); err != nil {
		t.Fatalf("complete 1: %v", err)
	}
	beforeTasks := append([]string(nil), p.CurrentProgress().CompletedTasks...)
	beforeAt := append([]time.Time(nil), p.CurrentProgress().CompletedAt...)

	if _, err := p.CompleteTask("2"); err != nil {
		t.Fatalf("complete 2: %v", err)
	}
	if changed, err := p.UncompleteTask("2"); err != nil || !changed {
		t.Fatalf("uncomplete = %v,%v, want true,nil", changed, err)
	}

	up := p.CurrentProgress()
	if !reflect.DeepEqual(up.CompletedTasks, beforeTasks) {
		t.Fatalf("tasks = %v, want restored %v", up.CompletedTasks, beforeTasks)
	}
	if !reflect.DeepEqual(up.CompletedAt, beforeAt) {
		t.Fatalf("timestamps = %v, want restored %v", up.CompletedAt, beforeAt)
	}
}

func TestParallelSlicesStayAligned(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)
	if err := p.SetCurrentUser("Ada"); err != nil {
		t.Fatalf("login: %v", err)
	}

	check := func(when string) {
		t.Helper()
		up := p.CurrentProgress()
		if len(up.CompletedTasks) != len(up.CompletedAt) {
			t.Fatalf("%s: len(tasks)=%d len(at)=%d", when, len(up.CompletedTasks), len(up.CompletedAt))
		}
	}

	check("initial")
	for _, id := range []string{"1", "2", "3"} {
		if _, err := p.CompleteTask(id); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
		check("after complete " + id)
	}
	if _, err := p.UncompleteTask("2"); err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	check("after uncomplete")
	if _, err := p.UncompleteTask("missing"); err != nil {
		t.Fatalf("uncomplete missing: %v", err)
	}
	check("after no-op uncomplete")
}

func TestCompleteTaskRequiresLogin(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)

	if _, err := p.CompleteTask("1"); !errors.Is(err, ErrNoCurrentUser) {
		t.Fatalf("err = %v, want ErrNoCurrentUser", err)
	}
	if p.IsTaskCompleted("1") {
		t.Fatal("IsTaskCompleted true while logged out")
	}
}

func TestClearCurrentUserKeepsProgress(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)
	if err := p.SetCurrentUser("Ada"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := p.CompleteTask("1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	p.ClearCurrentUser()
	if got := p.CurrentUser(); got != "" {
		t.Fatalf("CurrentUser = %q, want empty", got)
	}
	if _, ok := m.Get(KeyCurrentUser); ok {
		t.Fatal("pointer key survived logout")
	}
	if _, ok := m.Get(KeyUserProgress); !ok {
		t.Fatal("progress key removed by logout")
	}
	if p.All()["Ada"] == nil {
		t.Fatal("Ada's record removed by logout")
	}
}

func TestResetAllClearsEverythingIncludingLegacyKeys(t *testing.T) {
	m := storage.NewMemory()
	if err := m.Set("taskApp_allUsers", "[]"); err != nil {
		t.Fatalf("seed legacy: %v", err)
	}
	if err := m.Set("taskApp_userData", "{}"); err != nil {
		t.Fatalf("seed legacy: %v", err)
	}

	p := newTestStore(t, m)
	if err := p.SetCurrentUser("Ada"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := p.CompleteTask("1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	p.ResetAll()
	if p.CurrentUser() != "" || len(p.All()) != 0 {
		t.Fatalf("in-memory state survived reset: user=%q records=%d", p.CurrentUser(), len(p.All()))
	}
	for _, key := range []string{KeyCurrentUser, KeyUserProgress, "taskApp_allUsers", "taskApp_userData"} {
		if _, ok := m.Get(key); ok {
			t.Fatalf("key %q survived reset", key)
		}
	}
}

func TestLoadClearsInvalidStoredCurrentUser(t *testing.T) {
	m := storage.NewMemory()
	if err := m.Set(KeyCurrentUser, "<script>"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := newTestStore(t, m)
	if got := p.CurrentUser(); got != "" {
		t.Fatalf("CurrentUser = %q, want empty", got)
	}
	if _, ok := m.Get(KeyCurrentUser); ok {
		t.Fatal("invalid pointer left in storage")
	}
}

func TestLoadDropsInvalidEntriesAndClampsSlices(t *testing.T) {
	m := storage.NewMemory()
	stored := `{
		"Ada": {"nickname":"Ada","completedTasks":["1","2"],"completedAt":["2025-06-01T10:00:00Z","2025-06-01T11:00:00Z"]},
		"<bad>": {"nickname":"<bad>","completedTasks":["1"],"completedAt":["2025-06-01T10:00:00Z"]},
		"Torn": {"nickname":"Torn","completedTasks":["1","2","3"],"completedAt":["2025-06-01T10:00:00Z"]}
	}`
	if err := m.Set(KeyUserProgress, stored); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := newTestStore(t, m)
	all := p.All()
	if _, ok := all["<bad>"]; ok {
		t.Fatal("invalid nickname entry survived load")
	}
	if ada := all["Ada"]; ada == nil || len(ada.CompletedTasks) != 2 {
		t.Fatalf("Ada = %+v, want 2 completions", all["Ada"])
	}
	torn := all["Torn"]
	if torn == nil {
		t.Fatal("Torn dropped entirely")
	}
	if len(torn.CompletedTasks) != len(torn.CompletedAt) {
		t.Fatalf("Torn slices unaligned: %d vs %d", len(torn.CompletedTasks), len(torn.CompletedAt))
	}
	if len(torn.CompletedTasks) != 1 {
		t.Fatalf("Torn completions = %d, want clamped to 1", len(torn.CompletedTasks))
	}
}

func TestCompletionStats(t *testing.T) {
	m := storage.NewMemory()
	p := newTestStore(t, m)

	if got := p.CompletionStats(5); got != (CompletionStats{}) {
		t.Fatalf("logged-out stats = %+v, want zero", got)
	}

	if err := p.SetCurrentUser("Ada"); err != nil {
		t.Fatalf("login: %v", err)
	}
	for _, id := range []string{"1", "2"} {
		if _, err := p.CompleteTask(id); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}

	got := p.CompletionStats(5)
	want := CompletionStats{Completed: 2, Total: 5, Percentage: 40}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}

	if got := p.CompletionStats(0); got.Percentage != 0 {
		t.Fatalf("percentage with empty catalog = %d, want 0", got.Percentage)
	}
}
