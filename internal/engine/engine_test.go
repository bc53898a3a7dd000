package engine

import (
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/Janimeister/Taskmaster/internal/secure"
	"github.com/Janimeister/Taskmaster/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*Service, *storage.Memory) {
	t.Helper()
	m := storage.NewMemory()
	return NewService(m, testLogger()), m
}

// seedCatalog writes an n-task catalog straight into the medium so the
// next service load picks it up.
func seedCatalog(t *testing.T, m *storage.Memory, n int) {
	t.Helper()
	tasks := make([]Task, n)
	for i := range tasks {
		id := strconv.Itoa(i + 1)
		tasks[i] = Task{ID: id, Title: "Task " + id, Description: "Task " + id, Category: "Test"}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	if err := m.Set(KeyTasks, string(raw)); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
}

func newTestStore(t *testing.T, m *storage.Memory) *ProgressStore {
	t.Helper()
	safe := storage.NewSafeStore(m, testLogger())
	return NewProgressStore(safe, secure.NewRateLimiter(), testLogger())
}
