package engine

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/Janimeister/Taskmaster/internal/secure"
	"github.com/Janimeister/Taskmaster/internal/storage"
)

// Catalog holds the ordered task list and persists every mutation. The
// in-memory slice is the source of truth between loads; storage is only
// read at construction time.
type Catalog struct {
	store *storage.SafeStore
	log   *slog.Logger
	tasks []Task
}

// NewCatalog loads the catalog from storage, falling back to the built-in
// defaults when nothing valid is stored.
func NewCatalog(store *storage.SafeStore, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	c := &Catalog{store: store, log: log}
	c.load()
	return c
}

// load validates every stored record individually: all four fields must be
// non-empty-ID strings and the title must pass ValidateTaskTitle. Invalid
// records are dropped. When nothing valid survives (or nothing was stored)
// the defaults are restored and persisted. Stored progress and the catalog
// share this per-record policy deliberately: one corrupt row should not
// cost the rest of the list.
func (c *Catalog) load() {
	if !c.store.Available() {
		c.tasks = DefaultTasks()
		return
	}

	stored := storage.Get(c.store, KeyTasks, []Task(nil))

	var valid []Task
	for _, t := range stored {
		if t.ID == "" || !secure.ValidateTaskTitle(t.Title) {
			c.log.Warn("catalog: dropping invalid stored task", "id", t.ID)
			continue
		}
		valid = append(valid, t)
	}

	if len(valid) == 0 {
		c.tasks = DefaultTasks()
		c.save()
		return
	}
	if len(valid) < len(stored) {
		c.tasks = valid
		c.save()
		return
	}
	c.tasks = valid
}

func (c *Catalog) save() {
	if !c.store.Set(KeyTasks, c.tasks) {
		c.log.Error("catalog: failed to persist tasks")
	}
}

// Tasks returns the catalog in order. The caller must not mutate the
// returned slice.
func (c *Catalog) Tasks() []Task { return c.tasks }

// Len returns the number of tasks, the completion-rate denominator.
func (c *Catalog) Len() int { return len(c.tasks) }

// ByID returns the task with the given ID, or nil.
func (c *Catalog) ByID(id string) *Task {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			return &c.tasks[i]
		}
	}
	return nil
}

// ByCategory returns the tasks in the given category, in catalog order.
func (c *Catalog) ByCategory(category string) []Task {
	var out []Task
	for _, t := range c.tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the distinct categories in ascending order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range c.tasks {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out
}

// ResetAll restores the default list verbatim, discarding customization,
// and persists it.
func (c *Catalog) ResetAll() {
	c.tasks = DefaultTasks()
	c.save()
}

// Add appends a task with a generated ID and persists. The title must pass
// validation.
func (c *Catalog) Add(title, description, category string) (*Task, error) {
	if !secure.ValidateTaskTitle(title) {
		return nil, ValidationError{Field: "title", Reason: "title contains disallowed content"}
	}
	t := Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    category,
	}
	c.tasks = append(c.tasks, t)
	c.save()
	return &c.tasks[len(c.tasks)-1], nil
}

// TaskPatch is a partial task update; nil fields are left as-is.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
}

// Update applies the patch to the task with the given ID and persists.
func (c *Catalog) Update(id string, patch TaskPatch) (*Task, error) {
	t := c.ByID(id)
	if t == nil {
		return nil, ValidationError{Field: "id", Reason: "task not found"}
	}
	if patch.Title != nil {
		if !secure.ValidateTaskTitle(*patch.Title) {
			return nil, ValidationError{Field: "title", Reason: "title contains disallowed content"}
		}
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	c.save()
	return t, nil
}

// Delete removes the task with the given ID and persists. Deleting a
// missing ID is a no-op.
func (c *Catalog) Delete(id string) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			c.save()
			return
		}
	}
}
