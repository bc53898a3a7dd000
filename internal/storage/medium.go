package storage

import (
	"fmt"
	"sort"
)

// Medium is the synchronous key/value persistence contract the stores write
// through. It has the same shape as the web client's localStorage: string
// keys, string values, a bounded capacity, and a Set that can fail when the
// quota is exhausted. A Medium may be entirely unavailable, in which case
// callers hold a nil Medium and SafeStore degrades to defaults.
type Medium interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool)
	// Set writes the value. It returns an error when the write would
	// exceed the medium's capacity.
	Set(key, value string) error
	// Remove deletes the key. Removing a missing key is a no-op.
	Remove(key string)
}

// DefaultCapacityBytes is the total capacity of a Memory medium,
// matching the ~5 MiB quota browsers give localStorage.
const DefaultCapacityBytes = 5 << 20

// Memory is an in-process Medium with a total capacity bound.
// It backs tests and serves as the degraded fallback when no
// database can be opened.
type Memory struct {
	capacity int
	data     map[string]string
}

// NewMemory returns an empty Memory medium with the default capacity.
func NewMemory() *Memory {
	return NewMemoryWithCapacity(DefaultCapacityBytes)
}

func NewMemoryWithCapacity(capacity int) *Memory {
	return &Memory{capacity: capacity, data: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	used := 0
	for k, v := range m.data {
		if k == key {
			continue
		}
		used += len(k) + len(v)
	}
	if used+len(key)+len(value) > m.capacity {
		return fmt.Errorf("memory medium: quota exceeded (%d bytes)", m.capacity)
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) {
	delete(m.data, key)
}

// Keys returns the stored keys in ascending order. Test helper.
func (m *Memory) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
