package storage

import (
	"encoding/json"
	"log/slog"
)

// MaxValueBytes is the default per-value size cap SafeStore enforces on
// writes, separate from the medium's total capacity.
const MaxValueBytes = 100 * 1024

// SafeStore is the guarded persistence wrapper every store goes through.
// It never returns an error and never panics: a missing medium, a failed
// write, malformed JSON or a shape mismatch all degrade to the caller's
// default value, with a diagnostic on the logger. Business state is owned
// by the stores; SafeStore is a stateless service.
type SafeStore struct {
	medium   Medium
	maxBytes int
	log      *slog.Logger
}

// NewSafeStore wraps the medium. A nil medium is valid and models an
// unavailable persistence layer (every Get returns the default, every Set
// reports failure). A nil logger falls back to slog.Default.
func NewSafeStore(medium Medium, log *slog.Logger) *SafeStore {
	if log == nil {
		log = slog.Default()
	}
	return &SafeStore{medium: medium, maxBytes: MaxValueBytes, log: log}
}

// SetMaxValueBytes overrides the per-value size cap.
func (s *SafeStore) SetMaxValueBytes(n int) { s.maxBytes = n }

// Available reports whether a persistence medium is present.
func (s *SafeStore) Available() bool { return s != nil && s.medium != nil }

// Get returns the JSON-decoded value stored under key, or def when the key
// is missing, the medium is unavailable, the payload is not valid JSON, or
// the payload does not decode into def's type.
func Get[T any](s *SafeStore, key string, def T) T {
	if !s.Available() || key == "" {
		return def
	}
	raw, ok := s.medium.Get(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn("safestore: discarding malformed value", "key", key, "error", err)
		return def
	}
	return v
}

// Set JSON-encodes v and writes it under key. It returns false without
// writing when the key is empty, the medium is unavailable, the encoded
// payload exceeds the size cap, or the medium rejects the write.
func (s *SafeStore) Set(key string, v any) bool {
	if key == "" {
		s.log.Error("safestore: refusing empty key")
		return false
	}
	if !s.Available() {
		return false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error("safestore: marshal failed", "key", key, "error", err)
		return false
	}
	return s.setRaw(key, string(raw))
}

// GetRaw returns the stored string verbatim. Used for the handful of keys
// stored as plain strings rather than JSON documents.
func (s *SafeStore) GetRaw(key string) (string, bool) {
	if !s.Available() || key == "" {
		return "", false
	}
	return s.medium.Get(key)
}

// SetRaw stores the string verbatim, under the same size discipline as Set.
func (s *SafeStore) SetRaw(key, value string) bool {
	if key == "" {
		s.log.Error("safestore: refusing empty key")
		return false
	}
	if !s.Available() {
		return false
	}
	return s.setRaw(key, value)
}

// Remove deletes the key. Safe to call when the medium is unavailable.
func (s *SafeStore) Remove(key string) {
	if !s.Available() || key == "" {
		return
	}
	s.medium.Remove(key)
}

func (s *SafeStore) setRaw(key, value string) bool {
	if len(value) > s.maxBytes {
		s.log.Warn("safestore: value exceeds size cap",
			"key", key, "size", len(value), "cap", s.maxBytes)
		return false
	}
	if err := s.medium.Set(key, value); err != nil {
		s.log.Error("safestore: write failed", "key", key, "error", err)
		return false
	}
	return true
}
