package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// KV is the SQLite-backed Medium. One row per key in the kv table, with a
// total capacity bound so a runaway writer cannot grow the file without
// limit. All methods are synchronous; failures on Get surface as a missing
// key, matching the medium contract.
type KV struct {
	db       *sql.DB
	capacity int
}

// NewKV wraps an opened database as a Medium with the default capacity.
func NewKV(db *sql.DB) *KV {
	return &KV{db: db, capacity: DefaultCapacityBytes}
}

func NewKVWithCapacity(db *sql.DB, capacity int) *KV {
	return &KV{db: db, capacity: capacity}
}

func (r *KV) Get(key string) (string, bool) {
	row := r.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		return "", false
	}
	return v, true
}

func (r *KV) Set(key, value string) error {
	used, err := r.usedBytes(key)
	if err != nil {
		return err
	}
	if used+len(key)+len(value) > r.capacity {
		return fmt.Errorf("kv set: quota exceeded (%d bytes)", r.capacity)
	}

	_, err = r.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (r *KV) Remove(key string) {
	_, _ = r.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
}

// usedBytes sums key+value sizes of every row except the one being replaced.
func (r *KV) usedBytes(excludeKey string) (int, error) {
	row := r.db.QueryRow(`
		SELECT COALESCE(SUM(LENGTH(key) + LENGTH(value)), 0)
		FROM kv
		WHERE key != ?
	`, excludeKey)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("kv size: %w", err)
	}
	return n, nil
}
