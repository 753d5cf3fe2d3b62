// Package storage persists the collection cache and the theme preference in
// the SQLite kv table.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/VoxDroid/pokedex/internal/pokedex"
)

// KV is a tiny key/value repository. Every error it returns wraps
// pokedex.ErrStorage.
type KV struct {
	db  *sql.DB
	now func() time.Time
}

// NewKV wraps an open database.
func NewKV(db *sql.DB) *KV {
	return &KV{db: db, now: time.Now}
}

// Get returns the value and write time for key. ok is false when the key is
// absent.
func (k *KV) Get(key string) (value []byte, updated time.Time, ok bool, err error) {
	var ms int64
	err = k.db.QueryRow("SELECT value, updated_at FROM kv WHERE key = ?", key).Scan(&value, &ms)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("%w: get %s: %w", pokedex.ErrStorage, key, err)
	}
	return value, time.UnixMilli(ms), true, nil
}

// Put stores value under key, stamping it with the current time.
func (k *KV) Put(key string, value []byte) error {
	_, err := k.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, k.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: put %s: %w", pokedex.ErrStorage, key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (k *KV) Delete(key string) error {
	if _, err := k.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("%w: delete %s: %w", pokedex.ErrStorage, key, err)
	}
	return nil
}
