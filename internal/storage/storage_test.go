package storage

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/pokedex/internal/db"
	"github.com/VoxDroid/pokedex/internal/pokedex"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newKV(t *testing.T) (*KV, *clock) {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "pokedex.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	c := &clock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	kv := NewKV(conn)
	kv.now = c.now
	return kv, c
}

func roster(t *testing.T) []pokedex.Record {
	t.Helper()
	var out []pokedex.Record
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":1,"name":"bulbasaur","types":[{"slot":1,"type":{"name":"grass"}}],"order":1},
		{"id":4,"name":"charmander","types":[{"slot":1,"type":{"name":"fire"}}],"order":5}
	]`), &out))
	return out
}

func TestKV_PutGetDelete(t *testing.T) {
	kv, c := newKV(t)

	_, _, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put("k", []byte("one")))
	c.t = c.t.Add(time.Minute)
	require.NoError(t, kv.Put("k", []byte("two")))

	v, updated, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", string(v))
	assert.True(t, updated.Equal(c.t))

	require.NoError(t, kv.Delete("k"))
	require.NoError(t, kv.Delete("k"))
	_, _, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_ErrorsWrapStorage(t *testing.T) {
	kv, _ := newKV(t)
	err := kv.Put("  ", []byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pokedex.ErrStorage)
}

func TestCollectionCache_ValidWithinTTL(t *testing.T) {
	kv, c := newKV(t)
	cache := NewCollectionCache(kv, 0)
	assert.Equal(t, DefaultTTL, cache.TTL())

	_, ok, err := cache.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Save(roster(t)))
	c.t = c.t.Add(23 * time.Hour)

	got, ok, err := cache.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "charmander", got[1].Name)

	// unknown fields survive the round trip
	raw, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"order":1`)
}

func TestCollectionCache_ExpiresAtTTL(t *testing.T) {
	kv, c := newKV(t)
	cache := NewCollectionCache(kv, 24*time.Hour)
	require.NoError(t, cache.Save(roster(t)))

	c.t = c.t.Add(24 * time.Hour)
	_, ok, err := cache.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	st, err := cache.Status()
	require.NoError(t, err)
	assert.True(t, st.Present)
	assert.False(t, st.Valid)
	assert.Equal(t, 24*time.Hour, st.Age)
}

func TestCollectionCache_CorruptBlob(t *testing.T) {
	kv, _ := newKV(t)
	require.NoError(t, kv.Put(CollectionKey, []byte("{not json")))
	cache := NewCollectionCache(kv, time.Hour)

	_, ok, err := cache.Load()
	assert.False(t, ok)
	assert.ErrorIs(t, err, pokedex.ErrStorage)
}

func TestCollectionCache_Clear(t *testing.T) {
	kv, _ := newKV(t)
	cache := NewCollectionCache(kv, time.Hour)
	require.NoError(t, cache.Save(roster(t)))
	require.NoError(t, cache.Clear())

	st, err := cache.Status()
	require.NoError(t, err)
	assert.False(t, st.Present)
}

func TestThemeStore(t *testing.T) {
	kv, _ := newKV(t)
	s := NewThemeStore(kv)

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save("light"))
	name, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", name)
}
