/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package settings persists small display preferences as key/value pairs.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
)

// Well-known keys.
const (
	// KeyEffects holds whether the weather overlay is drawn (bool).
	KeyEffects = "effects"

	// KeyUI holds the last front end used (string).
	KeyUI = "ui"
)

// Store is a key/value settings store.
type Store interface {
	Set(value any, key string) error
	Get(key string) (any, bool)
}

// Bool reads a boolean setting, returning fallback when unset or mistyped.
func Bool(s Store, key string, fallback bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		return fallback
	}
	return b
}

// String reads a string setting, returning fallback when unset or mistyped.
func String(s Store, key, fallback string) string {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	str, ok := v.(string)
	if !ok {
		return fallback
	}
	return str
}

// -----------------------------------------------------------------------------
// Memory Store
// -----------------------------------------------------------------------------

// Memory keeps settings in memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]any)}
}

// Set implements Store.
func (m *Memory) Set(value any, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Get implements Store.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// -----------------------------------------------------------------------------
// File Store
// -----------------------------------------------------------------------------

// FileName is the settings file name inside the data directory.
const FileName = "settings.toml"

// File keeps settings in a TOML file, rewriting it on every Set.
type File struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// OpenFile loads the store at path. A missing file is an empty store.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]any)}

	if _, err := toml.DecodeFile(path, &f.values); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("cannot read settings %s: %w", path, err)
	}
	return f, nil
}

// Path returns the backing file.
func (f *File) Path() string {
	return f.path
}

// Set implements Store.
func (f *File) Set(value any, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.values[key]
	f.values[key] = value
	if err := f.save(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

// Get implements Store.
func (f *File) Get(key string) (any, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the stored keys in sorted order.
func (f *File) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// save writes the file atomically through a temp file in the same directory.
func (f *File) save() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("cannot write settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(f.values); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("cannot replace %s: %w", f.path, err)
	}
	return nil
}
