// Package theme tracks the light/dark preference and the colours each theme
// uses in the terminal UI.
package theme

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Name is a theme identifier.
type Name string

// Supported themes. Dark is the default.
const (
	Dark  Name = "dark"
	Light Name = "light"
)

// Parse accepts "dark" or "light" in any case.
func Parse(s string) (Name, error) {
	switch Name(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
	}
}

// Toggle returns the other theme.
func (n Name) Toggle() Name {
	if n == Light {
		return Dark
	}
	return Light
}

// Icon is the glyph shown on the toggle: the theme you would switch to.
func (n Name) Icon() string {
	if n == Light {
		return "🌙"
	}
	return "☀️"
}

// Store persists the preference. storage.ThemeStore implements it.
type Store interface {
	Load() (string, bool, error)
	Save(name string) error
}

// Manager holds the current theme and writes every change through to the
// store. Store failures are logged and otherwise ignored.
type Manager struct {
	mu      sync.Mutex
	current Name
	store   Store
	logger  *zap.Logger
}

// NewManager returns a manager starting at fallback until Init runs.
func NewManager(store Store, fallback Name, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fallback != Light {
		fallback = Dark
	}
	return &Manager{current: fallback, store: store, logger: logger}
}

// Init loads the saved preference, keeping the fallback when there is none
// or it cannot be read.
func (m *Manager) Init() Name {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store == nil {
		return m.current
	}
	saved, ok, err := m.store.Load()
	if err != nil {
		m.logger.Warn("load theme preference", zap.Error(err))
		return m.current
	}
	if !ok {
		return m.current
	}
	n, err := Parse(saved)
	if err != nil {
		m.logger.Warn("ignoring saved theme", zap.String("value", saved), zap.Error(err))
		return m.current
	}
	m.current = n
	return n
}

// Current returns the active theme.
func (m *Manager) Current() Name {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Toggle flips the theme, saves it and returns the new value.
func (m *Manager) Toggle() Name {
	m.mu.Lock()
	next := m.current.Toggle()
	m.mu.Unlock()
	return m.Set(next)
}

// Set switches to n and saves it.
func (m *Manager) Set(n Name) Name {
	m.mu.Lock()
	m.current = n
	m.mu.Unlock()
	if m.store != nil {
		if err := m.store.Save(string(n)); err != nil {
			m.logger.Warn("save theme preference", zap.String("theme", string(n)), zap.Error(err))
		}
	}
	return n
}
