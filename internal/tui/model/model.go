// Package model provides a framework-agnostic UI model built on top of the
// search engine and the adapter interfaces so the TUI code can remain
// presentation-focused.
package model

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/theme"
	"github.com/VoxDroid/pokedex/internal/tui/adapters"
)

// ErrNoSelection is returned by actions that need a selected record.
var ErrNoSelection = errors.New("no pokémon selected")

// Options wires a UIModel. Detail, Sound, Themes and Logger are optional.
type Options struct {
	Session  *pokedex.Session
	Renderer pokedex.Renderer
	Detail   adapters.DetailAdapter
	Sound    adapters.SoundAdapter
	Themes   *theme.Manager
	Logger   *zap.Logger
}

// UIModel is a framework-agnostic model for the list/detail screen.
type UIModel struct {
	session *pokedex.Session
	render  pokedex.Renderer
	detail  adapters.DetailAdapter
	sound   adapters.SoundAdapter
	themes  *theme.Manager
	logger  *zap.Logger

	mu      sync.Mutex
	details map[int]adapters.Detail
}

// New constructs a UIModel from opts.
func New(opts Options) *UIModel {
	m := &UIModel{
		session: opts.Session,
		render:  opts.Renderer,
		detail:  opts.Detail,
		sound:   opts.Sound,
		themes:  opts.Themes,
		logger:  opts.Logger,
		details: map[int]adapters.Detail{},
	}
	if m.render == nil {
		m.render = pokedex.NopRenderer{}
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.themes == nil {
		m.themes = theme.NewManager(nil, theme.Dark, m.logger)
	}
	return m
}

// Start loads the roster and the saved theme.
func (m *UIModel) Start(ctx context.Context) error {
	m.themes.Init()
	return m.session.Start(ctx)
}

// Search submits the search box contents.
func (m *UIModel) Search(ctx context.Context, query string) (pokedex.Outcome, error) {
	return m.session.Searcher.Submit(ctx, query)
}

// ClearSearch restores the full roster after the search box was emptied.
func (m *UIModel) ClearSearch() []pokedex.Record {
	return m.session.Searcher.ClearInput()
}

// Choose selects the record with id, exactly as a click on the list would.
func (m *UIModel) Choose(id int) bool {
	return m.session.Selector.Choose(id)
}

// Records returns the whole roster.
func (m *UIModel) Records() []pokedex.Record { return m.session.Store.All() }

// Selected returns the selected record, if any.
func (m *UIModel) Selected() (pokedex.Record, bool) {
	id, ok := m.session.Store.Selected()
	if !ok {
		return pokedex.Record{}, false
	}
	return m.session.Store.ByID(id)
}

// Describe returns species details for r, fetching them once per id. On
// failure the renderer shows the detail error.
func (m *UIModel) Describe(ctx context.Context, r pokedex.Record) (adapters.Detail, error) {
	m.mu.Lock()
	d, ok := m.details[r.ID]
	m.mu.Unlock()
	if ok {
		return d, nil
	}
	if m.detail == nil {
		return adapters.Detail{Record: r, Sprite: r.BestSprite()}, nil
	}
	d, err := m.detail.Describe(ctx, r)
	if err != nil {
		m.logger.Warn("describe failed", zap.String("pokemon", r.Name), zap.Error(err))
		m.render.RenderDetailError(r.Name)
		return d, err
	}
	m.mu.Lock()
	m.details[r.ID] = d
	m.mu.Unlock()
	return d, nil
}

// PlayCry plays the selected record's cry.
func (m *UIModel) PlayCry(ctx context.Context) error {
	r, ok := m.Selected()
	if !ok {
		return ErrNoSelection
	}
	if m.sound == nil {
		return errors.New("sound adapter not configured")
	}
	return m.sound.Play(ctx, r.Name)
}

// Theme returns the active theme.
func (m *UIModel) Theme() theme.Name { return m.themes.Current() }

// ToggleTheme flips and persists the theme.
func (m *UIModel) ToggleTheme() theme.Name { return m.themes.Toggle() }
