package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/theme"
	"github.com/VoxDroid/pokedex/internal/tui/adapters"
)

type fakeAPI struct{ roster []pokedex.Record }

func (f *fakeAPI) FetchInitialCollection(_ context.Context, count int) ([]pokedex.Record, error) {
	if count < len(f.roster) {
		return f.roster[:count], nil
	}
	return f.roster, nil
}

func (f *fakeAPI) FetchByIdentifier(_ context.Context, term string) (pokedex.Record, error) {
	if term == "mew" {
		return pokedex.Record{ID: 151, Name: "mew"}, nil
	}
	return pokedex.Record{}, fmt.Errorf("%s: %w", term, pokedex.ErrLookupNotFound)
}

type fakeDetail struct {
	calls int
	err   error
}

func (f *fakeDetail) Describe(_ context.Context, r pokedex.Record) (adapters.Detail, error) {
	f.calls++
	if f.err != nil {
		return adapters.Detail{Record: r}, f.err
	}
	return adapters.Detail{Record: r, Description: "about " + r.Name}, nil
}

type fakeSound struct{ played []string }

func (f *fakeSound) Play(_ context.Context, name string) error {
	f.played = append(f.played, name)
	return nil
}
func (f *fakeSound) URL(name string) string { return "cry:" + name }

type memThemes struct{ saved string }

func (m *memThemes) Load() (string, bool, error) { return m.saved, m.saved != "", nil }
func (m *memThemes) Save(n string) error         { m.saved = n; return nil }

type logRenderer struct {
	mu    sync.Mutex
	calls []string
}

func (l *logRenderer) add(s string) { l.mu.Lock(); l.calls = append(l.calls, s); l.mu.Unlock() }

func (l *logRenderer) RenderList(rs []pokedex.Record) { l.add(fmt.Sprintf("list:%d", len(rs))) }
func (l *logRenderer) RenderSearching(term string)    { l.add("searching:" + term) }
func (l *logRenderer) RenderSearchError(term string)  { l.add("error:" + term) }
func (l *logRenderer) RenderDetail(r pokedex.Record)  { l.add("detail:" + r.Name) }
func (l *logRenderer) RenderDetailError(name string)  { l.add("detail-error:" + name) }
func (l *logRenderer) RenderEmptyState()              { l.add("empty") }
func (l *logRenderer) MarkActive(id int)              { l.add(fmt.Sprintf("active:%d", id)) }
func (l *logRenderer) joined() string                 { return strings.Join(l.calls, " ") }

func newUI(t *testing.T, detail adapters.DetailAdapter, sound adapters.SoundAdapter, themes *memThemes) (*UIModel, *logRenderer) {
	t.Helper()
	api := &fakeAPI{roster: []pokedex.Record{
		{ID: 1, Name: "bulbasaur"}, {ID: 4, Name: "charmander"}, {ID: 7, Name: "squirtle"},
	}}
	r := &logRenderer{}
	s := pokedex.NewSession(pokedex.SessionConfig{Loader: api, Lookup: api, Renderer: r, Count: 10})
	var store theme.Store
	if themes != nil {
		store = themes
	}
	ui := New(Options{
		Session:  s,
		Renderer: r,
		Detail:   detail,
		Sound:    sound,
		Themes:   theme.NewManager(store, theme.Dark, nil),
	})
	if err := ui.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return ui, r
}

func TestStartLoadsRosterAndTheme(t *testing.T) {
	ui, r := newUI(t, nil, nil, &memThemes{saved: "light"})
	if len(ui.Records()) != 3 {
		t.Fatalf("expected 3 records got %d", len(ui.Records()))
	}
	if ui.Theme() != theme.Light {
		t.Fatalf("expected saved light theme, got %s", ui.Theme())
	}
	if r.joined() != "list:3" {
		t.Fatalf("unexpected render calls %q", r.joined())
	}
}

func TestSearchRemoteThenClear(t *testing.T) {
	ui, r := newUI(t, nil, nil, nil)
	out, err := ui.Search(context.Background(), "mew")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if out.State != pokedex.Found {
		t.Fatalf("expected Found got %s", out.State)
	}
	sel, ok := ui.Selected()
	if !ok || sel.ID != 151 {
		t.Fatalf("expected mew selected, got %+v %v", sel, ok)
	}
	all := ui.ClearSearch()
	if len(all) != 4 {
		t.Fatalf("expected roster to grow to 4, got %d", len(all))
	}
	if !strings.HasSuffix(r.joined(), "list:4 active:151") {
		t.Fatalf("expected selection kept after clear, got %q", r.joined())
	}
}

func TestChooseAndDescribeCaches(t *testing.T) {
	fd := &fakeDetail{}
	ui, _ := newUI(t, fd, nil, nil)
	if !ui.Choose(4) {
		t.Fatalf("choose failed")
	}
	rec, _ := ui.Selected()
	for i := 0; i < 2; i++ {
		d, err := ui.Describe(context.Background(), rec)
		if err != nil {
			t.Fatalf("describe: %v", err)
		}
		if d.Description != "about charmander" {
			t.Fatalf("unexpected description %q", d.Description)
		}
	}
	if fd.calls != 1 {
		t.Fatalf("expected one fetch, got %d", fd.calls)
	}
}

func TestDescribeFailureRendersError(t *testing.T) {
	boom := errors.New("boom")
	ui, r := newUI(t, &fakeDetail{err: boom}, nil, nil)
	ui.Choose(7)
	rec, _ := ui.Selected()
	if _, err := ui.Describe(context.Background(), rec); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !strings.HasSuffix(r.joined(), "detail-error:squirtle") {
		t.Fatalf("expected detail error render, got %q", r.joined())
	}
}

func TestPlayCryNeedsSelection(t *testing.T) {
	fs := &fakeSound{}
	ui, _ := newUI(t, nil, fs, nil)
	if err := ui.PlayCry(context.Background()); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	ui.Choose(1)
	if err := ui.PlayCry(context.Background()); err != nil {
		t.Fatalf("play: %v", err)
	}
	if len(fs.played) != 1 || fs.played[0] != "bulbasaur" {
		t.Fatalf("unexpected plays %v", fs.played)
	}
}

func TestToggleThemePersists(t *testing.T) {
	mt := &memThemes{}
	ui, _ := newUI(t, nil, nil, mt)
	if ui.Theme() != theme.Dark {
		t.Fatalf("expected dark default")
	}
	if ui.ToggleTheme() != theme.Light || mt.saved != "light" {
		t.Fatalf("expected light saved, got %q", mt.saved)
	}
}
