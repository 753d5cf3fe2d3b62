package ui

import (
	"sync"

	"github.com/VoxDroid/pokedex/internal/pokedex"
)

// Frame is what the engine last asked to be drawn.
type Frame struct {
	Records []pokedex.Record
	// ListMsg replaces the list when set (searching, not found, no results).
	ListMsg string
	ListErr bool

	Detail    *pokedex.Record
	DetailMsg string
	DetailErr bool

	Active int
	Seq    uint64
}

// RenderSink implements pokedex.Renderer by recording the latest frame. The
// engine calls it from tea.Cmd goroutines; TuiModel reads snapshots from the
// update loop.
type RenderSink struct {
	mu sync.Mutex
	f  Frame
}

// NewRenderSink starts in the loading state.
func NewRenderSink() *RenderSink {
	return &RenderSink{f: Frame{ListMsg: pokedex.LoadingMessage, DetailMsg: pokedex.EmptyStateMessage}}
}

// Snapshot returns the current frame. Its slices must not be modified.
func (s *RenderSink) Snapshot() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f
}

func (s *RenderSink) update(fn func(f *Frame)) {
	s.mu.Lock()
	fn(&s.f)
	s.f.Seq++
	s.mu.Unlock()
}

func (s *RenderSink) RenderList(records []pokedex.Record) {
	cp := append([]pokedex.Record(nil), records...)
	s.update(func(f *Frame) {
		f.Records = cp
		f.ListErr = false
		f.ListMsg = ""
		if len(cp) == 0 {
			f.ListMsg = pokedex.NoResultsMessage
		}
	})
}

func (s *RenderSink) RenderSearching(string) {
	s.update(func(f *Frame) {
		f.Records = nil
		f.ListMsg = pokedex.SearchingMessage
		f.ListErr = false
	})
}

func (s *RenderSink) RenderSearchError(term string) {
	s.update(func(f *Frame) {
		f.Records = nil
		f.ListMsg = pokedex.NotFoundMessage(term)
		f.ListErr = true
	})
}

func (s *RenderSink) RenderDetail(r pokedex.Record) {
	s.update(func(f *Frame) {
		f.Detail = &r
		f.DetailMsg = ""
		f.DetailErr = false
	})
}

// RenderDetailError is ignored when a different record has been shown since.
func (s *RenderSink) RenderDetailError(name string) {
	s.update(func(f *Frame) {
		if f.Detail != nil && f.Detail.Name != name {
			return
		}
		f.Detail = nil
		f.DetailMsg = pokedex.DetailErrorMessage
		f.DetailErr = true
	})
}

func (s *RenderSink) RenderEmptyState() {
	s.update(func(f *Frame) {
		f.Detail = nil
		f.DetailMsg = pokedex.EmptyStateMessage
		f.DetailErr = false
		f.Active = 0
	})
}

func (s *RenderSink) MarkActive(id int) {
	s.update(func(f *Frame) { f.Active = id })
}
