package pokedex

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/VoxDroid/pokedex/internal/nameutil"
)

// State is a step of the search session state machine.
type State int

// Search states. Idle is only observed before the first submit.
const (
	Idle State = iota
	LocalMatch
	Searching
	Found
	NotFound
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case LocalMatch:
		return "local-match"
	case Searching:
		return "searching"
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome describes how a submitted query ended.
type Outcome struct {
	State   State
	Term    string
	Records []Record
	// Err is the lookup failure behind a NotFound outcome.
	Err error
}

// Searcher drives the two-tier lookup: local filter first, then a single
// remote lookup when nothing local matches.
type Searcher struct {
	store    *Store
	lookup   Lookup
	render   Renderer
	selector *Selector
	logger   *zap.Logger

	busy atomic.Bool

	mu    sync.Mutex
	state State
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(l *zap.Logger) SearcherOption {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSelector shares a selector with other callers, typically the list's
// own click handler.
func WithSelector(sel *Selector) SearcherOption {
	return func(s *Searcher) {
		if sel != nil {
			s.selector = sel
		}
	}
}

// NewSearcher builds a searcher over store.
func NewSearcher(store *Store, lookup Lookup, r Renderer, opts ...SearcherOption) *Searcher {
	s := &Searcher{store: store, lookup: lookup, render: r, logger: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	if s.selector == nil {
		s.selector = NewSelector(store, r)
	}
	return s
}

// State returns the state the last search ended in.
func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Searcher) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Submit runs one search session for query. Lookup failures end in NotFound
// and are reported through Outcome.Err, not the returned error; the only
// error is ErrBusy when a previous submit has not finished.
func (s *Searcher) Submit(ctx context.Context, query string) (Outcome, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return Outcome{State: Searching}, ErrBusy
	}
	defer s.busy.Store(false)

	term := nameutil.SanitizeQuery(query)
	if term == "" {
		all := s.store.All()
		s.show(all)
		s.setState(LocalMatch)
		return Outcome{State: LocalMatch, Records: all}, nil
	}

	if matches := Filter(s.store.All(), term); len(matches) > 0 {
		s.show(matches)
		s.setState(LocalMatch)
		return Outcome{State: LocalMatch, Term: term, Records: matches}, nil
	}

	s.setState(Searching)
	s.render.RenderSearching(term)
	rec, err := s.fetch(ctx, term)
	if err == nil && rec.ID <= 0 {
		err = fmt.Errorf("lookup %q returned no record: %w", term, ErrLookupNotFound)
	}
	if err != nil {
		if errors.Is(err, ErrLookupNotFound) {
			s.logger.Debug("lookup missed", zap.String("term", term))
		} else {
			s.logger.Warn("lookup failed", zap.String("term", term), zap.Error(err))
		}
		s.render.RenderSearchError(term)
		s.store.ClearSelection()
		s.render.RenderEmptyState()
		s.setState(NotFound)
		return Outcome{State: NotFound, Term: term, Err: err}, nil
	}

	if s.store.AddIfAbsent(rec) {
		s.logger.Debug("added lookup result", zap.Int("id", rec.ID), zap.String("name", rec.Name))
	}
	found := []Record{rec}
	s.render.RenderList(found)
	s.selector.Choose(rec.ID)
	s.setState(Found)
	return Outcome{State: Found, Term: term, Records: found}, nil
}

func (s *Searcher) fetch(ctx context.Context, term string) (Record, error) {
	if s.lookup == nil {
		return Record{}, fmt.Errorf("lookup %q: no lookup configured: %w", term, ErrLookupNotFound)
	}
	if err := nameutil.ValidateIdentifier(term); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrLookupNotFound, err)
	}
	return s.lookup.FetchByIdentifier(ctx, term)
}

// ClearInput shows the whole roster again. It is the response to the input
// being emptied and does not touch the search state.
func (s *Searcher) ClearInput() []Record {
	all := s.store.All()
	s.show(all)
	return all
}

func (s *Searcher) show(records []Record) {
	s.render.RenderList(records)
	Reconcile(s.store, s.render, records)
}
