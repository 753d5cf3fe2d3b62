package pokedex

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DefaultCount is the number of records loaded at startup.
const DefaultCount = 50

// SessionConfig wires a Session's collaborators. Cache and Logger are
// optional.
type SessionConfig struct {
	Loader   Loader
	Lookup   Lookup
	Renderer Renderer
	Cache    CollectionCache
	Count    int
	Logger   *zap.Logger
}

// Session owns one store plus the searcher and selector that operate on it.
type Session struct {
	Store    *Store
	Searcher *Searcher
	Selector *Selector

	loader Loader
	cache  CollectionCache
	render Renderer
	count  int
	logger *zap.Logger
}

// NewSession builds a session from cfg.
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	r := cfg.Renderer
	if r == nil {
		r = NopRenderer{}
	}
	count := cfg.Count
	if count <= 0 {
		count = DefaultCount
	}
	store := NewStore()
	sel := NewSelector(store, r)
	return &Session{
		Store:    store,
		Selector: sel,
		Searcher: NewSearcher(store, cfg.Lookup, r, WithSelector(sel), WithLogger(logger)),
		loader:   cfg.Loader,
		cache:    cfg.Cache,
		render:   r,
		count:    count,
		logger:   logger,
	}
}

// Start fills the store, preferring a valid cached collection over the
// network, and renders the full list. Cache problems are logged and
// otherwise ignored; a failed network load returns *InitializationError.
func (s *Session) Start(ctx context.Context) error {
	records, ok := s.loadCached()
	if !ok {
		if s.loader == nil {
			return &InitializationError{Err: fmt.Errorf("no loader configured")}
		}
		fetched, err := s.loader.FetchInitialCollection(ctx, s.count)
		if err != nil {
			s.logger.Error("initial load failed", zap.Int("count", s.count), zap.Error(err))
			return &InitializationError{Err: err}
		}
		records = fetched
		s.saveCached(records)
	}
	s.Store.Initialize(records)
	s.render.RenderList(s.Store.All())
	return nil
}

func (s *Session) loadCached() ([]Record, bool) {
	if s.cache == nil {
		return nil, false
	}
	records, ok, err := s.cache.Load()
	if err != nil {
		s.logger.Warn("read collection cache", zap.Error(err))
		return nil, false
	}
	if !ok || len(records) == 0 {
		return nil, false
	}
	s.logger.Info("loaded collection from cache", zap.Int("records", len(records)))
	return records, true
}

func (s *Session) saveCached(records []Record) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Save(records); err != nil {
		s.logger.Warn("write collection cache", zap.Error(err))
	}
}
