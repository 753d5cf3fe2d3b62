package pokedex

import "context"

// Renderer paints engine output. Calls are side-effect only; implementations
// must tolerate being invoked from a goroutine other than the UI loop.
type Renderer interface {
	// RenderList paints the visible list.
	RenderList(records []Record)
	// RenderSearching shows the in-flight lookup indicator.
	RenderSearching(term string)
	// RenderSearchError replaces the list with NotFoundMessage(term).
	RenderSearchError(term string)
	// RenderDetail shows a record in the detail view.
	RenderDetail(record Record)
	// RenderDetailError shows DetailErrorMessage for the named record.
	RenderDetailError(name string)
	// RenderEmptyState resets the detail view to its placeholder.
	RenderEmptyState()
	// MarkActive highlights the list entry with the given id.
	MarkActive(id int)
}

// Lookup resolves a single name or numeric id to a record.
type Lookup interface {
	FetchByIdentifier(ctx context.Context, nameOrID string) (Record, error)
}

// Loader performs the initial bulk fetch.
type Loader interface {
	FetchInitialCollection(ctx context.Context, count int) ([]Record, error)
}

// CollectionCache is the optional whole-collection blob persisted between
// sessions. Load reports ok=false when nothing valid is stored.
type CollectionCache interface {
	Load() (records []Record, ok bool, err error)
	Save(records []Record) error
}

// NopRenderer discards everything. Embed it to implement a subset.
type NopRenderer struct{}

func (NopRenderer) RenderList([]Record)      {}
func (NopRenderer) RenderSearching(string)   {}
func (NopRenderer) RenderSearchError(string) {}
func (NopRenderer) RenderDetail(Record)      {}
func (NopRenderer) RenderDetailError(string) {}
func (NopRenderer) RenderEmptyState()        {}
func (NopRenderer) MarkActive(int)           {}
