package pokedex

// Reconcile runs after every list render. A selection that is still visible
// is re-highlighted; one that dropped out of view is cleared together with
// the detail view.
func Reconcile(store *Store, r Renderer, rendered []Record) {
	id, ok := store.Selected()
	if !ok {
		return
	}
	for _, rec := range rendered {
		if rec.ID == id {
			r.MarkActive(id)
			return
		}
	}
	store.ClearSelection()
	r.RenderEmptyState()
}

// Selector is the single path by which a record becomes selected, whether a
// user picked it from the list or a search found it.
type Selector struct {
	store  *Store
	render Renderer
}

// NewSelector binds a selector to a store and renderer.
func NewSelector(store *Store, r Renderer) *Selector {
	return &Selector{store: store, render: r}
}

// Choose selects id, highlights it and shows its detail. It reports false
// when the id is not in the store.
func (s *Selector) Choose(id int) bool {
	rec, ok := s.store.ByID(id)
	if !ok {
		return false
	}
	s.store.Select(id)
	s.render.MarkActive(id)
	s.render.RenderDetail(rec)
	return true
}
