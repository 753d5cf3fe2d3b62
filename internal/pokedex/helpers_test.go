package pokedex

import (
	"context"
	"fmt"
	"sync"
)

func rec(id int, name string, types ...string) Record {
	r := Record{ID: id, Name: name}
	for i, t := range types {
		r.Types = append(r.Types, TypeSlot{Slot: i + 1, Type: NamedResource{Name: t}})
	}
	return r
}

func ids(records []Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

// recordingRenderer captures every call in order.
type recordingRenderer struct {
	mu       sync.Mutex
	calls    []string
	lists    [][]Record
	details  []Record
	active   []int
	errTerms []string
	empty    int
}

func (r *recordingRenderer) add(c string) {
	r.calls = append(r.calls, c)
}

func (r *recordingRenderer) RenderList(records []Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(fmt.Sprintf("list%v", ids(records)))
	r.lists = append(r.lists, records)
}

func (r *recordingRenderer) RenderSearching(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add("searching:" + term)
}

func (r *recordingRenderer) RenderSearchError(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add("error:" + NotFoundMessage(term))
	r.errTerms = append(r.errTerms, term)
}

func (r *recordingRenderer) RenderDetail(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(fmt.Sprintf("detail:%d", rec.ID))
	r.details = append(r.details, rec)
}

func (r *recordingRenderer) RenderDetailError(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add("detail-error:" + name)
}

func (r *recordingRenderer) RenderEmptyState() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add("empty")
	r.empty++
}

func (r *recordingRenderer) MarkActive(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(fmt.Sprintf("active:%d", id))
	r.active = append(r.active, id)
}

func (r *recordingRenderer) lastList() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lists) == 0 {
		return nil
	}
	return r.lists[len(r.lists)-1]
}

// fakeLookup serves records by name or id and counts calls.
type fakeLookup struct {
	mu      sync.Mutex
	byTerm  map[string]Record
	err     error
	calls   []string
	block   chan struct{}
	started chan struct{}
}

func (f *fakeLookup) FetchByIdentifier(ctx context.Context, nameOrID string) (Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, nameOrID)
	block, started := f.block, f.started
	f.mu.Unlock()
	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return Record{}, ctx.Err()
		}
	}
	if f.err != nil {
		return Record{}, f.err
	}
	if r, ok := f.byTerm[nameOrID]; ok {
		return r, nil
	}
	return Record{}, fmt.Errorf("pokemon %q: %w", nameOrID, ErrLookupNotFound)
}

func (f *fakeLookup) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
