package pokedex

import (
	"errors"
	"fmt"
)

var (
	// ErrLookupNotFound is reported by Lookup implementations when the API has
	// no record for the requested name or id.
	ErrLookupNotFound = errors.New("pokemon not found")
	// ErrStorage marks failures of the persisted collection cache or theme
	// preference. These are logged and never surfaced to the user.
	ErrStorage = errors.New("storage failure")
	// ErrBusy is returned by Searcher.Submit while another search is waiting
	// on its lookup.
	ErrBusy = errors.New("search already in progress")
)

// InitializationError wraps a failed initial bulk load. It is fatal to the
// session: the host shows InitFailureMessage and stops.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize collection: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }
