package pokedex

// User-facing strings shared by every renderer.
const (
	LoadingMessage     = "Loading Pokémon..."
	SearchingMessage   = "Searching for Pokémon..."
	InitFailureMessage = "Failed to load Pokémon. Please try again later."
	NoResultsMessage   = "No Pokémon found. Try a different search."
	EmptyStateMessage  = "Select a Pokémon to view details"
	DetailErrorMessage = "Failed to load details. Please try again."
)

// NotFoundMessage is the inline error shown when a remote lookup fails. The
// term is embedded verbatim.
func NotFoundMessage(term string) string {
	return `Pokémon "` + term + `" not found. Please try a different search.`
}
