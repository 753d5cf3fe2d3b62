package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var apiRoster = []string{"bulbasaur", "charmander", "squirtle"}

var apiDetails = map[string]string{
	"bulbasaur":  `{"id":1,"name":"bulbasaur","height":7,"weight":69,"types":[{"slot":1,"type":{"name":"grass"}},{"slot":2,"type":{"name":"poison"}}],"stats":[{"base_stat":45,"stat":{"name":"hp"}}],"species":{"name":"bulbasaur","url":"%s/pokemon-species/1/"}}`,
	"charmander": `{"id":4,"name":"charmander","types":[{"slot":1,"type":{"name":"fire"}}]}`,
	"squirtle":   `{"id":7,"name":"squirtle","types":[{"slot":1,"type":{"name":"water"}}]}`,
	"mew":        `{"id":151,"name":"mew","types":[{"slot":1,"type":{"name":"psychic"}}]}`,
}

// setupCLI points the CLI at a temp data dir and a fake PokeAPI, returning
// a counter of list-endpoint hits.
func setupCLI(t *testing.T) *atomic.Int32 {
	t.Helper()
	var listHits atomic.Int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.Trim(r.URL.Path, "/")
		switch {
		case path == "pokemon":
			listHits.Add(1)
			parts := make([]string, 0, len(apiRoster))
			for _, n := range apiRoster {
				parts = append(parts, fmt.Sprintf(`{"name":%q,"url":"%s/pokemon/%s/"}`, n, srv.URL, n))
			}
			_, _ = fmt.Fprintf(w, `{"count":%d,"results":[%s]}`, len(parts), strings.Join(parts, ","))
		case strings.HasPrefix(path, "pokemon-species/"):
			_, _ = w.Write([]byte(`{"flavor_text_entries":[{"flavor_text":"A strange seed was\fplanted on its back.","language":{"name":"en"}}],` +
				`"genera":[{"genus":"Seed Pokémon","language":{"name":"en"}}]}`))
		case strings.HasPrefix(path, "pokemon/"):
			name := strings.TrimPrefix(path, "pokemon/")
			if name == "1" {
				name = "bulbasaur"
			}
			body, ok := apiDetails[name]
			if !ok {
				http.NotFound(w, r)
				return
			}
			if strings.Contains(body, "%s") {
				body = fmt.Sprintf(body, srv.URL)
			}
			_, _ = w.Write([]byte(body))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("POKEDEX_HOME", t.TempDir())
	t.Setenv("POKEDEX_DB", "")
	t.Setenv("POKEDEX_CONFIG", "")
	t.Setenv("POKEDEX_API_URL", srv.URL)
	t.Setenv("POKEDEX_CRY_PLAYER", "")
	t.Setenv("POKEDEX_DEBUG", "")
	return &listHits
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListUsesCacheOnSecondRun(t *testing.T) {
	hits := setupCLI(t)

	out, _, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "#001 bulbasaur      grass/poison\n#004 charmander     fire\n#007 squirtle       water\n", out)

	_, _, err = runCLI(t, "list", "--filter", "fire")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second run should read the cache")

	out, _, err = runCLI(t, "list", "--filter", "fire")
	require.NoError(t, err)
	assert.Equal(t, "#004 charmander     fire\n", out)

	out, _, err = runCLI(t, "list", "--filter", "1")
	require.NoError(t, err)
	assert.Equal(t, "#001 bulbasaur      grass/poison\n", out, "numeric filter is exact")
}

func TestListFuzzy(t *testing.T) {
	setupCLI(t)
	out, _, err := runCLI(t, "list", "--filter", "sqrt", "--fuzzy")
	require.NoError(t, err)
	assert.Equal(t, "#007 squirtle       water\n", out)

	out, _, err = runCLI(t, "list", "--filter", "sqrt")
	require.NoError(t, err)
	assert.Equal(t, "No Pokémon found. Try a different search.\n", out)
}

func TestSearchFallsBackToAPI(t *testing.T) {
	setupCLI(t)
	out, _, err := runCLI(t, "search", "Mew")
	require.NoError(t, err)
	assert.Contains(t, out, "Searching for Pokémon...")
	assert.Contains(t, out, "#151 mew")
	assert.Contains(t, out, "#151 Mew\nType:      psychic")
	assert.Contains(t, out, "No description available.")
}

func TestSearchNotFound(t *testing.T) {
	setupCLI(t)
	out, _, err := runCLI(t, "search", "missingno")
	require.Error(t, err)
	assert.Contains(t, out, `Pokémon "missingno" not found. Please try a different search.`)
}

func TestShowCard(t *testing.T) {
	setupCLI(t)
	out, _, err := runCLI(t, "show", "1")
	require.NoError(t, err)
	for _, want := range []string{"#001 Bulbasaur", "Type:      grass, poison", "Genus:     Seed Pokémon", "Height:    0.7 m", "Weight:    6.9 kg", "A strange seed was planted on its back.", "hp  45 ###."} {
		assert.Contains(t, out, want)
	}
}

func TestCryPrintsURL(t *testing.T) {
	setupCLI(t)
	out, _, err := runCLI(t, "cry", "squirtle")
	require.NoError(t, err)
	assert.Equal(t, "https://play.pokemonshowdown.com/audio/cries/squirtle.mp3\n", out)

	_, _, err = runCLI(t, "cry", "squirtle", "--play")
	assert.Error(t, err, "no player configured")
}

func TestThemePersists(t *testing.T) {
	setupCLI(t)
	out, _, err := runCLI(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")

	out, _, err = runCLI(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "light")

	out, _, err = runCLI(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "light")

	_, _, err = runCLI(t, "theme", "neon")
	assert.Error(t, err)
}

func TestCacheStatusAndClear(t *testing.T) {
	hits := setupCLI(t)
	out, _, err := runCLI(t, "cache", "status")
	require.NoError(t, err)
	assert.Equal(t, "cache: empty\n", out)

	_, _, err = runCLI(t, "list")
	require.NoError(t, err)
	out, _, err = runCLI(t, "cache", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "cache: valid")
	assert.Contains(t, out, "ttl 24h0m0s")

	rootCmd.SetIn(strings.NewReader("n\n"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })
	out, _, err = runCLI(t, "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "aborted")

	_, _, err = runCLI(t, "cache", "clear", "--yes")
	require.NoError(t, err)
	_, _, err = runCLI(t, "list")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestVersion(t *testing.T) {
	setupCLI(t)
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pokedex "))
}
