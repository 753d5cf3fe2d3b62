// Package pokeapi is the HTTP client for https://pokeapi.co. It decodes
// responses into pokedex records and knows the handful of URL conventions
// (species, cries) the detail card needs.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/VoxDroid/pokedex/internal/pokedex"
)

const (
	// DefaultBaseURL is the public API root. It must end with a slash.
	DefaultBaseURL = "https://pokeapi.co/api/v2/"
	// DefaultConcurrency bounds the fan-out of the initial detail fetches.
	DefaultConcurrency = 8
	// DefaultTimeout applies to each HTTP request.
	DefaultTimeout = 15 * time.Second
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// Client talks to PokeAPI. The zero value is not usable; use New.
type Client struct {
	baseURL     string
	http        *http.Client
	concurrency int
	logger      *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u == "" {
			return
		}
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		c.baseURL = u
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithConcurrency bounds parallel detail fetches. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a client with defaults applied before opts.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		http:        &http.Client{Timeout: DefaultTimeout},
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the API root in use.
func (c *Client) BaseURL() string { return c.baseURL }

type listPage struct {
	Count   int                     `json:"count"`
	Next    string                  `json:"next"`
	Results []pokedex.NamedResource `json:"results"`
}

// FetchInitialCollection lists the first count Pokémon and fetches every
// detail document in parallel. Results keep the list order. Any single
// failure fails the whole load.
func (c *Client) FetchInitialCollection(ctx context.Context, count int) ([]pokedex.Record, error) {
	if count <= 0 {
		return nil, fmt.Errorf("fetch collection: count must be positive, got %d", count)
	}
	var page listPage
	if err := c.getJSON(ctx, fmt.Sprintf("%spokemon?limit=%d", c.baseURL, count), &page); err != nil {
		return nil, fmt.Errorf("fetch collection: %w", err)
	}

	out := make([]pokedex.Record, len(page.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, res := range page.Results {
		i, res := i, res
		g.Go(func() error {
			var r pokedex.Record
			if err := c.getJSON(gctx, res.URL, &r); err != nil {
				return fmt.Errorf("fetch %s: %w", res.Name, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch collection: %w", err)
	}
	c.logger.Debug("fetched collection", zap.Int("requested", count), zap.Int("received", len(out)))
	return out, nil
}

// FetchByIdentifier resolves a name or numeric id. A 404 is reported as
// pokedex.ErrLookupNotFound.
func (c *Client) FetchByIdentifier(ctx context.Context, nameOrID string) (pokedex.Record, error) {
	ident := strings.ToLower(strings.TrimSpace(nameOrID))
	if ident == "" {
		return pokedex.Record{}, fmt.Errorf("pokemon %q: %w", nameOrID, pokedex.ErrLookupNotFound)
	}
	var r pokedex.Record
	err := c.getJSON(ctx, c.baseURL+"pokemon/"+url.PathEscape(ident), &r)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return pokedex.Record{}, fmt.Errorf("pokemon %q: %w", nameOrID, pokedex.ErrLookupNotFound)
	}
	if err != nil {
		return pokedex.Record{}, fmt.Errorf("pokemon %q: %w", nameOrID, err)
	}
	return r, nil
}

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	c.logger.Debug("GET", zap.String("url", u), zap.Int("status", resp.StatusCode), zap.Duration("took", time.Since(start)))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: u, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}
