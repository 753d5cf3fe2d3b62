package cmd

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"github.com/VoxDroid/pokedex/internal/cry"
	"github.com/VoxDroid/pokedex/internal/db"
	"github.com/VoxDroid/pokedex/internal/pokeapi"
	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/storage"
	"github.com/VoxDroid/pokedex/internal/theme"
)

// app bundles the collaborators every subcommand is built from.
type app struct {
	db     *sql.DB
	client *pokeapi.Client
	cache  *storage.CollectionCache
	themes *theme.Manager
	logger *zap.Logger
}

func openApp() (*app, error) {
	dbConn, err := db.InitDB()
	if err != nil {
		return nil, err
	}
	kv := storage.NewKV(dbConn)
	client := pokeapi.New(
		pokeapi.WithBaseURL(cfg.API.BaseURL),
		pokeapi.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
		pokeapi.WithConcurrency(cfg.API.Concurrency),
		pokeapi.WithLogger(logger.Named("pokeapi")),
	)
	fallback, err := theme.Parse(cfg.Theme.Default)
	if err != nil {
		fallback = theme.Dark
	}
	a := &app{
		db:     dbConn,
		client: client,
		cache:  storage.NewCollectionCache(kv, cfg.CacheTTL()),
		themes: theme.NewManager(storage.NewThemeStore(kv), fallback, logger.Named("theme")),
		logger: logger,
	}
	a.themes.Init()
	return a, nil
}

func (a *app) Close() error { return a.db.Close() }

// session wires a pokedex.Session to r. The collection cache is skipped when
// disabled in config.
func (a *app) session(r pokedex.Renderer) *pokedex.Session {
	sc := pokedex.SessionConfig{
		Loader:   a.client,
		Lookup:   a.client,
		Renderer: r,
		Count:    cfg.Collection.Count,
		Logger:   a.logger.Named("session"),
	}
	if cfg.Cache.Enabled {
		sc.Cache = a.cache
	}
	return pokedex.NewSession(sc)
}

func (a *app) player() (*cry.Player, error) {
	return cry.NewPlayer(cfg.Cry.Player, nil, a.logger.Named("cry"))
}
