// Package config resolves where pokedex keeps its data and loads the optional
// YAML configuration file.
package config

import (
	"os"
	"path/filepath"
)

// Environment overrides for the data locations.
const (
	EnvHome   = "POKEDEX_HOME"
	EnvDB     = "POKEDEX_DB"
	EnvConfig = "POKEDEX_CONFIG"
)

// DataDir returns the directory used to store pokedex data. POKEDEX_HOME
// wins over the default ~/.pokedex.
func DataDir() (string, error) {
	if d := os.Getenv(EnvHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pokedex"), nil
}

// EnsureDataDir creates the data directory if needed and returns it.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return d, nil
}

// DBPath returns the full path to the SQLite database file.
func DBPath() (string, error) {
	if p := os.Getenv(EnvDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "pokedex.db"), nil
}

// ConfigPath returns the YAML config location.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// LogPath returns the default log file, used while the TUI owns the terminal.
func LogPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "pokedex.log"), nil
}
