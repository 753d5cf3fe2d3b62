// Package version provides version information.
package version

// Version is set at build time via -ldflags "-X github.com/VoxDroid/pokedex/internal/version.Version=<value>"
var Version = "v0.1.0-dev"
