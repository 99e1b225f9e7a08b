// Package am loads cosmograph's configuration ("am" = what the graph is).
//
// Sources, lowest to highest precedence: built-in defaults, ~/.cosmograph/am.toml,
// the nearest am.toml (or cosmograph.toml) found walking up from the working
// directory, then COSMOGRAPH_* environment variables.
package am

import (
	"fmt"

	"github.com/kbreese-x/cosmograph/cosmo"
)

// Config represents the cosmograph configuration
type Config struct {
	Graph  GraphConfig  `mapstructure:"graph"`
	Server ServerConfig `mapstructure:"server"`
}

// GraphConfig selects the preset and the caller settings merged over it
type GraphConfig struct {
	Preset string `mapstructure:"preset"` // standard | explorer
	File   string `mapstructure:"file"`   // Initial component value: JSON/YAML path or http(s) URL; empty = no graph

	// Props are caller settings for the preset. No defaults: an absent key
	// means the preset baseline applies.
	Props map[string]interface{} `mapstructure:"props"`
}

// ServerConfig configures the web server
type ServerConfig struct {
	Port           *int     `mapstructure:"port"` // nil = DefaultServerPort, 0 is invalid (omit for default)
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	LogTheme       string   `mapstructure:"log_theme"` // Color theme: gruvbox, everforest

	// Inbound pointer events per websocket client (hover fires on every mouse move)
	EventRatePerSecond float64 `mapstructure:"event_rate_per_second"`
	EventBurst         int     `mapstructure:"event_burst"`
}

// Server port constants
const (
	DefaultServerPort = 7860
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// BuildGraphConfig merges the configured props over the configured preset.
func (c *Config) BuildGraphConfig(h cosmo.Handlers) (cosmo.Config, error) {
	preset, err := cosmo.Lookup(c.Graph.Preset)
	if err != nil {
		return cosmo.Config{}, err
	}
	return preset.Build(c.Graph.Props, h)
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Graph: {Preset: %s, File: %s, Props: %d}, Server: {Port: %d}}",
		c.Graph.Preset, c.Graph.File, len(c.Graph.Props), c.GetServerPort())
}
