package am

import (
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/kbreese-x/cosmograph/cosmo"
)

// EnvPrefix prefixes every environment override (COSMOGRAPH_SERVER_PORT, ...)
const EnvPrefix = "COSMOGRAPH"

var defaultAllowedOrigins = []string{
	"http://localhost",
	"https://localhost",
	"http://127.0.0.1",
	"https://127.0.0.1",
}

// SetDefaults configures default values for all configuration options.
// graph.props deliberately has none: presets own those defaults.
func SetDefaults(v *viper.Viper) {
	// Graph defaults
	v.SetDefault("graph.preset", cosmo.PresetStandard)
	v.SetDefault("graph.file", "")

	// Server configuration defaults
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", defaultAllowedOrigins)
	v.SetDefault("server.log_theme", "everforest")
	v.SetDefault("server.event_rate_per_second", 30.0)
	v.SetDefault("server.event_burst", 10)
}

// BindPropsEnvVars binds every preset setting to COSMOGRAPH_GRAPH_PROPS_<NAME>.
// AutomaticEnv only sees keys viper already knows, and props have no defaults.
func BindPropsEnvVars(v *viper.Viper) {
	for _, name := range allSettingNames() {
		key := "graph.props." + name
		_ = v.BindEnv(key, EnvName(key))
	}
}

// EnvName returns the environment variable that overrides key
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func allSettingNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, p := range cosmo.Presets() {
		for _, n := range p.SettingNames() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}

// GetServerPort returns the configured port, or DefaultServerPort when unset
func (c *Config) GetServerPort() int {
	if c.Server.Port == nil {
		return DefaultServerPort
	}
	return *c.Server.Port
}

// GetServerAllowedOrigins returns the allowed CORS origins
func (c *Config) GetServerAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) == 0 {
		return defaultAllowedOrigins
	}
	return c.Server.AllowedOrigins
}

// GetServerLogTheme returns the log theme (default: everforest)
func (c *Config) GetServerLogTheme() string {
	if c.Server.LogTheme == "" {
		return "everforest"
	}
	return c.Server.LogTheme
}

// GetPreset returns the preset name (default: standard)
func (c *Config) GetPreset() string {
	if c.Graph.Preset == "" {
		return cosmo.PresetStandard
	}
	return c.Graph.Preset
}
