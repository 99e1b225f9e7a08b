package am

import (
	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
)

// Validate checks that the configuration is valid. Graph props are decoded and
// merged over the preset so out-of-range values are reported before a server starts.
func (c *Config) Validate() error {
	// Server port: 0 is invalid (omit for default), negative is invalid
	if c.Server.Port != nil && *c.Server.Port == 0 {
		return errors.Newf("server.port cannot be 0 (omit for default port %d)", DefaultServerPort)
	}
	if c.Server.Port != nil && (*c.Server.Port < 0 || *c.Server.Port > 65535) {
		return errors.Newf("server.port must be between 1 and 65535, got %d", *c.Server.Port)
	}

	// Event throttle: 0 = drop all pointer events (valid per "zero means zero"), negative = invalid
	if c.Server.EventRatePerSecond < 0 {
		return errors.Newf("server.event_rate_per_second must be >= 0, got %v", c.Server.EventRatePerSecond)
	}
	if c.Server.EventBurst < 0 {
		return errors.Newf("server.event_burst must be >= 0, got %d", c.Server.EventBurst)
	}

	cfg, err := c.BuildGraphConfig(cosmo.Handlers{})
	if err != nil {
		return errors.Wrap(err, "graph")
	}
	if err := cosmo.ValidateSettings(cfg.Options); err != nil {
		return errors.Wrap(err, "graph.props")
	}

	return nil
}

// UnknownProps lists [graph.props] keys the selected preset ignores.
func (c *Config) UnknownProps() ([]string, error) {
	preset, err := cosmo.Lookup(c.Graph.Preset)
	if err != nil {
		return nil, err
	}
	return preset.Unknown(c.Graph.Props)
}
