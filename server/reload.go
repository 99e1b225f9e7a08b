package server

import (
	"github.com/kbreese-x/cosmograph/am"
	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/graph"
	"github.com/kbreese-x/cosmograph/logger"
)

// WatchConfig reloads the configuration whenever path changes on disk and
// pushes the rebuilt options record to every client.
func (s *Server) WatchConfig(path string) error {
	watcher, err := am.NewConfigWatcher(path)
	if err != nil {
		return err
	}
	watcher.OnReload(s.ApplyConfig)
	watcher.Start()

	s.mu.Lock()
	s.configWatcher = watcher
	s.mu.Unlock()

	if logger.ShouldOutput(int(s.verbosity.Load()), logger.OutputReloads) {
		s.logger.Infow("Watching config for changes", logger.FieldFile, watcher.Path())
	}
	return nil
}

// ApplyConfig swaps in a new configuration. An invalid configuration is
// rejected and the running one stays in place. When graph.file changed the
// component value is reloaded from it too.
func (s *Server) ApplyConfig(cfg *am.Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "rejected config reload")
	}
	graphCfg, err := cfg.BuildGraphConfig(s.handlers())
	if err != nil {
		return errors.Wrap(err, "rejected config reload")
	}

	s.mu.RLock()
	fileChanged := cfg.Graph.File != s.cfg.Graph.File
	s.mu.RUnlock()

	var g *graph.Graph
	if fileChanged && cfg.Graph.File != "" {
		if g, err = loadGraph(s.ctx, cfg.Graph.File); err != nil {
			return errors.Wrap(err, "rejected config reload")
		}
	}

	s.mu.Lock()
	s.cfg = cfg
	s.graphCfg = graphCfg
	s.preset = cfg.GetPreset()
	preset := s.preset
	s.mu.Unlock()

	logger.SetTheme(cfg.GetServerLogTheme())

	if logger.ShouldOutput(int(s.verbosity.Load()), logger.OutputReloads) {
		s.logger.Infow("Config rebuilt",
			logger.FieldPreset, preset,
			"props", len(cfg.Graph.Props),
		)
	}

	s.broadcastMessage(ConfigMessage{Type: MsgConfig, Preset: preset, Options: graphCfg.Options})

	if fileChanged {
		if g == nil {
			g = graph.Empty()
		}
		return s.SetGraph(g)
	}
	return nil
}
