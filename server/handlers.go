package server

// HTTP endpoints:
// - WebSocket connections (HandleWebSocket)
// - Health checks (HandleHealth)
// - Component value (HandleGraph, GET/PUT)
// - Resolved view (HandleView)
// - Options record and presets (HandleConfig, HandlePresets)

import (
	"io"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/graph"
	grapherr "github.com/kbreese-x/cosmograph/graph/error"
	"github.com/kbreese-x/cosmograph/logger"
	"github.com/kbreese-x/cosmograph/version"
)

// HandleWebSocket upgrades the connection, greets the client with the current
// view and starts its pumps.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.getState() != ServerStateRunning {
		writeError(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}

	upgrader := s.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		graphErr := grapherr.New(grapherr.CategoryWebSocket, grapherr.SubcategoryWSUpgrade, err).
			Describe("Failed to upgrade WebSocket connection")

		s.logger.Errorw("WebSocket upgrade failed",
			graphErr.ToLogFields()...,
		)
		return
	}

	client := newClient(s, conn, uuid.NewString())
	g, cfg, preset := s.snapshot()
	info := version.Get()

	// Queue the greeting before the pumps start so it is the first thing written
	client.queue(VersionMessage{
		Type:    MsgVersion,
		Version: info.Version,
		Commit:  info.Short(),
		Preset:  preset,
	})
	client.queue(ViewMessage{Type: MsgView, Preset: preset, View: cosmo.Render(cfg, g)})

	select {
	case s.register <- client:
	case <-s.ctx.Done():
		conn.Close()
		return
	}

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		client.readPump()
	}()
	go func() {
		defer s.wg.Done()
		client.writePump()
	}()
}

// HandleHealth serves health check endpoint with version info
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	info := version.Get()
	g, _, preset := s.snapshot()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"state":           s.getState().String(),
		"version":         info.Version,
		"commit":          info.CommitHash,
		"build_time":      info.BuildTime,
		"preset":          preset,
		"clients":         s.ClientCount(),
		"nodes":           len(g.Nodes),
		"links":           len(g.Links),
		"broadcast_drops": s.broadcastDrops.Load(),
		"verbosity":       int(s.verbosity.Load()),
	})
}

// HandleGraph serves (GET) or replaces (PUT) the component value.
// The body of a PUT is JSON, or YAML when Content-Type says so.
func (s *Server) HandleGraph(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodGet, http.MethodPut) {
		return
	}

	if r.Method == http.MethodGet {
		g, _, _ := s.snapshot()
		writeJSON(w, http.StatusOK, g)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "graph body too large")
			return
		}
		logger.LoggerFromContext(r.Context(), s.logger).Debugw("Failed to read graph body", logger.FieldError, err)
		writeError(w, http.StatusBadRequest, "failed to read graph body")
		return
	}

	format := graph.FormatJSON
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		format = graph.FormatYAML
	}

	g, err := graph.Decode(data, format)
	if err == nil {
		err = s.SetGraph(g)
	}
	if err != nil {
		if graphErr, ok := grapherr.As(err); ok {
			logger.LoggerFromContext(r.Context(), s.logger).Warnw("Rejected graph update", graphErr.ToLogFields()...)
		}
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, g.Stats())
}

// HandleView serves the current graph with every accessor applied
func (s *Server) HandleView(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodGet) {
		return
	}
	g, cfg, preset := s.snapshot()
	writeJSON(w, http.StatusOK, ViewMessage{Type: MsgView, Preset: preset, View: cosmo.Render(cfg, g)})
}

// HandleConfig serves the merged options record.
// Query parameters:
//   - ?diff=true - only the options that differ from the preset baseline
func (s *Server) HandleConfig(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodGet) {
		return
	}
	_, cfg, preset := s.snapshot()

	if r.URL.Query().Get("diff") == "true" {
		p, err := cosmo.Lookup(preset)
		if err != nil {
			writeErr(w, err)
			return
		}
		diffs := cosmo.DiffOptions(p.Baseline().Options, cfg.Options)
		if diffs == nil {
			diffs = []cosmo.OptionDiff{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			logger.FieldPreset: preset,
			"changed":          diffs,
		})
		return
	}

	writeJSON(w, http.StatusOK, ConfigMessage{Type: MsgConfig, Preset: preset, Options: cfg.Options})
}

type presetInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Active      bool          `json:"active"`
	Settings    []string      `json:"settings"`
	Baseline    cosmo.Options `json:"baseline"`
}

// HandlePresets lists the registered presets with their baselines
func (s *Server) HandlePresets(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodGet) {
		return
	}
	_, _, active := s.snapshot()

	var out []presetInfo
	for _, p := range cosmo.Presets() {
		out = append(out, presetInfo{
			Name:        p.Name,
			Description: p.Description,
			Active:      p.Name == active,
			Settings:    p.SettingNames(),
			Baseline:    p.Baseline().Options,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
