// Package server serves the component value, the merged options record and the
// resolved view over HTTP, and relays renderer pointer events over WebSocket.
package server

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kbreese-x/cosmograph/am"
	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/graph"
	"github.com/kbreese-x/cosmograph/logger"
)

// Server holds the current component value and options record and fans
// updates out to connected browser clients.
type Server struct {
	cfg      *am.Config
	graph    *graph.Graph
	graphCfg cosmo.Config
	preset   string

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	verbosity atomic.Int32
	logger    *zap.SugaredLogger
	maxBody   int64 // PUT /api/graph body limit

	configWatcher *am.ConfigWatcher
	httpServer    *http.Server

	// Lifecycle management
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
	hubOnce        sync.Once
	stopOnce       sync.Once
	broadcastDrops atomic.Int64
	state          atomic.Int32
}

// New builds a server from cfg. The configured preset and props are merged
// once here; the graph file, when set, is loaded and validated.
func New(cfg *am.Config, verbosity int) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server requires a configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:        cfg,
		graph:      graph.Empty(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.ComponentLogger("server"),
		maxBody:    maxGraphBody,
		ctx:        ctx,
		cancel:     cancel,
	}
	s.verbosity.Store(int32(verbosity))

	graphCfg, err := cfg.BuildGraphConfig(s.handlers())
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "failed to build graph config")
	}
	s.graphCfg = graphCfg
	s.preset = cfg.GetPreset()

	if cfg.Graph.File != "" {
		g, err := loadGraph(ctx, cfg.Graph.File)
		if err != nil {
			cancel()
			return nil, err
		}
		s.graph = g
	}

	s.logger.Infow("Server configured",
		logger.FieldPreset, s.preset,
		logger.FieldFile, cfg.Graph.File,
		logger.FieldNodes, len(s.graph.Nodes),
		logger.FieldLinks, len(s.graph.Links),
	)
	if logger.ShouldOutput(verbosity, logger.OutputConfig) {
		s.logger.Debugw("Merged options", "options", s.graphCfg.Options)
	}

	return s, nil
}

// loadGraph reads a graph file or URL and validates it
func loadGraph(ctx context.Context, src string) (*graph.Graph, error) {
	g, err := graph.LoadSource(ctx, src)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrapf(err, "graph %s", src)
	}
	return g, nil
}

// handlers are the explorer event hooks. Each broadcasts to every client.
func (s *Server) handlers() cosmo.Handlers {
	return cosmo.Handlers{
		OnNodeClick: func(n graph.Node) {
			s.broadcastMessage(NodeMessage{Type: MsgNodeSelected, Node: &n})
		},
		OnNodeHover: func(n *graph.Node) {
			s.broadcastMessage(NodeMessage{Type: MsgNodeHovered, Node: n})
		},
	}
}

// snapshot returns the current graph and options record under one lock.
func (s *Server) snapshot() (*graph.Graph, cosmo.Config, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph, s.graphCfg, s.preset
}

// eventLimits returns the per-client pointer event budget. A zero rate admits
// only the initial burst.
func (s *Server) eventLimits() (rate.Limit, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rate.Limit(s.cfg.Server.EventRatePerSecond), s.cfg.Server.EventBurst
}

// SetGraph replaces the component value and broadcasts a change message.
// The value is validated first; an invalid graph leaves the current one in place.
func (s *Server) SetGraph(g *graph.Graph) error {
	if g == nil {
		g = graph.Empty()
	}
	if err := g.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.graph = g
	graphCfg := s.graphCfg
	s.mu.Unlock()

	s.logger.Infow("Graph replaced",
		logger.FieldNodes, len(g.Nodes),
		logger.FieldLinks, len(g.Links),
	)

	s.broadcastMessage(ChangeMessage{
		Type:  MsgChange,
		Graph: g,
		Stats: g.Stats(),
		View:  cosmo.Render(graphCfg, g),
	})
	return nil
}

// ClientCount returns the number of registered clients
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// handleClientRegister handles a new client connection
func (s *Server) handleClientRegister(client *Client) {
	s.mu.Lock()
	if len(s.clients) >= MaxClients {
		s.mu.Unlock()
		s.logger.Warnw("Max clients reached, rejecting connection",
			logger.FieldClientID, client.id,
			"max_clients", MaxClients,
		)
		client.close()
		return
	}
	s.clients[client] = true
	total := len(s.clients)
	s.mu.Unlock()

	if logger.ShouldOutput(int(s.verbosity.Load()), logger.OutputClients) {
		s.logger.Infow("Client connected",
			logger.FieldClientID, client.id,
			"total_clients", total,
		)
	}
}

// handleClientUnregister handles a client disconnection
func (s *Server) handleClientUnregister(client *Client) {
	s.mu.Lock()
	if _, ok := s.clients[client]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.clients, client)
	total := len(s.clients)
	s.mu.Unlock()

	client.close()

	if logger.ShouldOutput(int(s.verbosity.Load()), logger.OutputClients) {
		s.logger.Infow("Client disconnected",
			logger.FieldClientID, client.id,
			"total_clients", total,
		)
	}
}

// broadcastMessage queues msg for every connected client.
// Returns the number of clients that accepted the message (queue not full).
func (s *Server) broadcastMessage(msg interface{}) int {
	s.mu.RLock()
	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	sent := 0
	for _, client := range clients {
		if client.queue(msg) {
			sent++
			continue
		}
		s.broadcastDrops.Add(1)
		s.logger.Warnw("Client send queue full, dropping message",
			logger.FieldClientID, client.id,
			"total_drops", s.broadcastDrops.Load(),
		)
	}
	return sent
}

// Run starts the server hub event loop
func (s *Server) Run() {
	for {
		select {
		case <-s.ctx.Done():
			s.logger.Debugw("Server hub stopping due to context cancellation")
			return
		case client := <-s.register:
			s.handleClientRegister(client)
		case client := <-s.unregister:
			s.handleClientUnregister(client)
		}
	}
}

// startHub runs the hub once per server
func (s *Server) startHub() {
	s.hubOnce.Do(func() {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.Run()
		}()
	})
}
