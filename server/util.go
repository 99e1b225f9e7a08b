package server

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/kbreese-x/cosmograph/am"
	"github.com/kbreese-x/cosmograph/errors"
)

// upgrader creates a WebSocket upgrader with origin checking from config
func (s *Server) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
}

// checkOrigin validates the request origin against server.allowed_origins.
// Prefix matching allows any port number.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Allow requests with no origin header (e.g., direct WebSocket clients, testing)
	if origin == "" {
		return true
	}

	s.mu.RLock()
	allowed := s.cfg.GetServerAllowedOrigins()
	s.mu.RUnlock()

	for _, prefix := range allowed {
		if prefix == "*" || strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}

// isPortAvailable checks if a port is available for binding
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	_ = listener.Close() // Best-effort check, the real bind may still fail
	return true
}

// findAvailablePort tries the requested port, then the default port, then the
// ten ports after the requested one.
func findAvailablePort(requestedPort int) (int, error) {
	if isPortAvailable(requestedPort) {
		return requestedPort, nil
	}
	if requestedPort != am.DefaultServerPort && isPortAvailable(am.DefaultServerPort) {
		return am.DefaultServerPort, nil
	}
	for port := requestedPort + 1; port <= requestedPort+10 && port <= 65535; port++ {
		if isPortAvailable(port) {
			return port, nil
		}
	}
	return 0, errors.Newf("no available ports found (tried %d, %d and %d-%d)",
		requestedPort, am.DefaultServerPort, requestedPort+1, requestedPort+10)
}
