package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/logger"
)

// getState returns the current server state
func (s *Server) getState() ServerState {
	return ServerState(s.state.Load())
}

// setState atomically updates the server state
func (s *Server) setState(newState ServerState) {
	s.state.Store(int32(newState))
	s.logger.Infow("Server state changed", "new_state", newState.String())
}

// Start serves HTTP on port (or the nearest free alternative) until ctx is
// cancelled or Stop is called. It returns nil after a graceful shutdown.
func (s *Server) Start(ctx context.Context, port int, openBrowserFunc func(url string)) error {
	s.startHub()

	actualPort, err := findAvailablePort(port)
	if err != nil {
		return errors.Wrap(err, "failed to find available port")
	}
	if actualPort != port {
		s.logger.Infow("Port in use, using alternative",
			"requested_port", port,
			"actual_port", actualPort,
		)
	}

	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", actualPort),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.ctx.Done():
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", actualPort)
	s.logger.Infow("Server ready",
		"url", url,
		logger.FieldPort, actualPort,
	)
	if openBrowserFunc != nil {
		openBrowserFunc(url)
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "http server on port %d", actualPort)
	}
	return nil
}

// Stop gracefully shuts down the server and cleans up resources.
// Safe to call more than once.
func (s *Server) Stop() error {
	var stopErr error
	s.stopOnce.Do(func() {
		stopErr = s.stop()
	})
	return stopErr
}

func (s *Server) stop() error {
	s.logger.Infow("Initiating server shutdown")
	s.setState(ServerStateDraining)

	// Close all client connections BEFORE cancelling context
	// so readPump/writePump exit cleanly
	s.mu.Lock()
	watcher := s.configWatcher
	clientsToClose := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clientsToClose = append(clientsToClose, client)
		delete(s.clients, client)
	}
	srv := s.httpServer
	s.mu.Unlock()

	if watcher != nil {
		if err := watcher.Stop(); err != nil {
			s.logger.Warnw("Failed to stop config watcher", logger.FieldError, err)
		}
	}

	if len(clientsToClose) > 0 {
		s.logger.Infow("Closing client connections", logger.FieldCount, len(clientsToClose))
		for _, client := range clientsToClose {
			client.close()
			client.conn.Close()
		}
	}

	var shutdownErr error
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		shutdownErr = srv.Shutdown(ctx)
		cancel()
	}

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infow("All goroutines stopped cleanly")
	case <-time.After(ShutdownTimeout):
		s.logger.Warnw("Goroutine shutdown timed out, forcing exit",
			"timeout", ShutdownTimeout,
		)
	}

	s.setState(ServerStateStopped)
	s.logger.Infow("Server shutdown complete",
		"broadcast_drops", s.broadcastDrops.Load(),
	)

	if shutdownErr != nil {
		return errors.Wrap(shutdownErr, "http server shutdown")
	}
	return nil
}
