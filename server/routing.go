package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kbreese-x/cosmograph/logger"
)

// Handler returns the server's routes wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWebSocket)
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/api/graph", s.HandleGraph)     // Component value (GET/PUT)
	mux.HandleFunc("/api/view", s.HandleView)       // Accessors applied (GET)
	mux.HandleFunc("/api/config", s.HandleConfig)   // Merged options record (GET)
	mux.HandleFunc("/api/presets", s.HandlePresets) // Preset names and baselines (GET)
	return s.corsMiddleware(s.logRequests(mux))
}

// corsMiddleware adds CORS headers for origins allowed by server.allowed_origins
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.checkOrigin(r) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const requestIDHeader = "X-Request-ID"

// logRequests tags each request with an ID, echoed in the X-Request-ID
// response header and carried on the request context for handler logs.
// The request itself is logged at -vv.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set(requestIDHeader, id)
		ctx := logger.WithComponent(logger.WithRequestID(r.Context(), id), "http")
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
		if logger.ShouldOutput(int(s.verbosity.Load()), logger.OutputEvents) {
			logger.LoggerFromContext(ctx, s.logger).Debugw("HTTP request",
				logger.FieldMethod, r.Method,
				logger.FieldPath, r.URL.Path,
				logger.FieldDurationMS, time.Since(start).Milliseconds(),
			)
		}
	})
}
