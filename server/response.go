package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kbreese-x/cosmograph/errors"
	grapherr "github.com/kbreese-x/cosmograph/graph/error"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeErr writes err with a status derived from its type. Structured graph
// errors carry their category and user message; others get hints appended.
func writeErr(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if graphErr, ok := grapherr.As(err); ok {
		writeJSON(w, status, graphErr.ToMeta())
		return
	}
	body := map[string]string{"error": err.Error()}
	if hint := errors.FlattenHints(err); hint != "" {
		body["hint"] = hint
	}
	writeJSON(w, status, body)
}

// statusForError maps sentinel errors and graph error categories to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.IsInvalidRequestError(err),
		errors.Is(err, errors.ErrInvalidConfig),
		errors.Is(err, errors.ErrUnknownPreset):
		return http.StatusBadRequest
	}
	if graphErr, ok := grapherr.As(err); ok {
		switch graphErr.Category {
		case grapherr.CategoryGraph, grapherr.CategoryLoad:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// requireMethods checks if the request method matches one of the expected methods
func requireMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, method := range methods {
		if r.Method == method {
			return true
		}
	}
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}
