package runtime

import (
	"net/http"
	"strings"

	configpkg "github.com/Mrunmoy/regbus/internal/runtime/config"
	jsoncodec "github.com/Mrunmoy/regbus/internal/runtime/jsoncodec"
)

// StartDebugServer registers the debug API endpoints when enabled. The
// servers themselves are started by Start.
func (s *Service) StartDebugServer() {
	if !s.Conf.DebugAPIEnabled {
		return
	}

	port := s.Conf.DebugAPIPort
	if port == 0 {
		port = configpkg.DefaultDebugAPIPort
	}

	s.RegisterHTTPHandler(port, "/api/busses", http.HandlerFunc(s.handleGetBusses))
}

func (s *Service) handleGetBusses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Set CORS headers based on configuration
	if s.Conf != nil && len(s.Conf.DebugAPICORSAllowedOrigins) > 0 {
		origin := r.Header.Get("Origin")
		allowedOrigin := s.getAllowedCORSOrigin(origin)
		if allowedOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
	}

	// Handle preflight requests
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := jsoncodec.Encode(w, s.SnapshotStatus()); err != nil {
		s.Logger.Error("Failed to encode bus status", err, nil)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// getAllowedCORSOrigin checks if the request origin is allowed and returns
// the appropriate Access-Control-Allow-Origin value.
func (s *Service) getAllowedCORSOrigin(requestOrigin string) string {
	if s.Conf == nil {
		return ""
	}
	for _, allowed := range s.Conf.DebugAPICORSAllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if strings.EqualFold(allowed, requestOrigin) {
			return requestOrigin
		}
	}
	return ""
}
