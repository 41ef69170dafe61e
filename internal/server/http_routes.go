package server

import (
	"net/http"
	"strings"

	"resumeforge/internal/observability"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes(om *observability.ObservabilityManager) *http.ServeMux {
	mux := http.NewServeMux()

	// Add middleware layers with observability
	rateLimitHandler := s.createRateLimitMiddleware(om)
	requestLimitHandler := s.requestSizeLimitMiddleware()

	// Mutating and AI-backed routes share the full middleware chain
	protected := func(next http.HandlerFunc) http.HandlerFunc {
		return rateLimitHandler(s.authMiddleware(requestLimitHandler(next)))
	}

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /stats", s.statsHandler)

	// Resume collection
	mux.HandleFunc("POST /resumes", protected(s.createResumeHandler(om)))
	mux.HandleFunc("GET /resumes", protected(s.listResumesHandler))
	mux.HandleFunc("GET /resumes/{id}", protected(s.getResumeHandler))
	mux.HandleFunc("PUT /resumes/{id}", protected(s.updateResumeHandler))
	mux.HandleFunc("DELETE /resumes/{id}", protected(s.deleteResumeHandler))

	// Document sections
	mux.HandleFunc("PUT /resumes/{id}/personal", protected(s.updatePersonalHandler))
	mux.HandleFunc("PUT /resumes/{id}/summary", protected(s.updateSummaryHandler))
	mux.HandleFunc("POST /resumes/{id}/{section}", protected(s.addEntryHandler))
	mux.HandleFunc("PATCH /resumes/{id}/{section}/{entryID}", protected(s.patchEntryHandler))
	mux.HandleFunc("DELETE /resumes/{id}/{section}/{entryID}", protected(s.deleteEntryHandler))

	// AI-backed operations
	mux.HandleFunc("POST /analyze", protected(s.createAnalyzeHandler(om)))
	mux.HandleFunc("POST /assist/summary", protected(s.createSummaryHandler(om)))
	mux.HandleFunc("POST /assist/skills", protected(s.createSkillsHandler(om)))
	mux.HandleFunc("POST /assist/improve", protected(s.createImproveHandler(om)))

	return mux
}

// authMiddleware provides API key authentication
func (s *Server) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Skip authentication if no API keys are configured
		if len(s.APIKeys) == 0 {
			next(w, r)
			return
		}

		// Check for API key in X-API-Key header
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			// Check for Bearer token in Authorization header as fallback
			authHeader := r.Header.Get("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				apiKey = after
			}
		}

		if apiKey == "" {
			s.Logger.Info("Authentication failed: missing API key",
				"endpoint", r.URL.Path,
				"client_ip", r.RemoteAddr)
			writeErrorResponse(w, "Missing API key", "X-API-Key header or Authorization Bearer token required", http.StatusUnauthorized)
			return
		}

		// Validate API key
		if !s.APIKeys[apiKey] {
			s.Logger.Info("Authentication failed: invalid API key",
				"endpoint", r.URL.Path,
				"client_ip", r.RemoteAddr,
				"api_key_prefix", maskAPIKey(apiKey))
			writeErrorResponse(w, "Invalid API key", "Unauthorized access", http.StatusUnauthorized)
			return
		}

		// Log successful authentication
		s.Logger.Debug("API authentication successful",
			"endpoint", r.URL.Path,
			"client_ip", r.RemoteAddr,
			"api_key_prefix", maskAPIKey(apiKey))

		next(w, r)
	}
}

// requestSizeLimitMiddleware limits the size of incoming requests
func (s *Server) requestSizeLimitMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if s.MaxRequestSize > 0 {
				// Limit the request body size
				r.Body = http.MaxBytesReader(w, r.Body, s.MaxRequestSize)
			}

			next(w, r)
		}
	}
}

// maskAPIKey masks an API key for logging (shows only first 8 characters)
func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 8 {
		return "****"
	}
	return apiKey[:8] + "****"
}
