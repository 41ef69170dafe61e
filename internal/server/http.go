package server

import (
	"time"

	"resumeforge/internal/ai"
	"resumeforge/internal/assist"
	"resumeforge/internal/ats"
	"resumeforge/internal/config"
	resumeforgeErrors "resumeforge/internal/errors"
	"resumeforge/internal/store"
	"resumeforge/internal/types"
)

// AnalyzeRequest represents the request body for the analyze endpoint
type AnalyzeRequest struct {
	ResumeID string               `json:"resumeId"`
	Job      types.JobDescription `json:"job"`
}

// SummaryRequest represents the request body for the assist/summary endpoint
type SummaryRequest struct {
	ResumeID string `json:"resumeId"`
}

// SkillsRequest represents the request body for the assist/skills endpoint
type SkillsRequest struct {
	JobTitle string `json:"jobTitle"`
}

// ImproveRequest represents the request body for the assist/improve endpoint
type ImproveRequest struct {
	Description string `json:"description"`
	Position    string `json:"position"`
	Company     string `json:"company"`
}

// SummaryUpdateRequest represents the request body for the summary section endpoint
type SummaryUpdateRequest struct {
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Application state and AI-backed services
	Store    *store.Store
	Assist   *assist.Service
	Analyzer *ats.Analyzer

	// Logger
	Logger *resumeforgeErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *resumeforgeErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Store:          store.New(logger),
		Logger:         logger,
	}
}

// initServices wires the AI-backed services if they have not been injected.
// Tests install fakes before routing; the serve command relies on this path.
func (s *Server) initServices() error {
	if s.Assist == nil {
		generateConfig := s.AppConfig.GetGenerateConfig()
		generateService, err := ai.NewService(&generateConfig, "generate", s.Logger)
		if err != nil {
			return err
		}
		s.Assist = assist.New(generateService, s.Store, s.Logger)
	}

	if s.Analyzer == nil {
		analyzeConfig := s.AppConfig.GetAnalyzeConfig()
		analyzeService, err := ai.NewService(&analyzeConfig, "analyze", s.Logger)
		if err != nil {
			return err
		}
		s.Analyzer = ats.New(analyzeService, s.Store, s.Logger)
	}

	return nil
}
