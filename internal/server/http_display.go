package server

import "fmt"

// displayServerInfo shows server configuration information
func (s *Server) displayServerInfo() {
	s.displayEndpoints()
	s.displayAuthInfo()
	s.displayRequestLimitInfo()
	s.displayRateLimitInfo()
}

// displayEndpoints shows available API endpoints
func (s *Server) displayEndpoints() {
	fmt.Println("Available endpoints:")
	fmt.Println("  GET    /health                                  - Health check")
	fmt.Println("  GET    /stats                                   - Server statistics")
	fmt.Println("  POST   /resumes                                 - Create resume (requires API key)")
	fmt.Println("  GET    /resumes                                 - List resumes (requires API key)")
	fmt.Println("  GET    /resumes/{id}                            - Get resume with completeness (requires API key)")
	fmt.Println("  PUT    /resumes/{id}                            - Replace resume (requires API key)")
	fmt.Println("  DELETE /resumes/{id}                            - Delete resume (requires API key)")
	fmt.Println("  PUT    /resumes/{id}/personal                   - Update contact block (requires API key)")
	fmt.Println("  PUT    /resumes/{id}/summary                    - Update summary (requires API key)")
	fmt.Println("  POST   /resumes/{id}/{section}                  - Add section entry (requires API key)")
	fmt.Println("  PATCH  /resumes/{id}/{section}/{entryID}        - Patch section entry (requires API key)")
	fmt.Println("  DELETE /resumes/{id}/{section}/{entryID}        - Delete section entry (requires API key)")
	fmt.Println("  POST   /analyze                                 - ATS analysis (requires API key)")
	fmt.Println("  POST   /assist/summary                          - Generate summary (requires API key)")
	fmt.Println("  POST   /assist/skills                           - Suggest skills (requires API key)")
	fmt.Println("  POST   /assist/improve                          - Improve description (requires API key)")
}

// displayAuthInfo shows authentication configuration
func (s *Server) displayAuthInfo() {
	if len(s.APIKeys) > 0 {
		fmt.Printf("API authentication: ENABLED (%d keys configured)\n", len(s.APIKeys))
		fmt.Println("Include 'X-API-Key: <your-key>' header in requests to /resumes, /analyze and /assist")
	} else {
		fmt.Println("API authentication: DISABLED (no API keys configured)")
		fmt.Println("WARNING: API endpoints are publicly accessible!")
	}
}

// displayRequestLimitInfo shows request size limit configuration
func (s *Server) displayRequestLimitInfo() {
	if s.MaxRequestSize > 0 {
		fmt.Printf("Request size limit: %d bytes (%.1f MB)\n", s.MaxRequestSize, float64(s.MaxRequestSize)/(1024*1024))
	} else {
		fmt.Println("Request size limit: DISABLED")
		fmt.Println("WARNING: No request size limits configured!")
	}
}

// displayRateLimitInfo shows rate limiting configuration
func (s *Server) displayRateLimitInfo() {
	if s.RateLimit != nil && s.RateLimit.Enabled {
		fmt.Printf("Rate limiting: ENABLED (%d requests/min, burst: %d)\n",
			s.RateLimit.RequestsPerMin, s.RateLimit.BurstCapacity)
		if s.RateLimit.ByAPIKey {
			fmt.Println("  - Per API key rate limiting enabled")
		}
		if s.RateLimit.ByIP {
			fmt.Println("  - Per IP address rate limiting enabled")
		}
	} else {
		fmt.Println("Rate limiting: DISABLED")
		fmt.Println("WARNING: No rate limiting configured!")
	}
}
