package server

import (
	"context"
	"net/http"
	"strings"

	"resumeforge/internal/job"
	"resumeforge/internal/observability"
	"resumeforge/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the ATS analysis handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		// Parse request
		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.Job.Description) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "job.description field is required", http.StatusBadRequest)
			return
		}

		doc, ok := s.Store.Resume(req.ResumeID)
		if !ok {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume not found", "no resume with id "+req.ResumeID, http.StatusNotFound)
			return
		}

		// Analysis, like the editing routes, selects the document first so
		// the verdict can be folded back into it
		s.Store.SetCurrentResumeID(req.ResumeID)

		// The posting goes through the normalizer so blank title/company
		// render as placeholders in the match prompt
		posting := job.New(req.Job.Title, req.Job.Company, req.Job.Description)

		// Add request attributes to span
		span.SetAttributes(
			attribute.String("resume.id", doc.ID),
			attribute.Int("request.job_length", len(posting.Description)),
			attribute.String("operation", "analyze"),
		)

		// Track the analysis with observability; Analyze reports failures
		// through the fallback analysis, never as an error
		metrics := om.GetMetrics()
		var result types.ATSAnalysis
		_ = metrics.TrackAIOperationWithTokens(ctx, "job_match", func(ctx context.Context) *observability.AIOperationResult {
			result = s.Analyzer.Analyze(ctx, doc, posting)
			return &observability.AIOperationResult{}
		}, om)

		metrics.RecordBusinessMetric(ctx, "analysis_completed", true, om,
			attribute.Int("ats.score", result.Score))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", result.Score),
		)

		writeJSONResponse(w, http.StatusOK, result)
	}
}

// createSummaryHandler wraps the summary generation handler with observability
func (s *Server) createSummaryHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.assist.summary")
		defer span.End()

		var req SummaryRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		doc, ok := s.Store.Resume(req.ResumeID)
		if !ok {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume not found", "no resume with id "+req.ResumeID, http.StatusNotFound)
			return
		}

		span.SetAttributes(
			attribute.String("resume.id", doc.ID),
			attribute.String("operation", "generate_summary"),
		)

		metrics := om.GetMetrics()
		var summary string
		_ = metrics.TrackAIOperationWithTokens(ctx, "generate_summary", func(ctx context.Context) *observability.AIOperationResult {
			summary = s.Assist.GenerateSummary(ctx, doc)
			return &observability.AIOperationResult{}
		}, om)

		metrics.RecordBusinessMetric(ctx, "summary_generated", true, om,
			attribute.Int("output.summary_length", len(summary)))

		span.SetAttributes(attribute.Bool("success", true))

		writeJSONResponse(w, http.StatusOK, map[string]string{"summary": summary})
	}
}

// createSkillsHandler wraps the skill suggestion handler with observability
func (s *Server) createSkillsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.assist.skills")
		defer span.End()

		var req SkillsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobTitle) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job title", "jobTitle field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.job_title", req.JobTitle),
			attribute.String("operation", "suggest_skills"),
		)

		metrics := om.GetMetrics()
		var skills []string
		_ = metrics.TrackAIOperationWithTokens(ctx, "suggest_skills", func(ctx context.Context) *observability.AIOperationResult {
			skills = s.Assist.SuggestSkills(ctx, req.JobTitle)
			return &observability.AIOperationResult{}
		}, om)

		metrics.RecordBusinessMetric(ctx, "skills_suggested", true, om,
			attribute.Int("output.skill_count", len(skills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("output.skill_count", len(skills)),
		)

		writeJSONResponse(w, http.StatusOK, map[string][]string{"skills": skills})
	}
}

// createImproveHandler wraps the description improvement handler with observability
func (s *Server) createImproveHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.assist.improve")
		defer span.End()

		var req ImproveRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Description) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing description", "description field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.description_length", len(req.Description)),
			attribute.String("operation", "improve_description"),
		)

		metrics := om.GetMetrics()
		var improved string
		_ = metrics.TrackAIOperationWithTokens(ctx, "improve_description", func(ctx context.Context) *observability.AIOperationResult {
			improved = s.Assist.ImproveDescription(ctx, req.Description, req.Position, req.Company)
			return &observability.AIOperationResult{}
		}, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.description_length", len(improved)),
		)

		writeJSONResponse(w, http.StatusOK, map[string]string{"description": improved})
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
