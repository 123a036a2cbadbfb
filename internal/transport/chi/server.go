// Package chi is the HTTP transport: route registration, request decoding,
// and the domain-error to status-code mapping.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hirelane/matchdex/internal/domain"
	"github.com/hirelane/matchdex/internal/domain/doctype"
	"github.com/hirelane/matchdex/internal/metrics"
	documentuc "github.com/hirelane/matchdex/internal/usecase/document"
	healthuc "github.com/hirelane/matchdex/internal/usecase/health"
	matchinguc "github.com/hirelane/matchdex/internal/usecase/matching"
)

// Error codes returned in JSON error bodies.
const (
	codeBadRequest        = "bad_request"
	codeValidationFailed  = "validation_failed"
	codeMissingField      = "missing_field"
	codeNotFound          = "not_found"
	codeSearchUnavailable = "search_unavailable"
	codeInternalError     = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API server.
type Server struct {
	documents     *documentuc.Service
	matching      *matchinguc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	documents *documentuc.Service,
	matching *matchinguc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		documents: documents,
		matching:  matching,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		missingFieldHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrSearchUnavailable, http.StatusServiceUnavailable, codeSearchUnavailable),
	}
	return s
}

// Register wires the API routes onto the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/documents/{docType}/{id}", func(r chi.Router) {
		r.Get("/", s.GetDocument)
		r.Put("/", s.UpsertDocument)
		r.Delete("/", s.DeleteDocument)
	})
	r.Post("/matches", s.FindMatches)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// GetDocument handles GET /documents/{docType}/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	dt, id, ok := s.docParams(w, r)
	if !ok {
		return
	}

	switch dt {
	case doctype.Job:
		j, err := s.documents.GetJob(r.Context(), id)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, jobToResponse(j))
	case doctype.Candidate:
		c, err := s.documents.GetCandidate(r.Context(), id)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, candidateToResponse(c))
	}
}

// UpsertDocument handles PUT /documents/{docType}/{id}.
func (s *Server) UpsertDocument(w http.ResponseWriter, r *http.Request) {
	dt, id, ok := s.docParams(w, r)
	if !ok {
		return
	}

	switch dt {
	case doctype.Job:
		var req jobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
			return
		}
		j, err := jobFromRequest(id, req)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
			return
		}
		if err := s.documents.UpsertJob(r.Context(), j); err != nil {
			s.handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, jobToResponse(j))
	case doctype.Candidate:
		var req candidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
			return
		}
		c, err := candidateFromRequest(id, req)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
			return
		}
		if err := s.documents.UpsertCandidate(r.Context(), c); err != nil {
			s.handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, candidateToResponse(c))
	}
}

// DeleteDocument handles DELETE /documents/{docType}/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	dt, id, ok := s.docParams(w, r)
	if !ok {
		return
	}

	var err error
	switch dt {
	case doctype.Job:
		err = s.documents.DeleteJob(r.Context(), id)
	case doctype.Candidate:
		err = s.documents.DeleteCandidate(r.Context(), id)
	}
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FindMatches handles POST /matches.
func (s *Server) FindMatches(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	dt, err := doctype.Parse(req.DocType)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "id is required")
		return
	}

	crit, err := criteriaFromRequest(req.Filters)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	matches, err := s.matching.FindMatches(r.Context(), dt, req.ID, crit)
	if err != nil {
		metrics.ObserveMatch(string(dt), "error")
		s.handleDomainError(w, err)
		return
	}
	metrics.ObserveMatch(string(dt), "ok")

	writeJSON(w, http.StatusOK, matchesToResponse(matches))
}

// docParams extracts and validates the docType and id route parameters.
func (s *Server) docParams(w http.ResponseWriter, r *http.Request) (doctype.Type, string, bool) {
	dt, err := doctype.Parse(chi.URLParam(r, "docType"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return "", "", false
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "document id is required")
		return "", "", false
	}
	return dt, id, true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	var mf *domain.MissingFieldError
	if errors.As(err, &mf) {
		return mf.Error()
	}

	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrMissingField,
		domain.ErrSearchUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// missingFieldHandler handles ErrMissingField with the field name in the body.
func missingFieldHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrMissingField) {
		return false
	}
	var mf *domain.MissingFieldError
	if errors.As(err, &mf) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"code":    codeMissingField,
			"message": msg,
			"field":   mf.Field,
		})
		return true
	}
	writeError(w, http.StatusBadRequest, codeMissingField, msg)
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
