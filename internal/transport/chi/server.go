// Package chi wires the resume analysis and ranking usecases into an HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/talentgrid/resumedex/internal/domain"
	"github.com/talentgrid/resumedex/internal/version"

	analyzeuc "github.com/talentgrid/resumedex/internal/usecase/analyze"
	healthuc "github.com/talentgrid/resumedex/internal/usecase/health"
	rankuc "github.com/talentgrid/resumedex/internal/usecase/rank"
)

// maxDocumentBytes caps uploaded document size (10 MiB).
const maxDocumentBytes = 10 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the analyze, rank, and health usecases over HTTP.
type Server struct {
	analyze       *analyzeuc.Service
	rank          *rankuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	analyze *analyzeuc.Service,
	rank *rankuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		analyze: analyze,
		rank:    rank,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrResumeNotFound, http.StatusNotFound, codeResumeNotFound),
		sentinelHandler(domain.ErrEmptyJobDescription, http.StatusBadRequest, codeEmptyJobDescription),
		sentinelHandler(domain.ErrDocumentUnreadable, http.StatusUnprocessableEntity, codeDocumentUnreadable),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Routes registers the API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/resumes", func(r chi.Router) {
			r.Get("/", s.listResumes)
			r.Post("/batch", s.analyzeBatch)
			r.Route("/{name}", func(r chi.Router) {
				r.Put("/", s.analyzeText)
				r.Put("/document", s.analyzeDocument)
				r.Get("/", s.getResume)
				r.Delete("/", s.deleteResume)
			})
		})
		r.Post("/rank", s.rankResumes)
	})
	r.Get("/health", s.healthCheck)
}

// analyzeText handles PUT /api/v1/resumes/{name}.
func (s *Server) analyzeText(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req analyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rec, err := s.analyze.AnalyzeText(r.Context(), name, req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resumeToDTO(rec, true))
}

// analyzeDocument handles PUT /api/v1/resumes/{name}/document.
// The request body is the raw document (PDF, DOCX, plain text).
func (s *Server) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Failed to read request body")
		return
	}
	if len(data) > maxDocumentBytes {
		writeError(w, http.StatusRequestEntityTooLarge, codeValidationFailed, "Document exceeds size limit")
		return
	}

	rec, err := s.analyze.AnalyzeDocument(r.Context(), name, data)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resumeToDTO(rec, true))
}

// analyzeBatch handles POST /api/v1/resumes/batch.
func (s *Server) analyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Batch must contain at least one item")
		return
	}

	items := make([]analyzeuc.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = analyzeuc.Item{Name: it.Name, Text: it.Text}
	}

	results := s.analyze.AnalyzeBatch(r.Context(), items)
	writeJSON(w, http.StatusOK, batchToDTO(results))
}

// getResume handles GET /api/v1/resumes/{name}.
func (s *Server) getResume(w http.ResponseWriter, r *http.Request) {
	rec, err := s.analyze.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resumeToDTO(rec, true))
}

// listResumes handles GET /api/v1/resumes.
func (s *Server) listResumes(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, next, err := s.analyze.List(r.Context(), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]resumeResponse, len(records))
	for i, rec := range records {
		items[i] = resumeToDTO(rec, false)
	}

	writeJSON(w, http.StatusOK, resumeListResponse{
		Items:      items,
		NextCursor: next,
		HasMore:    next != "",
	})
}

// deleteResume handles DELETE /api/v1/resumes/{name}.
func (s *Server) deleteResume(w http.ResponseWriter, r *http.Request) {
	if err := s.analyze.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// rankResumes handles POST /api/v1/rank.
func (s *Server) rankResumes(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ranked, err := s.rank.RankStored(r.Context(), req.Names, req.JobDescription)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rankedToDTO(ranked))
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToDTO(report, version.Version))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrResumeNotFound,
		domain.ErrEmptyJobDescription,
		domain.ErrDocumentUnreadable,
		domain.ErrInvalidInput,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
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
