// Package api exposes the analyzer over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

const (
	// MaxBodyBytes bounds the size of an analysis request body.
	MaxBodyBytes = 2 << 20
	// RequestIDHeader carries the identifier logged with every request.
	RequestIDHeader = "X-Request-Id"
	// AnalysisPath is the route of the analysis endpoint.
	AnalysisPath = "/test/analysis"
)

const missingFields = "Missing code or filename"

// Server serves analysis requests.
type Server struct {
	analyzer *neatcommit.Analyzer
	logger   *zap.Logger
}

// NewServer creates a server backed by analyzer.
func NewServer(analyzer *neatcommit.Analyzer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{analyzer: analyzer, logger: logger}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+AnalysisPath, s.analyze)
	mux.HandleFunc("GET /rules", s.rules)
	mux.HandleFunc("GET /healthz", s.healthz)
	return s.withRequestID(mux)
}

type analysisRequest struct {
	Code     *string `json:"code"`
	Filename *string `json:"filename"`
}

// AnalysisResponse is the body of a successful analysis.
type AnalysisResponse struct {
	Success bool               `json:"success"`
	Result  *neatcommit.Result `json:"result"`
}

// ErrorResponse is the body of a rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RuleInfo describes one rule of the loaded corpus.
type RuleInfo struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Language language.Language `json:"language"`
	Severity issue.Severity    `json:"severity"`
	Category issue.Category    `json:"category"`
	CWE      string            `json:"cwe,omitempty"`
}

// RulesResponse is the body of GET /rules.
type RulesResponse struct {
	Version string     `json:"version"`
	Rules   []RuleInfo `json:"rules"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status        string `json:"status"`
	CorpusVersion string `json:"corpusVersion"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With(zap.String("requestId", w.Header().Get(RequestIDHeader)))

	var body analysisRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Info("request body too large", zap.Int64("limit", tooLarge.Limit))
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
			return
		}
		logger.Info("malformed analysis request", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: missingFields})
		return
	}
	if body.Code == nil || body.Filename == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: missingFields})
		return
	}

	start := time.Now()
	res, err := s.analyzer.Analyze(r.Context(), neatcommit.Request{Code: *body.Code, Filename: *body.Filename})
	if err != nil {
		if errors.Is(err, neatcommit.ErrInvalidInput) {
			logger.Info("rejected analysis request", zap.Error(err))
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: missingFields})
			return
		}
		logger.Error("analysis failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Analysis failed"})
		return
	}
	logger.Info("analysis served",
		zap.String("filename", res.Filename),
		zap.String("language", res.Language.String()),
		zap.Int("issues", res.TotalIssues),
		zap.Int("score", res.Score),
		zap.Duration("duration", time.Since(start)))
	writeJSON(w, http.StatusOK, AnalysisResponse{Success: true, Result: res})
}

func (s *Server) rules(w http.ResponseWriter, _ *http.Request) {
	corpus := s.analyzer.Corpus()
	resp := RulesResponse{Version: corpus.Version(), Rules: make([]RuleInfo, 0, corpus.Len())}
	for _, r := range corpus.All() {
		resp.Rules = append(resp.Rules, RuleInfo{
			ID:       r.ID,
			Name:     r.Name,
			Language: r.Language,
			Severity: r.Severity,
			Category: r.Category,
			CWE:      r.CWE,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", CorpusVersion: s.analyzer.Corpus().Version()})
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		s.logger.Debug("request",
			zap.String("requestId", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
