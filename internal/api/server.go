// Package api exposes the export and lookup pipeline over HTTP for the
// local conversation browser.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iksnae/cursor-archive/internal"
	"github.com/iksnae/cursor-archive/internal/search"
)

// Server serves the bulk export and single-conversation endpoints,
// plus proxy routes to the semantic search service.
type Server struct {
	router    *chi.Mux
	port      int
	assembler *internal.ExportAssembler
	lookup    *internal.ConversationLookup
	search    *search.Client
}

// NewServer wires the routes. searchClient may be nil when no semantic
// search service is configured; the proxy routes then answer 503.
func NewServer(port int, basePath string, searchClient *search.Client) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:    router,
		port:      port,
		assembler: internal.NewExportAssembler(basePath),
		lookup:    internal.NewConversationLookup(basePath),
		search:    searchClient,
	}

	router.Get("/health", s.health)
	router.Get("/api/export", s.handleExport)
	router.Get("/api/conversations/{id}", s.handleConversation)
	router.Post("/api/index", s.handleIndex)
	router.Post("/api/search", s.handleSearch)
	router.Get("/api/search/health", s.handleSearchHealth)

	return s
}

// Handler returns the underlying router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	internal.LogInfo("API server listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExport serves GET /api/export. The include flags are false
// only when their value is the literal string "false"; any other
// value, or absence, means true.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := internal.ExportOptions{
		IncludeComposers: q.Get("includeComposers") != "false",
		IncludeChats:     q.Get("includeChats") != "false",
	}

	envelope, err := s.assembler.Export(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope)
}

// handleConversation serves GET /api/conversations/{id}.
func (s *Server) handleConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	result, err := s.lookup.Lookup(q.Get("workspaceId"), q.Get("type"), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleIndex runs a full export and pushes the envelope to the
// semantic search service.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "semantic search service not configured"})
		return
	}

	envelope, err := s.assembler.Export(r.Context(), internal.DefaultExportOptions())
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := s.search.Index(r.Context(), envelope)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// handleSearch proxies a similarity query to the semantic search
// service.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "semantic search service not configured"})
		return
	}

	var req search.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid JSON: %v", err)})
		return
	}
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	results, err := s.search.Search(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleSearchHealth(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "semantic search service not configured"})
		return
	}

	health, err := s.search.Health(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, health)
}

// writeError maps the error taxonomy to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *internal.ValidationError
	var notFoundErr *internal.NotFoundError
	var storeErr *internal.StoreReadError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &storeErr):
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		internal.LogError("request failed: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		internal.LogError("failed to encode response: %v", err)
	}
}
