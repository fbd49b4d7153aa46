package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sloghttp "github.com/samber/slog-http"

	channelService "querywizard/internal/modules/channel/service"
	queryDomain "querywizard/internal/modules/query/domain"
	queryService "querywizard/internal/modules/query/service"
	"querywizard/internal/shared/config"
	sharedErrors "querywizard/internal/shared/errors"
)

// Server exposes the channel store and the query builder as a JSON API for
// the form layer.
type Server struct {
	cfg            *config.Config
	channelService *channelService.Service
	queryService   *queryService.Service
	logger         *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, channelService *channelService.Service, queryService *queryService.Service) *Server {
	return &Server{
		cfg:            cfg,
		channelService: channelService,
		queryService:   queryService,
		logger:         slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler wrapped in logging and recovery
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Channel store endpoints
	mux.HandleFunc("GET /api/channels", s.handleListChannels)
	mux.HandleFunc("POST /api/channels", s.handleAddChannel)
	mux.HandleFunc("PUT /api/channels/{name}", s.handleRenameChannel)
	mux.HandleFunc("DELETE /api/channels/{name}", s.handleRemoveChannel)

	// Query builder endpoint
	mux.HandleFunc("POST /api/query", s.handleBuildQuery)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Root endpoint with instructions
	mux.HandleFunc("GET /", s.handleRoot)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

type channelRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"channels": s.channelService.List(),
	})
}

func (s *Server) handleAddChannel(w http.ResponseWriter, r *http.Request) {
	var req channelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := s.channelService.Add(req.Name)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": message})
}

func (s *Server) handleRenameChannel(w http.ResponseWriter, r *http.Request) {
	oldName := r.PathValue("name")

	var req channelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := s.channelService.Rename(oldName, req.Name)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": message})
}

func (s *Server) handleRemoveChannel(w http.ResponseWriter, r *http.Request) {
	message, err := s.channelService.Remove(r.PathValue("name"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": message})
}

func (s *Server) handleBuildQuery(w http.ResponseWriter, r *http.Request) {
	var sel queryDomain.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The builder never fails: unknown enum values degrade per its fallback
	// rules, an empty selection yields an empty query.
	writeJSON(w, http.StatusOK, map[string]any{
		"query": s.queryService.Build(sel),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Slack Search Query Wizard</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Slack Search Query Wizard</h1>
    <div class="info">
        <p>Generate complex Slack search queries without API access.</p>
        <p>Saved channels: <code>GET/POST /api/channels</code>, <code>PUT/DELETE /api/channels/{name}</code></p>
        <p>Build a query: <code>POST /api/query</code> with a filter selection, e.g.</p>
        <p><code>{"channel":"eng","from_user":"bob","file_type":"PDF","keywords":"deploy"}</code></p>
        <p>returns <code>{"query":"in:#eng from:@bob has:pdf deploy"}</code> — paste it into Slack's search bar.</p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// writeServiceError maps the store's error taxonomy onto HTTP statuses. All
// of these are user-recoverable; the wrapped message is shown as-is.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sharedErrors.ErrEmptyName):
		status = http.StatusBadRequest
	case errors.Is(err, sharedErrors.ErrDuplicateName):
		status = http.StatusConflict
	case errors.Is(err, sharedErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, sharedErrors.ErrPersistence):
		s.logger.Error("Channel store write failed", "error", err)
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
