// Package api serves the oracle loop over HTTP. Three POST endpoints drive
// the game (start, advance, choose); GET /healthz is public. When an admin
// key is configured, POSTs require it as a bearer token.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/talgya/crownfall/internal/session"
)

// Server serves the oracle engine over HTTP.
type Server struct {
	Engine   *session.Engine
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = open.

	srv *http.Server
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/v1/oracle/start", s.auth(s.handleStart))
	mux.HandleFunc("POST /api/v1/oracle/advance", s.auth(s.handleAdvance))
	mux.HandleFunc("POST /api/v1/oracle/choose", s.auth(s.handleChoose))

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("api listening", "port", s.Port)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("api server failed", "error", err)
		}
	}()
}

// Close shuts the listener down.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Close()
}

func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey != "" {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token != s.AdminKey {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type startRequest struct {
	PlayerID string `json:"player_id"`
	Ambition string `json:"ambition"`
	Seed     int64  `json:"seed,omitempty"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Ambition) == "" {
		writeError(w, http.StatusBadRequest, "ambition text is required")
		return
	}
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}

	res, err := s.Engine.Start(req.PlayerID, req.Ambition, req.Seed)
	if err != nil {
		slog.Error("start failed", "player", req.PlayerID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type turnRequest struct {
	SessionID string `json:"session_id"`
	ActionID  string `json:"action_id,omitempty"`
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.Engine.Advance(req.SessionID)
	if err != nil {
		writeTurnError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleChoose(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ActionID == "" {
		writeError(w, http.StatusBadRequest, "action_id is required")
		return
	}

	res, err := s.Engine.Choose(req.SessionID, req.ActionID)
	if err != nil {
		writeTurnError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeTurnError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, session.ErrUnknownAction):
		writeError(w, http.StatusBadRequest, "unknown action id")
	case errors.Is(err, session.ErrUnaffordable):
		writeError(w, http.StatusBadRequest, "insufficient resources")
	default:
		slog.Error("turn failed", "error", err)
		writeError(w, http.StatusInternalServerError, "turn failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
