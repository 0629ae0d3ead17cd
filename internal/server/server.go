// Package server exposes the question-answering core over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"askme/internal/index"
)

// Asker answers one question; the HTTP layer needs nothing else from the
// core.
type Asker interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Server handles the query API surface.
type Server struct {
	asker  Asker
	logger *slog.Logger
}

// New creates a Server. A nil logger falls back to slog.Default.
func New(asker Asker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{asker: asker, logger: logger}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ask", s.handleAsk)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be JSON with a string question field"})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is required"})
		return
	}

	answer, err := s.asker.Answer(r.Context(), question)
	if err != nil {
		s.logger.Error("answer failed", "err", err)
		msg := "failed to answer the question"
		if errors.Is(err, index.ErrMissingOrEmpty) {
			msg = "index missing or empty; rebuild it with askme-index"
		}
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msg})
		return
	}

	s.logger.Info("answered", "question_len", len(question))
	s.writeJSON(w, http.StatusOK, askResponse{Question: question, Answer: answer})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write response", "err", err)
	}
}
