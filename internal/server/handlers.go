package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/youchat-dev/youchat-go/apimodels"
	"github.com/youchat-dev/youchat-go/internal/youchat"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req apimodels.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	slog.Debug("Received search request", "query", req.Query, "options", req.Options)
	start := time.Now()

	result, err := s.searcher.Search(r.Context(), req)
	if err != nil {
		slog.Error("Search request failed", "error", err)
		searchesTotal.WithLabelValues(req.Options.Model, req.Options.ChatMode, errorClass(err)).Inc()
		http.Error(w, err.Error(), errorStatus(err))
		return
	}

	searchesTotal.WithLabelValues(result.Metadata.Model, result.Metadata.ChatMode, "ok").Inc()
	searchDuration.WithLabelValues(result.Metadata.Model).Observe(time.Since(start).Seconds())
	answerTokens.Observe(float64(result.Metadata.Tokens))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	defaultModel, defaultMode := s.searcher.Defaults()

	resp := apimodels.ModelsResponse{
		Models:          make([]string, 0, len(youchat.Models)),
		ChatModes:       make([]string, 0, len(youchat.ChatModes)),
		DefaultModel:    string(defaultModel),
		DefaultChatMode: string(defaultMode),
	}
	for _, m := range youchat.Models {
		resp.Models = append(resp.Models, string(m))
	}
	for _, cm := range youchat.ChatModes {
		resp.ChatModes = append(resp.ChatModes, string(cm))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// errorStatus maps the client error taxonomy onto HTTP statuses: validation
// failures are the caller's fault, transport failures are the upstream's.
func errorStatus(err error) int {
	var invalidModel *youchat.InvalidModelError
	var invalidMode *youchat.InvalidChatModeError
	var transport *youchat.TransportError
	switch {
	case errors.As(err, &invalidModel), errors.As(err, &invalidMode):
		return http.StatusBadRequest
	case errors.As(err, &transport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorClass(err error) string {
	var invalidModel *youchat.InvalidModelError
	var invalidMode *youchat.InvalidChatModeError
	var transport *youchat.TransportError
	switch {
	case errors.As(err, &invalidModel):
		return "invalid_model"
	case errors.As(err, &invalidMode):
		return "invalid_chat_mode"
	case errors.As(err, &transport):
		return "transport_error"
	default:
		return "internal_error"
	}
}
