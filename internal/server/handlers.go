package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	chatsvc "canvas_chat/internal/services/chat"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"models": s.chat.Models()})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)

	var req chatsvc.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	// every deeper failure mode rides inside the response body; the chat
	// endpoint itself never returns a server fault
	writeJSON(w, http.StatusOK, s.chat.Chat(r.Context(), req))
}

func (s *Server) handleGetMemory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	writeJSON(w, http.StatusOK, s.chat.History(sessionID))
}

func (s *Server) handleClearMemory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	s.chat.ClearSession(sessionID)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": fmt.Sprintf("Cleared memory for session %s", sessionID),
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sessions": s.chat.SessionIDs()})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
