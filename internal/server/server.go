// Package server exposes the JSON API over net/http.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	chatsvc "canvas_chat/internal/services/chat"
)

const (
	ReadTimeout = 15 * time.Second

	// WriteTimeout must outlast the model run timeout; the chat handler
	// holds the response open for the whole call.
	WriteTimeout = 120 * time.Second

	IdleTimeout     = 60 * time.Second
	ShutdownTimeout = 10 * time.Second

	MaxRequestBodySize = 1 * 1024 * 1024
)

type Server struct {
	addr    string
	httpSrv *http.Server
	chat    *chatsvc.Service
}

func New(addr string, chat *chatsvc.Service) *Server {
	s := &Server{addr: addr, chat: chat}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/models", s.handleModels)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/memory", s.handleListSessions)
	mux.HandleFunc("GET /api/memory/{session_id}", s.handleGetMemory)
	mux.HandleFunc("DELETE /api/memory/{session_id}", s.handleClearMemory)

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      withCORS(withRequestLog(mux)),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}
	return s
}

// Handler returns the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	eg, runCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		slog.Info("http server listening", "addr", s.addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-runCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
