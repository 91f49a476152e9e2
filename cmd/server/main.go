package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"canvas_chat/internal/ai"
	"canvas_chat/internal/config"
	"canvas_chat/internal/memory"
	"canvas_chat/internal/server"
	chatsvc "canvas_chat/internal/services/chat"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.HasAPIKey() {
		slog.Info("gemini api key configured")
	} else {
		slog.Warn("GEMINI_API_KEY missing; chat requests will return the configuration error response")
	}

	store := memory.NewStore()
	runner := ai.NewRunner(ai.RunnerConfig{
		RunTimeout: cfg.RunTimeout,
	})
	chatService := chatsvc.NewService(store, runner, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	srv := server.New(addr, chatService)
	slog.Info("starting server", "addr", addr, "model", cfg.Model)
	if err := srv.Run(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
