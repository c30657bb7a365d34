package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/mmehta/wayfarer/internal/api"
	"github.com/mmehta/wayfarer/internal/auth"
	"github.com/mmehta/wayfarer/internal/config"
	"github.com/mmehta/wayfarer/internal/storage/sqlite"
	"github.com/mmehta/wayfarer/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogFormat)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	server := api.New(store, authenticator, jwtManager)

	slog.Info("Server starting", "address", cfg.Bind)
	if err := http.ListenAndServe(cfg.Bind, server.Handler()); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
