/*
Package main is the entry point for the Sala Chat server.

It loads configuration, initializes the global logging system, connects the
database pool, wires the registry and message log services, starts the
presence sweeper and the HTTP server, and handles operating system interrupt
signals (SIGINT, SIGTERM) for a graceful shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"salachat/internal/app/db"
	"salachat/internal/app/message"
	"salachat/internal/app/participant"
	"salachat/internal/app/presence"
	"salachat/internal/configs"
	"salachat/internal/handler"
	"salachat/internal/pkg/logx"
)

func main() {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Dur("presence_ttl", cfg.PresenceTTL).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database")
	}
	defer pool.Close()

	messages := message.NewService(message.NewPGStore(pool))
	participants := participant.NewService(participant.NewPGStore(pool), messages)

	sweeper := presence.NewSweeper(participants, messages, cfg.PresenceTTL)
	sweeper.Start()

	deps := &handler.AppDeps{
		Config:       cfg,
		Participants: participants,
		Messages:     messages,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler.Router(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Sala Chat Server starting on http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	sweeper.Stop()

	logx.Info("Server gracefully stopped.")
}
