/*
Package handler provides the HTTP handlers and routing setup for the chat API.

This file defines the main Router, applying middleware (request id, logging,
CORS, recovery, IP rate limiting on write endpoints) before delegating to the
per-resource handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"salachat/internal/pkg/limiter"
	"salachat/internal/pkg/logx"
	"salachat/internal/pkg/resp"
)

const (
	// RegisterRate limits how fast one IP may create participants.
	RegisterRate  = 0.5
	RegisterBurst = 3

	// PostRate limits how fast one IP may post messages.
	PostRate  = 5
	PostBurst = 10
)

// Router builds the HTTP routing table for the application.
func Router(deps *AppDeps) http.Handler {
	registerLimiter := limiter.NewIPRateLimiter(rate.Limit(RegisterRate), RegisterBurst)
	postLimiter := limiter.NewIPRateLimiter(rate.Limit(PostRate), PostBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := deps.Config.AllowedOrigins
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "user"},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondOK(w, r, map[string]string{
			"status":  "ok",
			"service": "Sala Chat Server",
		})
	})

	r.Method("POST", "/participants", registerLimiter.Middleware(HandleRegisterParticipant(deps)))
	r.Get("/participants", HandleListParticipants(deps))

	r.Method("POST", "/messages", postLimiter.Middleware(HandlePostMessage(deps)))
	r.Get("/messages", HandleListMessages(deps))
	r.Delete("/messages/{id}", HandleDeleteMessage(deps))

	r.Post("/status", HandleStatus(deps))

	return r
}
