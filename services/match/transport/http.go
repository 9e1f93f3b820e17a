package transport

import (
	"net/http"

	"hearth/services/match/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(matchHandler *handler.MatchHandler, metricsHandler http.Handler) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)

	// CORS 설정
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Post("/generate-daily-matches", matchHandler.GenerateDailyMatches)
	mux.Options("/generate-daily-matches", matchHandler.Options)

	mux.Get("/runs/{date}", matchHandler.GetRunReport)
	mux.Get("/health", matchHandler.Health)

	if metricsHandler != nil {
		mux.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	return mux
}
