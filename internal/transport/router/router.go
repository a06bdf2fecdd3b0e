package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ChieJuwonsFx/backend-converter/internal/config"
	"github.com/ChieJuwonsFx/backend-converter/internal/transport/handler"
	"github.com/ChieJuwonsFx/backend-converter/internal/transport/middleware"
)

func NewRouter(h *handler.Handler, cfg config.CORSConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Get("/", h.Root)
	r.Post("/convert/", h.ConvertImage)

	return r
}
