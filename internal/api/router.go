package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Range"},
		ExposedHeaders: []string{"Content-Range", "Accept-Ranges", "Content-Length"},
	}))

	requireAuth := app.Gate.Middleware(unauthorized)

	r.Get("/ping", PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", app.LoginHandler)

		r.Get("/videos", app.ListVideosHandler)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/videos/all", app.ListAllVideosHandler)
			r.Post("/videos", app.CreateVideoHandler)
			r.Post("/videos/upload", app.UploadVideoHandler)
			r.Post("/videos/publish/{id}", app.PublishVideoHandler)
		})
	})

	r.Get("/video/{filename}", app.StreamVideoHandler)

	return r
}
