package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/medkb/internal/api"
	apiMiddleware "github.com/phrazzld/medkb/internal/api/middleware"
	"github.com/phrazzld/medkb/internal/api/shared"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	libraryHandler := api.NewLibraryHandler(app.library, app.logger)
	r.Route("/api", libraryHandler.Routes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
			"status":      "ok",
			"collections": len(app.library.Names()),
		})
	})

	return r
}
