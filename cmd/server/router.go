package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/bookmark-api/internal/api"
	apiMiddleware "github.com/phrazzld/bookmark-api/internal/api/middleware"
)

// setupRouter creates the chi router with the standard middleware stack, the
// API routes and the health check.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	api.Routes{
		Auth:           api.NewAuthHandler(app.credentialService),
		Users:          api.NewUserHandler(app.userService),
		Bookmarks:      api.NewBookmarkHandler(app.bookmarkService),
		AuthMiddleware: apiMiddleware.NewAuthMiddleware(app.jwtService),
	}.Register(r)

	r.Get("/health", app.healthHandler)

	return r
}

func (app *application) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
