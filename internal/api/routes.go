package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookmark-api/internal/api/middleware"
)

// Routes groups the handlers mounted by Register.
type Routes struct {
	Auth           *AuthHandler
	Users          *UserHandler
	Bookmarks      *BookmarkHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// Register mounts the public auth endpoints and the token-protected user and
// bookmark endpoints on r.
func (rt Routes) Register(r chi.Router) {
	r.Post("/auth/signup", rt.Auth.Signup)
	r.Post("/auth/signin", rt.Auth.Signin)

	r.Group(func(r chi.Router) {
		r.Use(rt.AuthMiddleware.Authenticate)

		r.Get("/users/me", rt.Users.GetMe)
		r.Patch("/users", rt.Users.Edit)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", rt.Bookmarks.List)
			r.Post("/", rt.Bookmarks.Create)
			r.Get("/{id}", rt.Bookmarks.Get)
			r.Patch("/{id}", rt.Bookmarks.Edit)
			r.Delete("/{id}", rt.Bookmarks.Delete)
		})
	})
}
