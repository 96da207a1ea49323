// Package server Seeker
//
// The Seeker api exposes the feed state store to clients: snapshot reads and user intents.
//
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/Decentr-net/seeker/internal/middleware"
	"github.com/Decentr-net/seeker/internal/service"
)

const maxBodySize = 4096

const staticCacheTTL = 10 * time.Minute

type server struct {
	s service.Store
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Store, r chi.Router, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/snapshot", srv.getSnapshot)

		r.Post("/posts", srv.createPost)
		r.Post("/posts/{id}/like", srv.toggleLike)
		r.Post("/posts/{id}/comments", srv.addComment)

		r.Post("/chats/{id}/messages", srv.sendMessage)

		r.Put("/profile", srv.updateProfile)
		r.Post("/communities/{id}/membership", srv.toggleMembership)
		r.Post("/wallet", srv.toggleWallet)

		r.Put("/navigation", srv.navigate)
		r.Put("/thread/{id}", srv.openThread)
		r.Delete("/thread", srv.closeThread)
		r.Put("/conversation/{id}", srv.openChat)
		r.Delete("/conversation", srv.closeChat)
		r.Put("/overlays/{overlay}", srv.openOverlay)
		r.Delete("/overlays/{overlay}", srv.closeOverlay)

		r.Post("/summary", srv.requestSummary)

		r.Get("/trending", mm.Cached(staticCacheTTL, srv.getTrending))
		r.Get("/stories", mm.Cached(staticCacheTTL, srv.getStories))
	})
}
