// Package server USLY
//
// The USLY session service keeps view state of every client session and returns frames to be drawn.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 0.1.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/Decentr-net/usly/internal/middleware"
	"github.com/Decentr-net/usly/internal/service"
	"github.com/Decentr-net/usly/internal/session"
)

const maxBodySize = 16 * 1024

const catalogTTL = 10 * time.Minute

type server struct {
	m   *session.Manager
	svc service.Service
	now func() time.Time
}

// SetupRouter setups handlers to chi router.
func SetupRouter(m *session.Manager, svc service.Service, r chi.Router, timeout time.Duration) {
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
		m:   m,
		svc: svc,
		now: time.Now,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/sessions", srv.createSession)
		r.Route("/sessions/{id}", srv.sessionRoutes)

		r.Post("/feedback", srv.submitFeedback)
		r.Get("/feedback", srv.listFeedback)
		r.Get("/feedback/{fid}", srv.getFeedback)

		r.Get("/interests", mm.Cached(catalogTTL, srv.listInterests))
		r.Get("/views", mm.Cached(catalogTTL, srv.listViews))
	})
}

func (s server) sessionRoutes(r chi.Router) {
	r.Get("/", s.withSession(getFrame))
	r.Post("/goto/{view}", s.withSession(gotoView))
	r.Post("/back", s.withSession(back))
	r.Post("/login", s.withSession(login))
	r.Post("/logout", s.withSession(logout))
	r.Post("/register", s.withSession(register))
	r.Post("/role", s.withSession(selectRole))
	r.Post("/plan", s.withSession(setPlan))
	r.Post("/settings", s.withSession(saveSettings))
	r.Post("/profile-setup", s.withSession(finishProfileSetup))
	r.Post("/interests", s.withSession(addInterest))
	r.Delete("/interests/{tag}", s.withSession(removeInterest))
	r.Post("/age-range", s.withSession(setAgeRange))
	r.Post("/query", s.withSession(setQuery))
	r.Post("/people/{pid}", s.withSession(openPerson))
	r.Post("/chat", s.withSession(startChat))
	r.Post("/chats/{cid}", s.withSession(openChat))
	r.Post("/messages", s.withSession(sendChatMessage))
	r.Post("/events/{eid}", s.withSession(openEvent))
	r.Post("/save", s.withSession(toggleSaved))
	r.Post("/interested", s.withSession(toggleInterested))
	r.Post("/events-tab", s.withSession(setEventsTab))
	r.Post("/events", s.withSession(publishEvent))
	r.Post("/groups/{gid}", s.withSession(openGroup))
	r.Post("/group-messages", s.withSession(sendGroupMessage))
	r.Post("/location", s.withSession(s.reportLocation))
	r.Post("/bug-report", s.withSession(submitBugReport))
}
