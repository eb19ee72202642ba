// Package http implements the HTTP transport layer of the paste service.
// It provides middleware, route handlers, and request/response utilities
// for the public API. Logging, tracing, and compression concerns are all
// handled at this layer before requests reach the core engine; no
// authentication layer exists here since the system has no user accounts
// (spec Non-goal).
package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init constructs and returns a fully configured [chi.Mux] router serving
// every endpoint named in SPEC_FULL.md §6.
//
// # Global middleware
//
// Every request passes through the following middleware chain in order:
//   - [middleware.Recoverer] — catches panics in handlers, logs the stack
//     trace, and returns HTTP 500 to the client so the server stays alive.
//   - [Handler.withTraceID] — resolves or generates a trace ID and stores
//     an enriched logger in the request context for structured tracing.
//   - withLogging — emits a structured access-log entry (URI, method,
//     status, duration, response size) after each request completes.
//   - withGZip — transparently decompresses gzip-encoded request bodies and
//     compresses response bodies for clients that advertise gzip support.
//
// # Routes
//
//	POST /                             — create a paste (or a bundle).
//	GET  /raw/{id}                     — run every gate and return the
//	                                     decrypted body as text/plain.
//	GET  /api/pastes/{id}              — run every gate and return the
//	                                     decrypted body as JSON.
//	POST /api/pastes/{id}/anchor       — build and submit an anchor manifest.
//	GET  /api/stats/summary            — return store-wide statistics.
//
// # Method-not-allowed behaviour
//
// [CheckHTTPMethod] is registered as the MethodNotAllowed handler. It
// overrides chi's default HTTP 405 response and returns HTTP 404 instead,
// preventing callers from discovering which HTTP methods are supported on
// a given route through error-code enumeration.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging, withGZip)

	router.Post("/", h.create)
	router.Get("/raw/{id}", h.showRaw)

	router.Route("/api", func(api chi.Router) {
		api.Route("/pastes", func(pastes chi.Router) {
			pastes.Get("/{id}", h.show)
			pastes.Post("/{id}/anchor", h.anchorPaste)
		})

		api.Route("/stats", func(stats chi.Router) {
			stats.Get("/summary", h.statsSummary)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
