package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.registerPage)

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version/", h.version)

		r.Route("/register", func(r chi.Router) {
			r.Post("/blur/{field}", h.blur)
			r.Post("/input/{field}", h.input)
			r.Post("/submit", h.submit)
			r.Get("/remembered", h.remembered)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
