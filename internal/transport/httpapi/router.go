package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// NewRouter собирает chi-роутер REST API.
func NewRouter(h *Handler, logger *log.Entry) http.Handler {
	if logger == nil {
		logger = log.New().WithField("component", "http")
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.searchCustomers)
		r.Post("/", h.createCustomer)
		r.Get("/top", h.topCustomers)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getCustomer)
			r.Put("/", h.updateCustomer)
			r.Get("/reservations", h.listReservations)
			r.Post("/reservations", h.createReservation)
		})
	})

	r.Route("/reservations/{id}", func(r chi.Router) {
		r.Get("/", h.getReservation)
		r.Put("/", h.updateReservation)
	})

	return r
}
