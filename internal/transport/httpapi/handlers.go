package httpapi

import (
	"net/http"
	"time"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
	"github.com/vladislavdragonenkov/lunchly/internal/service/booking"
)

// Handler обслуживает REST-маршруты клиентов и резервов поверх booking.Service.
type Handler struct {
	service  *booking.Service
	location *time.Location
}

// NewHandler создаёт обработчик. Даты без часового пояса разбираются в loc.
func NewHandler(service *booking.Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{service: service, location: loc}
}

func (h *Handler) searchCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.SearchCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCustomerListResponse(customers))
}

func (h *Handler) topCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.TopCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCustomerListResponse(customers))
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCustomerResponse(customer))
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var customer domain.Customer
	req.applyTo(&customer)
	if err := h.service.SaveCustomer(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCustomerResponse(customer))
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	req.applyTo(&customer)
	if err := h.service.SaveCustomer(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCustomerResponse(customer))
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	reservations, err := h.service.CustomerReservations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReservationListResponse(reservations))
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	customerID, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.CustomerID != nil && *req.CustomerID != customerID {
		writeError(w, domain.NewBadRequestError(domain.ErrReservationNotTransferable))
		return
	}

	startAt, err := domain.ParseStartAt(req.StartAt, h.location)
	if err != nil {
		writeError(w, err)
		return
	}

	reservation, err := domain.NewReservation(domain.ReservationParams{
		CustomerID: customerID,
		NumGuests:  req.NumGuests,
		StartAt:    startAt,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.SaveReservation(r.Context(), reservation); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newReservationResponse(reservation))
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReservationResponse(reservation))
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	// Смена клиента у существующего резерва запрещена; сеттер вернёт 400.
	if req.CustomerID != nil && *req.CustomerID != reservation.CustomerID() {
		if err := reservation.SetCustomerID(*req.CustomerID); err != nil {
			writeError(w, err)
			return
		}
	}
	if err := reservation.SetNumGuests(req.NumGuests); err != nil {
		writeError(w, err)
		return
	}
	startAt, err := domain.ParseStartAt(req.StartAt, h.location)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := reservation.SetStartAt(startAt); err != nil {
		writeError(w, err)
		return
	}
	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}
	reservation.SetNotes(notes)

	if err := h.service.SaveReservation(r.Context(), reservation); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReservationResponse(reservation))
}
