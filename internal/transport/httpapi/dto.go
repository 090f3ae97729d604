package httpapi

import (
	"time"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
)

type customerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

func (r customerRequest) applyTo(c *domain.Customer) {
	c.FirstName = r.FirstName
	c.LastName = r.LastName
	c.Phone = r.Phone
	c.Notes = r.Notes
}

type customerResponse struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	FullName        string  `json:"full_name"`
	Phone           *string `json:"phone"`
	Notes           *string `json:"notes"`
	NumReservations int     `json:"num_reservations,omitempty"`
}

func newCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		FullName:        c.FullName(),
		Phone:           c.Phone,
		Notes:           c.Notes,
		NumReservations: c.NumReservations,
	}
}

func newCustomerListResponse(customers []domain.Customer) []customerResponse {
	out := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, newCustomerResponse(c))
	}
	return out
}

type reservationRequest struct {
	CustomerID *int64  `json:"customer_id,omitempty"`
	NumGuests  int     `json:"num_guests"`
	StartAt    string  `json:"start_at"`
	Notes      *string `json:"notes"`
}

type reservationResponse struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customer_id"`
	NumGuests      int       `json:"num_guests"`
	StartAt        time.Time `json:"start_at"`
	StartAtDisplay string    `json:"start_at_display"`
	StartAtEdit    string    `json:"start_at_edit"`
	Notes          string    `json:"notes"`
}

func newReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:             r.ID(),
		CustomerID:     r.CustomerID(),
		NumGuests:      r.NumGuests(),
		StartAt:        r.StartAt(),
		StartAtDisplay: r.FormattedStartAt(),
		StartAtEdit:    r.UnformattedStartAt(),
		Notes:          r.Notes(),
	}
}

func newReservationListResponse(reservations []*domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, newReservationResponse(r))
	}
	return out
}

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}
