package domain

import "time"

// EventType — тип доменного события.
type EventType string

const (
	EventTypeCustomerSaved    EventType = "customer.saved"
	EventTypeReservationSaved EventType = "reservation.saved"
)

// Event описывает факт успешной записи сущности.
type Event struct {
	Type       EventType `json:"event_type"`
	EntityID   int64     `json:"entity_id"`
	CustomerID int64     `json:"customer_id"`
	Created    bool      `json:"created"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventPublisher публикует доменные события наружу.
type EventPublisher interface {
	Publish(event Event) error
}
