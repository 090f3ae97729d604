package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
)

// Store держит таблицы customers и reservations в памяти.
// Репозитории разделяют один Store, чтобы топ-10 мог «джойнить» обе таблицы.
type Store struct {
	mu sync.RWMutex

	customers    map[int64]domain.Customer
	reservations map[int64]domain.Reservation

	nextCustomerID    int64
	nextReservationID int64
}

// NewStore создаёт пустое in-memory хранилище для локальной разработки и тестов.
func NewStore() *Store {
	return &Store{
		customers:    make(map[int64]domain.Customer),
		reservations: make(map[int64]domain.Reservation),
	}
}

func cloneCustomer(c domain.Customer) domain.Customer {
	c.Phone = cloneString(c.Phone)
	c.Notes = cloneString(c.Notes)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
