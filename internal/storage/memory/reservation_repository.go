package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
)

type reservationRepositoryInMemory struct {
	store *Store
}

// NewReservationRepository возвращает репозиторий резервов поверх общего Store.
func NewReservationRepository(store *Store) domain.ReservationRepository {
	return &reservationRepositoryInMemory{store: store}
}

// Get возвращает копию резерва или NotFoundError.
func (r *reservationRepositoryInMemory) Get(_ context.Context, id int64) (*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return nil, domain.NewNotFoundError("No such reservation: %d", id)
	}
	return &res, nil
}

// ListForCustomer возвращает резервы клиента в порядке вставки.
func (r *reservationRepositoryInMemory) ListForCustomer(_ context.Context, customerID int64) ([]*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Reservation, 0)
	for _, res := range r.store.reservations {
		if res.CustomerID() != customerID {
			continue
		}
		res := res
		result = append(result, &res)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}

// Save проверяет инварианты и ссылку на клиента, затем вставляет или обновляет резерв.
func (r *reservationRepositoryInMemory) Save(_ context.Context, reservation *domain.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[reservation.CustomerID()]; !ok {
		return domain.NewNotFoundError("No such customer: %d", reservation.CustomerID())
	}

	if reservation.IsNew() {
		r.store.nextReservationID++
		reservation.SetID(r.store.nextReservationID)
		r.store.reservations[reservation.ID()] = *reservation
		return nil
	}

	if _, ok := r.store.reservations[reservation.ID()]; !ok {
		return domain.NewNotFoundError("No such reservation: %d", reservation.ID())
	}
	r.store.reservations[reservation.ID()] = *reservation
	return nil
}

var _ domain.ReservationRepository = (*reservationRepositoryInMemory)(nil)
