package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
)

const topCustomersLimit = 10

type customerRepositoryInMemory struct {
	store *Store
}

// NewCustomerRepository возвращает репозиторий клиентов поверх общего Store.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepositoryInMemory{store: store}
}

// Search ищет подстроку в «имя фамилия» без учёта регистра, сортируя по фамилии и имени.
func (r *customerRepositoryInMemory) Search(_ context.Context, query string) ([]domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	needle := strings.ToLower(query)
	result := make([]domain.Customer, 0)
	for _, c := range r.store.customers {
		if !strings.Contains(strings.ToLower(c.FullName()), needle) {
			continue
		}
		result = append(result, cloneCustomer(c))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].LastName != result[j].LastName {
			return result[i].LastName < result[j].LastName
		}
		if result[i].FirstName != result[j].FirstName {
			return result[i].FirstName < result[j].FirstName
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Get возвращает клиента или NotFoundError.
func (r *customerRepositoryInMemory) Get(_ context.Context, id int64) (domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.customers[id]
	if !ok {
		return domain.Customer{}, domain.NewNotFoundError("No such customer: %d", id)
	}
	return cloneCustomer(c), nil
}

// TopTenByMostReservations повторяет INNER JOIN + GROUP BY: клиенты без резервов не попадают.
func (r *customerRepositoryInMemory) TopTenByMostReservations(_ context.Context) ([]domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[int64]int)
	for _, res := range r.store.reservations {
		counts[res.CustomerID()]++
	}

	result := make([]domain.Customer, 0, len(counts))
	for id, n := range counts {
		c, ok := r.store.customers[id]
		if !ok {
			continue
		}
		c = cloneCustomer(c)
		c.NumReservations = n
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].NumReservations != result[j].NumReservations {
			return result[i].NumReservations > result[j].NumReservations
		}
		return result[i].ID < result[j].ID
	})

	if len(result) > topCustomersLimit {
		result = result[:topCustomersLimit]
	}
	return result, nil
}

// Save вставляет нового клиента с очередным ID или перезаписывает существующего.
func (r *customerRepositoryInMemory) Save(_ context.Context, customer *domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneCustomer(*customer)
	stored.NumReservations = 0

	if customer.IsNew() {
		r.store.nextCustomerID++
		stored.ID = r.store.nextCustomerID
		r.store.customers[stored.ID] = stored
		customer.ID = stored.ID
		return nil
	}

	if _, ok := r.store.customers[customer.ID]; !ok {
		return domain.NewNotFoundError("No such customer: %d", customer.ID)
	}
	r.store.customers[customer.ID] = stored
	return nil
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
