package domain

import "context"

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	// Search ищет клиентов по подстроке «имя фамилия» без учёта регистра.
	// Пустой запрос возвращает всех; отсутствие совпадений — пустой срез, не ошибка.
	Search(ctx context.Context, query string) ([]Customer, error)
	// Get возвращает клиента по идентификатору или NotFoundError.
	Get(ctx context.Context, id int64) (Customer, error)
	// TopTenByMostReservations возвращает до десяти клиентов с наибольшим числом резервов.
	TopTenByMostReservations(ctx context.Context) ([]Customer, error)
	// Save вставляет клиента при ID == 0 (и проставляет ID) или обновляет его.
	Save(ctx context.Context, customer *Customer) error
}

// ReservationLister отдаёт резервы клиента; его достаточно для Customer.Reservations.
type ReservationLister interface {
	ListForCustomer(ctx context.Context, customerID int64) ([]*Reservation, error)
}

// ReservationRepository описывает требования к хранилищу резервов.
type ReservationRepository interface {
	ReservationLister
	// Get возвращает резерв по идентификатору или NotFoundError.
	Get(ctx context.Context, id int64) (*Reservation, error)
	// Save проверяет инварианты и вставляет или обновляет резерв.
	Save(ctx context.Context, reservation *Reservation) error
}
