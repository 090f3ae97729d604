package domain

import (
	"context"
	"strings"
)

// Customer — гость ресторана, который может держать резервы.
type Customer struct {
	// ID равен нулю, пока клиент не сохранён.
	ID        int64
	FirstName string
	LastName  string
	// Phone и Notes допускают NULL в хранилище.
	Phone *string
	Notes *string
	// NumReservations заполняется только выборкой топ-10.
	NumReservations int
}

// FullName склеивает имя и фамилию. Считается при каждом чтении,
// поэтому изменения FirstName/LastName видны сразу.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// IsNew сообщает, что клиент ещё не записан в хранилище.
func (c Customer) IsNew() bool {
	return c.ID == 0
}

// Validate проверяет обязательные поля клиента перед сохранением.
func (c Customer) Validate() []error {
	var errs []error

	if strings.TrimSpace(c.FirstName) == "" {
		errs = append(errs, ErrFirstNameRequired)
	}
	if strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, ErrLastNameRequired)
	}

	return errs
}

// Reservations возвращает все резервы клиента через переданный lister.
func (c Customer) Reservations(ctx context.Context, lister ReservationLister) ([]*Reservation, error) {
	return lister.ListForCustomer(ctx, c.ID)
}
