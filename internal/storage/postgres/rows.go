package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
)

const (
	pgCodeForeignKeyViolation = "23503"
)

// customerRow повторяет строку customers в том виде, как её отдаёт драйвер.
type customerRow struct {
	ID              int64
	FirstName       string
	LastName        string
	Phone           sql.NullString
	Notes           sql.NullString
	NumReservations int
}

func (r customerRow) toDomain() domain.Customer {
	return domain.Customer{
		ID:              r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           nullableString(r.Phone),
		Notes:           nullableString(r.Notes),
		NumReservations: r.NumReservations,
	}
}

// reservationRow — строка таблицы reservations.
type reservationRow struct {
	ID         int64
	CustomerID int64
	NumGuests  int
	StartAt    time.Time
	Notes      sql.NullString
}

// toDomain прогоняет строку через конструктор, так что инварианты
// действуют и для данных, прочитанных из базы.
func (r reservationRow) toDomain() (*domain.Reservation, error) {
	return domain.NewReservation(domain.ReservationParams{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		NumGuests:  r.NumGuests,
		StartAt:    r.StartAt,
		Notes:      nullableString(r.Notes),
	})
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCodeForeignKeyViolation
	}
	return false
}
