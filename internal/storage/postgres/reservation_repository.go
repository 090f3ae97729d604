package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
)

type reservationRepository struct {
	db Querier
}

// NewReservationRepository создаёт PostgreSQL-реализацию ReservationRepository.
func NewReservationRepository(store *Store) domain.ReservationRepository {
	return newReservationRepository(store.DB())
}

func newReservationRepository(db Querier) *reservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	var row reservationRow
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, num_guests, start_at, notes
		FROM reservations
		WHERE id = $1
	`, id).Scan(&row.ID, &row.CustomerID, &row.NumGuests, &row.StartAt, &row.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("No such reservation: %d", id)
		}
		return nil, fmt.Errorf("select reservation: %w", err)
	}

	reservation, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("map reservation %d: %w", id, err)
	}
	return reservation, nil
}

func (r *reservationRepository) ListForCustomer(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, num_guests, start_at, notes
		FROM reservations
		WHERE customer_id = $1
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		var row reservationRow
		if err := rows.Scan(&row.ID, &row.CustomerID, &row.NumGuests, &row.StartAt, &row.Notes); err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservation, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("map reservation %d: %w", row.ID, err)
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return err
	}

	if reservation.IsNew() {
		var id int64
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO reservations (customer_id, num_guests, start_at, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			reservation.CustomerID(), reservation.NumGuests(),
			reservation.StartAt(), reservation.Notes(),
		).Scan(&id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.NewNotFoundError("No such customer: %d", reservation.CustomerID())
			}
			return fmt.Errorf("insert reservation: %w", err)
		}
		reservation.SetID(id)
		return nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE reservations
		SET customer_id = $1,
		    num_guests = $2,
		    start_at = $3,
		    notes = $4
		WHERE id = $5
	`,
		reservation.CustomerID(), reservation.NumGuests(),
		reservation.StartAt(), reservation.Notes(),
		reservation.ID(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError("No such customer: %d", reservation.CustomerID())
		}
		return fmt.Errorf("update reservation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("No such reservation: %d", reservation.ID())
	}

	return nil
}

var _ domain.ReservationRepository = (*reservationRepository)(nil)
