package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
)

const topCustomersLimit = 10

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type customerRepository struct {
	db Querier
}

// NewCustomerRepository создаёт PostgreSQL-реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return newCustomerRepository(store.DB())
}

func newCustomerRepository(db Querier) *customerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, phone, notes
		FROM customers
		WHERE CONCAT(first_name, ' ', last_name) ILIKE $1 ESCAPE '\'
		ORDER BY last_name, first_name
	`, searchPattern(query))
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var row customerRow
		if err := rows.Scan(&row.ID, &row.FirstName, &row.LastName, &row.Phone, &row.Notes); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Get(ctx context.Context, id int64) (domain.Customer, error) {
	var row customerRow
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, phone, notes
		FROM customers
		WHERE id = $1
	`, id).Scan(&row.ID, &row.FirstName, &row.LastName, &row.Phone, &row.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.NewNotFoundError("No such customer: %d", id)
		}
		return domain.Customer{}, fmt.Errorf("select customer: %w", err)
	}

	return row.toDomain(), nil
}

func (r *customerRepository) TopTenByMostReservations(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.first_name, c.last_name, c.phone, c.notes,
		       COUNT(r.customer_id) AS num_reservations
		FROM customers AS c
		INNER JOIN reservations AS r ON r.customer_id = c.id
		GROUP BY c.id
		ORDER BY COUNT(r.customer_id) DESC
		LIMIT $1
	`, topCustomersLimit)
	if err != nil {
		return nil, fmt.Errorf("select top customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0, topCustomersLimit)
	for rows.Next() {
		var row customerRow
		if err := rows.Scan(
			&row.ID, &row.FirstName, &row.LastName, &row.Phone, &row.Notes, &row.NumReservations,
		); err != nil {
			return nil, fmt.Errorf("scan top customer row: %w", err)
		}
		customers = append(customers, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top customer rows: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	if customer.IsNew() {
		var id int64
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO customers (first_name, last_name, phone, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			customer.FirstName, customer.LastName,
			toNullString(customer.Phone), toNullString(customer.Notes),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		customer.ID = id
		return nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET first_name = $1,
		    last_name = $2,
		    phone = $3,
		    notes = $4
		WHERE id = $5
	`,
		customer.FirstName, customer.LastName,
		toNullString(customer.Phone), toNullString(customer.Notes),
		customer.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("No such customer: %d", customer.ID)
	}

	return nil
}

// searchPattern строит ILIKE-шаблон; спецсимволы запроса экранируются,
// чтобы поиск оставался поиском подстроки.
func searchPattern(query string) string {
	if query == "" {
		return "%"
	}
	return "%" + likeEscaper.Replace(query) + "%"
}

var _ domain.CustomerRepository = (*customerRepository)(nil)
