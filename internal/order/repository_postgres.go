package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new tiffin order
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO tiffin_orders (
			id,
			name,
			mobile_number,
			region,
			village,
			from_date,
			till_date,
			lunch_count,
			dinner_count,
			total_bill,
			payment_status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING created_at
	`,
		order.ID,
		order.Name,
		order.MobileNumber,
		order.Region,
		order.Village,
		order.FromDate,
		order.TillDate,
		order.LunchCount,
		order.DinnerCount,
		order.TotalBill,
		order.PaymentStatus,
	).Scan(&order.CreatedAt)
}

// --------------------------------------------------
// Today's deliveries for a meal
// --------------------------------------------------
func (r *PostgresRepository) FindActive(
	ctx context.Context,
	meal Meal,
	asOf time.Time,
) ([]*Order, error) {

	// meal is a validated enum upstream; the column name never comes
	// from raw request input.
	countColumn := "lunch_count"
	if meal == MealDinner {
		countColumn = "dinner_count"
	}

	query := fmt.Sprintf(`
		SELECT
			id,
			name,
			mobile_number,
			region,
			village,
			from_date,
			till_date,
			lunch_count,
			dinner_count,
			total_bill,
			payment_status,
			created_at
		FROM tiffin_orders
		WHERE from_date <= $1
		  AND till_date >= $1
		  AND %s > 0
		ORDER BY village DESC
	`, countColumn)

	rows, err := r.db.Query(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// --------------------------------------------------
// All orders, most recently started first
// --------------------------------------------------
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			name,
			mobile_number,
			region,
			village,
			from_date,
			till_date,
			lunch_count,
			dinner_count,
			total_bill,
			payment_status,
			created_at
		FROM tiffin_orders
		ORDER BY from_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// --------------------------------------------------
// Payment status flip (idempotent, one-way)
// --------------------------------------------------
func (r *PostgresRepository) UpdatePaymentStatus(
	ctx context.Context,
	id string,
	status PaymentStatus,
) (*Order, error) {

	var o Order
	err := r.db.QueryRow(ctx, `
		UPDATE tiffin_orders
		SET payment_status = $1
		WHERE id = $2
		RETURNING
			id,
			name,
			mobile_number,
			region,
			village,
			from_date,
			till_date,
			lunch_count,
			dinner_count,
			total_bill,
			payment_status,
			created_at
	`, status, id).Scan(
		&o.ID,
		&o.Name,
		&o.MobileNumber,
		&o.Region,
		&o.Village,
		&o.FromDate,
		&o.TillDate,
		&o.LunchCount,
		&o.DinnerCount,
		&o.TotalBill,
		&o.PaymentStatus,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return &o, nil
}

func scanOrders(rows pgx.Rows) ([]*Order, error) {
	var orders []*Order

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.Name,
			&o.MobileNumber,
			&o.Region,
			&o.Village,
			&o.FromDate,
			&o.TillDate,
			&o.LunchCount,
			&o.DinnerCount,
			&o.TotalBill,
			&o.PaymentStatus,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}
