package order

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, order *Order) error

	// FindActive returns orders whose window covers asOf and whose count
	// for the given meal is above zero, village descending.
	FindActive(ctx context.Context, meal Meal, asOf time.Time) ([]*Order, error)

	// ListAll returns every order, most recently started first.
	ListAll(ctx context.Context) ([]*Order, error)

	// UpdatePaymentStatus sets the status and returns the updated order,
	// or ErrOrderNotFound when the id does not resolve.
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) (*Order, error)
}
