package order

import (
	"errors"
	"time"

	"github.com/shadow2411/psfoundation/internal/pricing"
)

// --------------------------------------------------
// MEAL
// --------------------------------------------------

type Meal string

const (
	MealLunch  Meal = "lunch"
	MealDinner Meal = "dinner"
)

var ErrInvalidMeal = errors.New("meal must be lunch or dinner")

func ParseMeal(s string) (Meal, error) {
	switch Meal(s) {
	case MealLunch, MealDinner:
		return Meal(s), nil
	default:
		return "", ErrInvalidMeal
	}
}

// --------------------------------------------------
// PAYMENT STATUS
// --------------------------------------------------

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentReceived PaymentStatus = "received"
)

// --------------------------------------------------
// TIFFIN ORDER (PERSISTED ENTITY)
// --------------------------------------------------

type Order struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	MobileNumber  string        `json:"mobile_number"`
	Region        string        `json:"region"`
	Village       string        `json:"village"`
	FromDate      time.Time     `json:"from_date"`
	TillDate      time.Time     `json:"till_date"`
	LunchCount    int           `json:"lunch_count"`
	DinnerCount   int           `json:"dinner_count"`
	TotalBill     float64       `json:"total_bill"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (o *Order) MealCount(meal Meal) int {
	if meal == MealDinner {
		return o.DinnerCount
	}
	return o.LunchCount
}

// ActiveFor reports whether the order owes a delivery of the given meal at
// the given instant. Correct only because FromDate/TillDate are stored as
// IST day boundaries (see NormalizeWindow).
func (o *Order) ActiveFor(meal Meal, at time.Time) bool {
	if o.MealCount(meal) <= 0 {
		return false
	}
	return !at.Before(o.FromDate) && !at.After(o.TillDate)
}

// NormalizeWindow applies the single date rule for every insert path:
// from floored to 00:00:00 IST, till raised to end of day IST. Client
// time-of-day is never trusted.
func NormalizeWindow(fromDate, tillDate time.Time) (time.Time, time.Time) {
	return pricing.StartOfDayIST(fromDate), pricing.EndOfDayIST(tillDate)
}
