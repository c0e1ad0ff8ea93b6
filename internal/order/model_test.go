package order

import (
	"errors"
	"testing"
	"time"

	"github.com/shadow2411/psfoundation/internal/pricing"
)

func TestParseMeal(t *testing.T) {
	if m, err := ParseMeal("lunch"); err != nil || m != MealLunch {
		t.Fatalf("expected lunch, got %v (%v)", m, err)
	}
	if m, err := ParseMeal("dinner"); err != nil || m != MealDinner {
		t.Fatalf("expected dinner, got %v (%v)", m, err)
	}
	if _, err := ParseMeal("breakfast"); !errors.Is(err, ErrInvalidMeal) {
		t.Fatalf("expected ErrInvalidMeal, got %v", err)
	}
	if _, err := ParseMeal(""); !errors.Is(err, ErrInvalidMeal) {
		t.Fatalf("expected ErrInvalidMeal for empty meal, got %v", err)
	}
}

func TestActiveFor_WindowAndMeal(t *testing.T) {
	day0 := time.Date(2025, time.March, 1, 0, 0, 0, 0, pricing.IST)
	from, till := NormalizeWindow(day0, day0.AddDate(0, 0, 29))

	o := &Order{
		FromDate:    from,
		TillDate:    till,
		LunchCount:  1,
		DinnerCount: 0,
	}

	mid := day0.AddDate(0, 0, 15).Add(12 * time.Hour)

	if !o.ActiveFor(MealLunch, mid) {
		t.Error("expected order active for lunch inside window")
	}
	if o.ActiveFor(MealDinner, mid) {
		t.Error("expected order inactive for dinner, dinner count is zero")
	}
	if o.ActiveFor(MealLunch, day0.AddDate(0, 0, 30).Add(12*time.Hour)) {
		t.Error("expected order inactive the day after the window")
	}
}

func TestActiveFor_WindowEndpoints(t *testing.T) {
	day0 := time.Date(2025, time.March, 1, 0, 0, 0, 0, pricing.IST)
	from, till := NormalizeWindow(day0, day0)

	o := &Order{FromDate: from, TillDate: till, DinnerCount: 2}

	// Any instant of the single subscribed day counts, up to end of day.
	if !o.ActiveFor(MealDinner, day0.Add(20*time.Hour)) {
		t.Error("expected order active late on its only day")
	}
	if o.ActiveFor(MealDinner, day0.Add(-time.Second)) {
		t.Error("expected order inactive before its day starts")
	}
	if o.ActiveFor(MealDinner, day0.AddDate(0, 0, 1)) {
		t.Error("expected order inactive at the next day's midnight")
	}
}

func TestNormalizeWindow(t *testing.T) {
	// Client-supplied time-of-day is discarded on both ends.
	from := time.Date(2025, time.March, 1, 14, 30, 0, 0, pricing.IST)
	till := time.Date(2025, time.March, 5, 9, 0, 0, 0, pricing.IST)

	gotFrom, gotTill := NormalizeWindow(from, till)

	wantFrom := time.Date(2025, time.March, 1, 0, 0, 0, 0, pricing.IST)
	if !gotFrom.Equal(wantFrom) {
		t.Errorf("expected from %v, got %v", wantFrom, gotFrom)
	}

	wantTill := time.Date(2025, time.March, 5, 23, 59, 59, int(time.Second-time.Nanosecond), pricing.IST)
	if !gotTill.Equal(wantTill) {
		t.Errorf("expected till %v, got %v", wantTill, gotTill)
	}
}
