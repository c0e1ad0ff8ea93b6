package pricing

import (
	"errors"
	"time"
)

// All billing and delivery dates are interpreted in Indian Standard Time.
var IST = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

var (
	ErrInvalidWindow = errors.New("till date is before from date")
	ErrNegativeCount = errors.New("tiffin counts must not be negative")
)

func StartOfDayIST(t time.Time) time.Time {
	t = t.In(IST)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, IST)
}

func EndOfDayIST(t time.Time) time.Time {
	t = t.In(IST)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), IST)
}

// DaysInclusive counts whole calendar days, both endpoints included.
// IST has no daylight saving, so the 24h division is exact.
func DaysInclusive(from, till time.Time) int {
	f := StartOfDayIST(from)
	t := StartOfDayIST(till)
	return int(t.Sub(f)/(24*time.Hour)) + 1
}

// ComputeTotal prices a subscription window against the region's rate card.
// PURE business logic (no store, no transport).
//
// The billing unit is a fixed 30-day month, not calendar months. Days beyond
// complete months are billed at the single per-meal daily rate against the
// full lunch and dinner counts; remainder days carry no combo discount. That
// is the rate card's actual policy, not an accident.
func (rc *RateCard) ComputeTotal(
	region string,
	fromDate time.Time,
	tillDate time.Time,
	lunchCount int,
	dinnerCount int,
) (float64, error) {

	rate, err := rc.Region(region)
	if err != nil {
		return 0, err
	}

	if lunchCount < 0 || dinnerCount < 0 {
		return 0, ErrNegativeCount
	}

	days := DaysInclusive(fromDate, tillDate)
	if days < 1 {
		return 0, ErrInvalidWindow
	}

	months := days / 30
	remainingDays := days % 30

	var total float64

	switch {
	case lunchCount > 0 && dinnerCount > 0:
		combos := lunchCount
		if dinnerCount < combos {
			combos = dinnerCount
		}

		total = rate.Monthly.Both*float64(months)*float64(combos) +
			rate.Monthly.LunchOnly*float64(months)*float64(lunchCount-combos) +
			rate.Monthly.DinnerOnly*float64(months)*float64(dinnerCount-combos) +
			rate.Daily.LunchOrDinner*float64(remainingDays)*float64(lunchCount) +
			rate.Daily.LunchOrDinner*float64(remainingDays)*float64(dinnerCount)

	case lunchCount > 0:
		total = rate.Monthly.LunchOnly*float64(months) +
			rate.Daily.LunchOrDinner*float64(lunchCount)*float64(remainingDays)

	case dinnerCount > 0:
		total = rate.Monthly.DinnerOnly*float64(months) +
			rate.Daily.LunchOrDinner*float64(dinnerCount)*float64(remainingDays)

	default:
		total = 0
	}

	return total, nil
}
