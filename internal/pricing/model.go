package pricing

// --------------------------------------------------
// RATE CARD (STATIC, REGION-KEYED)
// --------------------------------------------------

type MonthlyRates struct {
	Both       float64 `json:"both"`
	LunchOnly  float64 `json:"lunch_only"`
	DinnerOnly float64 `json:"dinner_only"`
}

type DailyRates struct {
	LunchOrDinner float64 `json:"lunch_or_dinner"`
}

type RegionRate struct {
	Name    string       `json:"name"`
	Monthly MonthlyRates `json:"monthly"`
	Daily   DailyRates   `json:"daily"`
}

// RateCard is loaded once at startup and never mutated afterwards.
type RateCard struct {
	byName map[string]RegionRate
	names  []string
}
