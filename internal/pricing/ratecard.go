package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var ErrUnknownRegion = errors.New("unknown region")

// New validates the region entries and builds the lookup table.
func New(regions []RegionRate) (*RateCard, error) {
	if len(regions) == 0 {
		return nil, errors.New("rate card has no regions")
	}

	rc := &RateCard{
		byName: make(map[string]RegionRate, len(regions)),
	}

	for _, r := range regions {
		if r.Name == "" {
			return nil, errors.New("rate card region with empty name")
		}
		if _, exists := rc.byName[r.Name]; exists {
			return nil, fmt.Errorf("duplicate rate card region: %s", r.Name)
		}
		if r.Monthly.Both < 0 || r.Monthly.LunchOnly < 0 ||
			r.Monthly.DinnerOnly < 0 || r.Daily.LunchOrDinner < 0 {
			return nil, fmt.Errorf("negative rate for region: %s", r.Name)
		}

		rc.byName[r.Name] = r
		rc.names = append(rc.names, r.Name)
	}

	return rc, nil
}

// Load reads the rate card JSON file.
func Load(path string) (*RateCard, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Regions []RegionRate `json:"regions"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("invalid rate card file: %w", err)
	}

	return New(file.Regions)
}

// Region resolves a region by exact name.
func (rc *RateCard) Region(name string) (RegionRate, error) {
	rate, ok := rc.byName[name]
	if !ok {
		return RegionRate{}, ErrUnknownRegion
	}
	return rate, nil
}

// Regions returns the entries in file order, for the registration form.
func (rc *RateCard) Regions() []RegionRate {
	regions := make([]RegionRate, 0, len(rc.names))
	for _, name := range rc.names {
		regions = append(regions, rc.byName[name])
	}
	return regions
}
