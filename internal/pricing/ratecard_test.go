package pricing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeRateCardFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pricing.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write rate card file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeRateCardFile(t, `{
		"regions": [
			{
				"name": "Anand",
				"monthly": {"both": 2400, "lunch_only": 1400, "dinner_only": 1400},
				"daily": {"lunch_or_dinner": 60}
			},
			{
				"name": "Nadiad",
				"monthly": {"both": 2000, "lunch_only": 1200, "dinner_only": 1200},
				"daily": {"lunch_or_dinner": 50}
			}
		]
	}`)

	rc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rate, err := rc.Region("Nadiad")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate.Monthly.Both != 2000 || rate.Daily.LunchOrDinner != 50 {
		t.Fatalf("unexpected rates: %+v", rate)
	}

	regions := rc.Regions()
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[0].Name != "Anand" || regions[1].Name != "Nadiad" {
		t.Fatalf("expected file order preserved, got %s, %s",
			regions[0].Name, regions[1].Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeRateCardFile(t, `{"regions": [`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid json")
	}
}

func TestNew_EmptyRegions(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty rate card")
	}
}

func TestNew_DuplicateRegion(t *testing.T) {
	_, err := New([]RegionRate{
		{Name: "Anand", Daily: DailyRates{LunchOrDinner: 60}},
		{Name: "Anand", Daily: DailyRates{LunchOrDinner: 65}},
	})
	if err == nil {
		t.Fatal("expected error for duplicate region")
	}
}

func TestNew_NegativeRate(t *testing.T) {
	_, err := New([]RegionRate{
		{Name: "Anand", Daily: DailyRates{LunchOrDinner: -1}},
	})
	if err == nil {
		t.Fatal("expected error for negative rate")
	}
}

func TestRegion_Unknown(t *testing.T) {
	rc := testRateCard(t)

	if _, err := rc.Region("Atlantis"); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
}
