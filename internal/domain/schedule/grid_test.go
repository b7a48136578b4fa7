package schedule

import (
	"testing"
	"time"
)

func TestBuildMonthGrid_LeadingPlaceholders(t *testing.T) {
	cases := []struct {
		name        string
		ref         time.Time
		wantLeading int
		wantDays    int
	}{
		// Enero 2024 arranca un lunes.
		{"january 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 1, 31},
		// Septiembre 2024 arranca un domingo: sin placeholders.
		{"september 2024", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), 0, 30},
		// Junio 2024 arranca un sábado: máximo de placeholders.
		{"june 2024", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 6, 30},
		{"february leap year", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 4, 29},
		{"february non-leap year", time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC), 3, 28},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cells := BuildMonthGrid(tc.ref)

			if len(cells) != tc.wantLeading+tc.wantDays {
				t.Fatalf("expected %d cells, got %d", tc.wantLeading+tc.wantDays, len(cells))
			}

			for i := 0; i < tc.wantLeading; i++ {
				if cells[i] != nil {
					t.Fatalf("cell %d: expected nil placeholder, got %v", i, cells[i])
				}
			}

			firstOfMonth := time.Date(tc.ref.Year(), tc.ref.Month(), 1, 0, 0, 0, 0, tc.ref.Location())
			if tc.wantLeading != int(firstOfMonth.Weekday()) {
				t.Fatalf("test data inconsistent: leading=%d weekday=%d", tc.wantLeading, firstOfMonth.Weekday())
			}

			for day := 1; day <= tc.wantDays; day++ {
				c := cells[tc.wantLeading+day-1]
				if c == nil {
					t.Fatalf("day %d: expected a date, got nil", day)
				}
				if c.Day() != day || c.Month() != tc.ref.Month() || c.Year() != tc.ref.Year() {
					t.Fatalf("day %d: got %s", day, c.Format("2006-01-02"))
				}
			}
		})
	}
}

func TestBuildMonthGrid_ConsecutiveDates(t *testing.T) {
	cells := BuildMonthGrid(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	var prev *time.Time
	for _, c := range cells {
		if c == nil {
			continue
		}
		if prev != nil {
			if got := c.Sub(*prev); got != 24*time.Hour {
				t.Fatalf("non-consecutive dates: %s -> %s", prev.Format("2006-01-02"), c.Format("2006-01-02"))
			}
		}
		prev = c
	}
}

func TestBuildMonthGrid_OnlyYearAndMonthMatter(t *testing.T) {
	a := BuildMonthGrid(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	b := BuildMonthGrid(time.Date(2024, 5, 28, 23, 59, 0, 0, time.UTC))

	if len(a) != len(b) {
		t.Fatalf("grids differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		switch {
		case a[i] == nil && b[i] == nil:
		case a[i] != nil && b[i] != nil && a[i].Equal(*b[i]):
		default:
			t.Fatalf("cell %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
