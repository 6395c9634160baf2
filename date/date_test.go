package date

import "testing"

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestAddYears(t *testing.T) {
	cases := []struct {
		in    Date
		years int
		want  string
	}{
		{New(2023, 3, 15), 1, "2024-03-15"},
		{New(2023, 12, 28), 1, "2024-12-28"},
		// Feb 29 normalizes forward on non-leap years.
		{New(2024, 2, 29), 1, "2025-03-01"},
		{New(2025, 6, 1), -2, "2023-06-01"},
	}
	for _, c := range cases {
		if got := c.in.AddYears(c.years).String(); got != c.want {
			t.Errorf("%s.AddYears(%d) = %s, want %s", c.in, c.years, got, c.want)
		}
	}
}

func TestYearMonth(t *testing.T) {
	if got := New(2024, 3, 5).YearMonth(); got != "2024-03" {
		t.Errorf("YearMonth() = %q, want %q", got, "2024-03")
	}
	if got := New(987, 11, 30).YearMonth(); got != "0987-11" {
		t.Errorf("YearMonth() = %q, want %q", got, "0987-11")
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d.String() != "2025-07-01" {
		t.Errorf("Parse() = %s, want 2025-07-01", d)
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Errorf("Parse() expected error for invalid input")
	}
}
