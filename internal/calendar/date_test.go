package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("parses ISO dates", func(t *testing.T) {
		date, err := ParseDate("2024-06-01")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if date.String() != "2024-06-01" {
			t.Fatalf("expected round trip, got %q", date.String())
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		date, err := ParseDate("  2024-06-01  ")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if date.String() != "2024-06-01" {
			t.Fatalf("expected trimmed parse, got %q", date.String())
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, value := range []string{"", "2024-13-01", "01.06.2024", "not-a-date"} {
			if _, err := ParseDate(value); err == nil {
				t.Fatalf("expected error for %q", value)
			}
		}
	})
}

func TestDateComparisons(t *testing.T) {
	earlier := NewDate(2024, time.June, 1)
	later := NewDate(2024, time.June, 3)

	if !earlier.Before(later) {
		t.Fatalf("expected %v before %v", earlier, later)
	}
	if !later.After(earlier) {
		t.Fatalf("expected %v after %v", later, earlier)
	}
	if !earlier.Equal(NewDate(2024, time.June, 1)) {
		t.Fatalf("expected equality for identical days")
	}
	if earlier.Equal(later) {
		t.Fatalf("expected distinct days to compare unequal")
	}
}

func TestDateAddDays(t *testing.T) {
	date := NewDate(2024, time.June, 30)
	if got := date.AddDays(1).String(); got != "2024-07-01" {
		t.Fatalf("expected month rollover, got %q", got)
	}
	if got := date.AddDays(-29).String(); got != "2024-06-01" {
		t.Fatalf("expected backwards shift, got %q", got)
	}
}

func TestDateOf(t *testing.T) {
	instant := time.Date(2024, time.June, 1, 23, 45, 0, 0, time.FixedZone("X", 3*60*60))
	if got := DateOf(instant).String(); got != "2024-06-01" {
		t.Fatalf("expected UTC truncation, got %q", got)
	}
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Checkin Date `json:"checkinDate"`
	}

	t.Run("round trips through JSON", func(t *testing.T) {
		encoded, err := json.Marshal(payload{Checkin: NewDate(2024, time.July, 4)})
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(encoded) != `{"checkinDate":"2024-07-04"}` {
			t.Fatalf("unexpected encoding %s", encoded)
		}

		var decoded payload
		if err := json.Unmarshal(encoded, &decoded); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !decoded.Checkin.Equal(NewDate(2024, time.July, 4)) {
			t.Fatalf("unexpected decoded value %v", decoded.Checkin)
		}
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		var decoded payload
		if err := json.Unmarshal([]byte(`{"checkinDate":"04/07/2024"}`), &decoded); err == nil {
			t.Fatalf("expected error for malformed date")
		}
	})
}
