package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	got := DateKey(time.Date(2024, 3, 1, 23, 30, 0, 0, loc))
	if got != "2024-03-02" {
		t.Errorf("DateKey = %q, want 2024-03-02", got)
	}
}

func TestWordIndexDeterministicAndBounded(t *testing.T) {
	d := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	a := WordIndex(d, "salt", 100)
	b := WordIndex(d, "salt", 100)
	if a != b {
		t.Errorf("same inputs gave %d and %d", a, b)
	}
	if a < 0 || a >= 100 {
		t.Errorf("index %d out of range", a)
	}
	// Any clock time on the same UTC day maps to the same index.
	later := time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC)
	if WordIndex(later, "salt", 100) != a {
		t.Error("index changed within the same day")
	}
}

func TestWordIndexDegenerateLen(t *testing.T) {
	d := time.Now()
	if got := WordIndex(d, "salt", 0); got != 0 {
		t.Errorf("len 0: got %d", got)
	}
	if got := WordIndex(d, "salt", -3); got != 0 {
		t.Errorf("negative len: got %d", got)
	}
}
