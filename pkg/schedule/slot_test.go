package schedule

import (
	"testing"
	"time"
)

func TestParseSlot(t *testing.T) {
	slot, err := ParseSlot("8.00 - 9.30")
	if err != nil {
		t.Fatalf("ParseSlot failed: %v", err)
	}

	if slot.StartHour != 8 || slot.StartMinute != 0 {
		t.Errorf("expected start 8:00, got %d:%02d", slot.StartHour, slot.StartMinute)
	}
	if slot.EndHour != 9 || slot.EndMinute != 30 {
		t.Errorf("expected end 9:30, got %d:%02d", slot.EndHour, slot.EndMinute)
	}
	if slot.Raw != "8.00 - 9.30" {
		t.Errorf("expected raw key to be preserved, got %q", slot.Raw)
	}
}

func TestParseSlotRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "8.00", "8:00 - 9:30", "Montag"} {
		if _, err := ParseSlot(raw); err == nil {
			t.Errorf("expected ParseSlot(%q) to fail", raw)
		}
	}
}

func TestParseWeekLabel(t *testing.T) {
	week, err := ParseWeekLabel("3. KW")
	if err != nil {
		t.Fatalf("ParseWeekLabel failed: %v", err)
	}
	if week != 3 {
		t.Errorf("expected week 3, got %d", week)
	}

	if _, err := ParseWeekLabel("Sommersemester"); err == nil {
		t.Error("expected an error for an unparsable week label")
	}
}

func TestWeekMonday(t *testing.T) {
	cases := []struct {
		year, week int
		want       string
	}{
		{2024, 1, "2024-01-01"}, // Jan 4 2024 is a Thursday
		{2024, 2, "2024-01-08"},
		{2024, 3, "2024-01-15"},
		{2026, 1, "2025-12-29"}, // ISO week 1 of 2026 starts in 2025
	}

	for _, c := range cases {
		monday := WeekMonday(c.year, c.week, time.UTC)
		if got := monday.Format("2006-01-02"); got != c.want {
			t.Errorf("WeekMonday(%d, %d): expected %s, got %s", c.year, c.week, c.want, got)
		}
		if monday.Weekday() != time.Monday {
			t.Errorf("WeekMonday(%d, %d) is a %s", c.year, c.week, monday.Weekday())
		}
		if monday.Hour() != 0 || monday.Minute() != 0 {
			t.Errorf("WeekMonday(%d, %d) is not midnight: %v", c.year, c.week, monday)
		}
	}
}
