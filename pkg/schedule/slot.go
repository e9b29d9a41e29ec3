package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slotPattern      = regexp.MustCompile(`^(\d{1,2})\.(\d{2}) - (\d{1,2})\.(\d{2})$`)
	weekLabelPattern = regexp.MustCompile(`^(\d{1,2})\. KW`)
)

// Slot is a parsed time slot key such as "8.00 - 9.30". Raw keeps the
// verbatim string used as the map key in a Week.
type Slot struct {
	Raw         string
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// ParseSlot parses a time slot key of the form "H.MM - H.MM". Table
// rendering tolerates keys that do not parse, calendar export does not.
func ParseSlot(raw string) (Slot, error) {
	m := slotPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Slot{}, fmt.Errorf("time slot %q does not match \"H.MM - H.MM\"", raw)
	}

	slot := Slot{Raw: raw}
	slot.StartHour, _ = strconv.Atoi(m[1])
	slot.StartMinute, _ = strconv.Atoi(m[2])
	slot.EndHour, _ = strconv.Atoi(m[3])
	slot.EndMinute, _ = strconv.Atoi(m[4])
	return slot, nil
}

// ParseWeekLabel extracts the calendar week number from a label like "42. KW".
func ParseWeekLabel(label string) (int, error) {
	m := weekLabelPattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, fmt.Errorf("calendar week label %q does not match \"<N>. KW\"", label)
	}
	return strconv.Atoi(m[1])
}

// WeekMonday returns midnight of the Monday starting the given calendar week
// of the given year. It uses the ISO rule that week 1 always contains the
// 4th of January. The year is explicit on purpose: the scraped label only
// carries the week number, so the caller has to decide which year it belongs
// to.
func WeekMonday(year, week int, loc *time.Location) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	daysSinceMonday := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -daysSinceMonday)
	return monday.AddDate(0, 0, (week-1)*7)
}
