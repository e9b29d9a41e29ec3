package exporter

import (
	"fmt"
	"io"
	"time"

	"htwctl/pkg/schedule"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// uidNamespace qualifies the name-based event UIDs. It is fixed so repeated
// exports of the same schedule produce byte-identical UIDs.
var uidNamespace = uuid.MustParse("9a1c8f62-3b7d-4e15-8c4a-2f90d16b5e73")

// icsTimezone is the timezone of the institution's timetable.
const icsTimezone = "Europe/Berlin"

// categories maps the first letter of a lecture type to its category name.
var categories = map[rune]string{
	'V': "Vorlesung",
	'Ü': "Übung",
	'P': "Praktikum",
}

// GenerateICS turns the filtered weekly schedules into an iCalendar document
// with one event per lecture occurrence and writes it to w. The weeks must
// be consecutive and in chronological order; the calendar week label of the
// first one anchors all dates within the given year. Headlines name the
// source feeds, indexed by each lecture's Source tag.
//
// Unparsable time slots or week labels abort the export, they mean the
// upstream format changed.
func GenerateICS(weeks []*schedule.Week, headlines []string, year int, w io.Writer) error {
	if len(weeks) == 0 {
		return fmt.Errorf("no weeks to export")
	}

	loc, err := time.LoadLocation(icsTimezone)
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	// The slot order is week-invariant, so the first week's slots serve for
	// the whole export.
	slots := make([]schedule.Slot, len(weeks[0].Order))
	for i, raw := range weeks[0].Order {
		slots[i], err = schedule.ParseSlot(raw)
		if err != nil {
			return err
		}
	}

	weekNumber, err := schedule.ParseWeekLabel(weeks[0].Label)
	if err != nil {
		return err
	}
	anchor := schedule.WeekMonday(year, weekNumber, loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	now := time.Now()

	for wi, week := range weeks {
		monday := anchor.AddDate(0, 0, 7*wi)

		for d := 0; d < 5; d++ {
			day := monday.AddDate(0, 0, d)

			for _, slot := range slots {
				for _, lecture := range week.Days[d][slot.Raw] {
					start := time.Date(day.Year(), day.Month(), day.Day(), slot.StartHour, slot.StartMinute, 0, 0, loc)
					end := time.Date(day.Year(), day.Month(), day.Day(), slot.EndHour, slot.EndMinute, 0, 0, loc)

					addEvent(cal, lecture, headlines, start, end, now)
				}
			}
		}
	}

	return cal.SerializeTo(w)
}

func addEvent(cal *ics.Calendar, lecture schedule.Lecture, headlines []string, start, end, now time.Time) {
	location, hasLocation := lecture.Location()

	uid := uuid.NewSHA1(uidNamespace, []byte(location+start.Format(time.RFC3339)))

	event := cal.AddEvent(uid.String())
	event.SetCreatedTime(now)
	event.SetDtStampTime(now)
	event.SetModifiedAt(now)
	event.SetStartAt(start)
	event.SetEndAt(end)

	summary := lecture.Name
	if category, ok := categories[firstRune(lecture.Type)]; ok {
		summary = fmt.Sprintf("%s (%s)", lecture.Name, category)
		event.SetProperty(ics.ComponentPropertyCategories, category)
	}
	event.SetSummary(summary)

	if hasLocation {
		event.SetLocation(location)
	}

	description := fmt.Sprintf("%s\n%s", lecture.Instructor(), lecture.Type)
	if lecture.Source >= 0 && lecture.Source < len(headlines) {
		description += "\n" + headlines[lecture.Source]
	}
	event.SetDescription(description)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
