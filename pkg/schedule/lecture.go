package schedule

import "strings"

// roomSeparator splits a Room value into location and instructor.
const roomSeparator = " - "

// Lecture represents a single lecture entry inside a timetable cell
type Lecture struct {
	Short  string `json:"short"` // e.g. "EWA"
	Type   string `json:"type"`  // e.g. "V/01", first letter is the category
	Name   string `json:"name"`  // e.g. "Entwicklung von Webanwendungen"
	Room   string `json:"room"`  // "location - instructor", e.g. "R1.10 - Hollas"
	Source int    `json:"source"`
}

// UntaggedSource marks a lecture that has not been through the merge engine yet.
const UntaggedSource = -1

// Location returns the room portion of the Room string. The boolean reports
// whether the string actually contained a "location - instructor" separator;
// without one the full Room value is returned but should not be displayed as
// a location.
func (l Lecture) Location() (string, bool) {
	location, _, found := strings.Cut(l.Room, roomSeparator)
	if !found {
		return l.Room, false
	}
	return strings.TrimSpace(location), true
}

// Instructor returns the teacher portion of the Room string. Room values
// without a separator are treated as instructor-only entries.
func (l Lecture) Instructor() string {
	_, instructor, found := strings.Cut(l.Room, roomSeparator)
	if !found {
		return strings.TrimSpace(l.Room)
	}
	return strings.TrimSpace(instructor)
}
