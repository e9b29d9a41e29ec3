package schedule

import (
	"fmt"
	"strings"
)

// ParseCell splits the rendered text of one timetable cell into lectures.
//
// A cell holds zero or more blocks separated by a blank line. Each block is
// expected to be exactly three lines: the lecture name, "<short> <type>" and
// the room (or "-" for a free slot). Blocks with any other line count come
// from legacy markup and are dropped without an error. A malformed second
// line in an otherwise well-formed block is reported, since that means the
// upstream format changed.
func ParseCell(text string) ([]Lecture, error) {
	var lectures []Lecture

	for _, block := range strings.Split(text, "\n\n") {
		lines := strings.Split(block, "\n")
		if len(lines) != 3 {
			continue
		}
		for i := range lines {
			lines[i] = strings.TrimSpace(lines[i])
		}
		if lines[2] == "-" {
			// Free slot marker, not a lecture.
			continue
		}

		short, typ, found := strings.Cut(lines[1], " ")
		if !found || short == "" || strings.Contains(typ, " ") {
			return nil, fmt.Errorf("cannot split lecture code %q into short name and type", lines[1])
		}

		lectures = append(lectures, Lecture{
			Short:  short,
			Type:   typ,
			Name:   lines[0],
			Room:   lines[2],
			Source: UntaggedSource,
		})
	}

	return lectures, nil
}
