package schedule

import (
	"fmt"
	"strings"
)

// Weekdays holds the column headings of a weekly timetable, Monday first.
var Weekdays = [5]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"}

// Week is the normalized form of one weekly timetable from one source feed.
// Order preserves the time slots in the row order the source rendered them;
// every weekday map contains exactly the keys listed in Order.
type Week struct {
	Order []string                `json:"order"`
	Days  [5]map[string][]Lecture `json:"days"`
	Label string                  `json:"label"` // raw calendar week label, e.g. "42. KW"
}

// Table, Row and Cell are the only markup capabilities the normalizer needs.
// Whatever HTML parser fetches the page adapts its nodes to these.
type Table interface {
	Rows() []Row
}

// Row is one table row exposing its data cells.
type Row interface {
	Cells() []Cell
}

// Cell exposes the rendered text of one table cell, with line breaks
// normalized to "\n".
type Cell interface {
	Text() string
}

// ParseTable walks one timetable into a Week. The first row carries the
// calendar week label; every following row must hold a time label cell and
// five weekday cells. Rows with fewer cells indicate that the source layout
// changed and abort the parse.
func ParseTable(t Table) (*Week, error) {
	rows := t.Rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("timetable has no rows")
	}

	head := rows[0].Cells()
	if len(head) == 0 {
		return nil, fmt.Errorf("timetable header row has no cells")
	}

	week := &Week{Label: strings.TrimSpace(head[0].Text())}
	for d := range week.Days {
		week.Days[d] = make(map[string][]Lecture)
	}

	for _, row := range rows[1:] {
		cells := row.Cells()
		if len(cells) < 6 {
			return nil, fmt.Errorf("timetable row has %d cells, need a time label and five weekdays", len(cells))
		}

		slot := strings.TrimSpace(cells[0].Text())
		week.Order = append(week.Order, slot)

		for d := 0; d < 5; d++ {
			lectures, err := ParseCell(cells[d+1].Text())
			if err != nil {
				return nil, err
			}
			week.Days[d][slot] = lectures
		}
	}

	return week, nil
}
