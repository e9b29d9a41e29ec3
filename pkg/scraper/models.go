package scraper

import (
	"fmt"
	"strings"

	"htwctl/pkg/schedule"
)

// WeeksPerCycle is how many weekly timetables one schedule page carries.
const WeeksPerCycle = 4

// CourseSpec identifies one study group, written as "<imm>/<course>/<group>"
// (e.g. "08/042/62": matriculation year 08, course 042, group 62).
type CourseSpec struct {
	Year   string
	Course string
	Group  string
}

// ParseCourseSpec parses a "<imm>/<course>/<group>" string.
func ParseCourseSpec(s string) (CourseSpec, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return CourseSpec{}, fmt.Errorf("course spec %q must have the form <imm>/<course>/<group>", s)
	}
	for _, part := range parts {
		if part == "" {
			return CourseSpec{}, fmt.Errorf("course spec %q has an empty segment", s)
		}
	}
	return CourseSpec{Year: parts[0], Course: parts[1], Group: parts[2]}, nil
}

func (s CourseSpec) String() string {
	return fmt.Sprintf("%s/%s/%s", s.Year, s.Course, s.Group)
}

// Cohort is the parsed result of one schedule page: the cohort headline and
// the four weekly timetables, current week first.
type Cohort struct {
	Headline string           `json:"headline"`
	Weeks    []*schedule.Week `json:"weeks"`
}
