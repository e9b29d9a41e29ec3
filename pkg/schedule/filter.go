package schedule

import "strings"

// AllLectures is the magic allow-list value that disables filtering by
// lecture short code. It is only recognized as the first list element.
const AllLectures = "ALL"

// Filter returns a copy of week containing only the lectures whose short
// code is on the allow list and whose instructor is not on the deny list.
// All comparisons are case-insensitive. An empty deny list keeps every
// instructor; an allow list starting with "ALL" keeps every lecture.
//
// The result covers the same slots as the input, possibly with empty lists.
func Filter(week *Week, allow, deny []string) *Week {
	keepAll := len(allow) > 0 && strings.EqualFold(allow[0], AllLectures)

	allowed := make(map[string]bool, len(allow))
	for _, short := range allow {
		allowed[strings.ToUpper(short)] = true
	}
	denied := make(map[string]bool, len(deny))
	for _, teacher := range deny {
		denied[strings.ToUpper(teacher)] = true
	}

	filtered := &Week{
		Order: week.Order,
		Label: week.Label,
	}
	for d := range filtered.Days {
		filtered.Days[d] = make(map[string][]Lecture, len(week.Order))
		for _, slot := range week.Order {
			kept := []Lecture{}
			for _, lecture := range week.Days[d][slot] {
				if !keepAll && !allowed[strings.ToUpper(lecture.Short)] {
					continue
				}
				if denied[strings.ToUpper(lecture.Instructor())] {
					continue
				}
				kept = append(kept, lecture)
			}
			filtered.Days[d][slot] = kept
		}
	}

	return filtered
}
