package schedule

// Merge combines one Week per source feed into a single Week. All inputs
// must describe the same calendar week; the slot order and label of the
// first input are authoritative for the result.
//
// Within each weekday and slot, lectures are collected in source order and a
// lecture is skipped when its Room value already appeared there. Cohorts
// that share a lecture list it with the identical room string, so the exact
// room text is the dedup key: first source wins. Every kept lecture is
// tagged with the index of the feed it came from.
//
// Merge returns nil for an empty input.
func Merge(weeks []*Week) *Week {
	if len(weeks) == 0 {
		return nil
	}

	merged := &Week{
		Order: weeks[0].Order,
		Label: weeks[0].Label,
	}
	for d := range merged.Days {
		merged.Days[d] = make(map[string][]Lecture, len(merged.Order))
		for _, slot := range merged.Order {
			merged.Days[d][slot] = []Lecture{}
		}
	}

	for idx, week := range weeks {
		for d := 0; d < 5; d++ {
			for _, slot := range merged.Order {
				for _, lecture := range week.Days[d][slot] {
					if hasRoom(merged.Days[d][slot], lecture.Room) {
						continue
					}
					lecture.Source = idx
					merged.Days[d][slot] = append(merged.Days[d][slot], lecture)
				}
			}
		}
	}

	return merged
}

func hasRoom(lectures []Lecture, room string) bool {
	for _, l := range lectures {
		if l.Room == room {
			return true
		}
	}
	return false
}
