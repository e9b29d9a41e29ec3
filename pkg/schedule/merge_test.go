package schedule

import "testing"

func weekWith(label string, order []string, lecturesBySlot map[string][]Lecture) *Week {
	week := &Week{Order: order, Label: label}
	for d := range week.Days {
		week.Days[d] = make(map[string][]Lecture)
		for _, slot := range order {
			week.Days[d][slot] = nil
		}
	}
	// Only Monday gets lectures, that is enough for the merge semantics.
	for slot, lectures := range lecturesBySlot {
		week.Days[0][slot] = lectures
	}
	return week
}

func TestMergeDeduplicatesByRoom(t *testing.T) {
	shared := Lecture{Short: "EWA", Type: "V/01", Name: "Webanwendungen", Room: "R1.10 - Hollas", Source: UntaggedSource}
	extra := Lecture{Short: "BIS", Type: "Ü/02", Name: "Informationssysteme", Room: "R2.20 - Meier", Source: UntaggedSource}

	order := []string{"8.00 - 9.30"}
	first := weekWith("42. KW", order, map[string][]Lecture{"8.00 - 9.30": {shared}})
	second := weekWith("42. KW", order, map[string][]Lecture{"8.00 - 9.30": {shared, extra}})

	merged := Merge([]*Week{first, second})
	if merged == nil {
		t.Fatal("Merge returned nil for non-empty input")
	}

	monday := merged.Days[0]["8.00 - 9.30"]
	if len(monday) != 2 {
		t.Fatalf("expected 2 merged lectures, got %d", len(monday))
	}

	// The shared room appears once, tagged with the first source.
	if monday[0].Room != "R1.10 - Hollas" || monday[0].Source != 0 {
		t.Errorf("expected shared lecture from source 0, got room %q source %d", monday[0].Room, monday[0].Source)
	}
	if monday[1].Room != "R2.20 - Meier" || monday[1].Source != 1 {
		t.Errorf("expected extra lecture from source 1, got room %q source %d", monday[1].Room, monday[1].Source)
	}
}

func TestMergeKeepsFirstOrderAndLabel(t *testing.T) {
	order := []string{"8.00 - 9.30", "9.50 - 11.20"}
	first := weekWith("42. KW", order, nil)
	second := weekWith("42. KW", order, nil)

	merged := Merge([]*Week{first, second})

	if merged.Label != "42. KW" {
		t.Errorf("expected label of the first source, got %q", merged.Label)
	}
	for i, slot := range order {
		if merged.Order[i] != slot {
			t.Errorf("slot %d: expected %q, got %q", i, slot, merged.Order[i])
		}
	}
	for d, day := range merged.Days {
		if len(day) != len(order) {
			t.Errorf("day %d: expected %d slots, got %d", d, len(order), len(day))
		}
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	lecture := Lecture{Short: "EWA", Type: "V/01", Name: "Webanwendungen", Room: "R1.10 - Hollas", Source: UntaggedSource}
	week := weekWith("42. KW", []string{"8.00 - 9.30"}, map[string][]Lecture{"8.00 - 9.30": {lecture}})

	Merge([]*Week{week})

	if week.Days[0]["8.00 - 9.30"][0].Source != UntaggedSource {
		t.Error("Merge tagged a lecture inside its input")
	}
}

func TestMergeEmpty(t *testing.T) {
	if merged := Merge(nil); merged != nil {
		t.Errorf("expected nil for empty input, got %+v", merged)
	}
}
