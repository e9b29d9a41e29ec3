package schedule

import "testing"

func filterFixture() *Week {
	return weekWith("42. KW", []string{"8.00 - 9.30"}, map[string][]Lecture{
		"8.00 - 9.30": {
			{Short: "EWA", Type: "V/01", Name: "Webanwendungen", Room: "R1.10 - Hollas", Source: 0},
			{Short: "BIS", Type: "Ü/02", Name: "Informationssysteme", Room: "R2.20 - Meier", Source: 1},
		},
	})
}

func TestFilterAllIsIdentity(t *testing.T) {
	week := filterFixture()

	filtered := Filter(week, []string{"all"}, nil)

	monday := filtered.Days[0]["8.00 - 9.30"]
	if len(monday) != 2 {
		t.Fatalf("expected ALL filter to keep both lectures, got %d", len(monday))
	}
	if filtered.Label != week.Label || len(filtered.Order) != len(week.Order) {
		t.Error("filter changed the week label or slot order")
	}
}

func TestFilterByShortCode(t *testing.T) {
	filtered := Filter(filterFixture(), []string{"ewa"}, nil)

	monday := filtered.Days[0]["8.00 - 9.30"]
	if len(monday) != 1 {
		t.Fatalf("expected 1 lecture after filtering, got %d", len(monday))
	}
	if monday[0].Short != "EWA" {
		t.Errorf("expected EWA to survive, got %q", monday[0].Short)
	}
}

func TestFilterDeniedTeacher(t *testing.T) {
	filtered := Filter(filterFixture(), []string{"ALL"}, []string{"HOLLAS"})

	monday := filtered.Days[0]["8.00 - 9.30"]
	if len(monday) != 1 {
		t.Fatalf("expected the denied teacher's lecture to be dropped, got %d lectures", len(monday))
	}
	if monday[0].Short != "BIS" {
		t.Errorf("expected BIS to survive, got %q", monday[0].Short)
	}

	// Without a deny list the same lecture is retained.
	retained := Filter(filterFixture(), []string{"ALL"}, nil)
	if len(retained.Days[0]["8.00 - 9.30"]) != 2 {
		t.Error("expected both lectures without a deny list")
	}
}

func TestFilterRoomWithoutSeparator(t *testing.T) {
	week := weekWith("42. KW", []string{"8.00 - 9.30"}, map[string][]Lecture{
		"8.00 - 9.30": {{Short: "EWA", Type: "V/01", Name: "Webanwendungen", Room: "Hollas", Source: 0}},
	})

	// The whole room string counts as the instructor when the separator is
	// missing.
	filtered := Filter(week, []string{"ALL"}, []string{"hollas"})
	if len(filtered.Days[0]["8.00 - 9.30"]) != 0 {
		t.Error("expected separator-less room to match the deny list as instructor")
	}
}

func TestFilterKeepsSlotCoverage(t *testing.T) {
	filtered := Filter(filterFixture(), []string{"nothing-matches"}, nil)

	for d, day := range filtered.Days {
		for _, slot := range filtered.Order {
			if _, ok := day[slot]; !ok {
				t.Errorf("day %d: slot %q missing after filtering", d, slot)
			}
		}
	}
}
