package exporter

import (
	"strings"
	"testing"

	"htwctl/pkg/schedule"
)

func TestRenderTable(t *testing.T) {
	week := exportWeek("42. KW", []string{"8.00 - 9.30"}, map[string][]schedule.Lecture{
		"8.00 - 9.30": {
			{Short: "EWA", Type: "V/01", Name: "Webanwendungen", Room: "R1.10 - Hollas", Source: 0},
			{Short: "BIS", Type: "Ü/02", Name: "Informationssysteme", Room: "R2.20 - Meier", Source: 1},
		},
	})

	table := RenderTable(week)

	for _, day := range schedule.Weekdays {
		if !strings.Contains(table, "<td>"+day+"</td>") {
			t.Errorf("expected weekday header %q", day)
		}
	}
	if !strings.Contains(table, "<td>8.00 - 9.30</td>") {
		t.Error("expected the time slot row label")
	}
	if !strings.Contains(table, "Webanwendungen<br>EWA V/01<br>R1.10 - Hollas") {
		t.Errorf("expected the stacked lecture block, got:\n%s", table)
	}
	if !strings.Contains(table, `<span style="color: red;">Webanwendungen`) {
		t.Errorf("expected source 0 to be wrapped in a red span, got:\n%s", table)
	}
	if !strings.Contains(table, `<span style="color: blue;">Informationssysteme`) {
		t.Errorf("expected source 1 to be wrapped in a blue span, got:\n%s", table)
	}
	if !strings.Contains(table, "<br><br>") {
		t.Error("expected lecture blocks to be separated by a blank line")
	}
	// Tuesday through Friday are empty and get padded.
	if !strings.Contains(table, "<td>&nbsp;</td>") {
		t.Error("expected empty cells to be padded with &nbsp;")
	}
}

func TestRenderTableEscapesContent(t *testing.T) {
	week := exportWeek("42. KW", []string{"8.00 - 9.30"}, map[string][]schedule.Lecture{
		"8.00 - 9.30": {{Short: "X", Type: "V/01", Name: "<script>", Room: "R1 - Y", Source: schedule.UntaggedSource}},
	})

	table := RenderTable(week)
	if strings.Contains(table, "<script>") {
		t.Error("lecture content was not escaped")
	}
	if !strings.Contains(table, "&lt;script&gt;") {
		t.Errorf("expected escaped lecture name, got:\n%s", table)
	}
}

func TestRenderTableUntaggedLecture(t *testing.T) {
	week := exportWeek("42. KW", []string{"8.00 - 9.30"}, map[string][]schedule.Lecture{
		"8.00 - 9.30": {{Short: "EWA", Type: "V/01", Name: "Webanwendungen", Room: "R1.10 - Hollas", Source: schedule.UntaggedSource}},
	})

	if table := RenderTable(week); strings.Contains(table, "<span") {
		t.Errorf("expected no color span for an unmerged lecture, got:\n%s", table)
	}
}

func TestRenderDocument(t *testing.T) {
	weeks := []*schedule.Week{
		exportWeek("42. KW", []string{"8.00 - 9.30"}, nil),
		exportWeek("43. KW", []string{"8.00 - 9.30"}, nil),
	}
	headlines := []string{"Informatik 08/042/62", "Informatik 08/042/61"}

	doc := RenderDocument(headlines, weeks, 2)

	if !strings.Contains(doc, "<h3>Week 2 (42. KW)</h3>") || !strings.Contains(doc, "<h3>Week 3 (43. KW)</h3>") {
		t.Errorf("expected numbered week headings, got:\n%s", doc)
	}
	if !strings.Contains(doc, `<li style="color: red">Informatik 08/042/62</li>`) {
		t.Errorf("expected the first headline colored red, got:\n%s", doc)
	}
	if !strings.Contains(doc, "<h1>My custom schedule</h1>") {
		t.Error("expected the document heading")
	}
}

func TestRenderDocumentSingleSource(t *testing.T) {
	doc := RenderDocument([]string{"Informatik 08/042/62"}, nil, 1)

	if !strings.Contains(doc, "<li>Informatik 08/042/62</li>") {
		t.Errorf("expected an uncolored headline for a single source, got:\n%s", doc)
	}
}

func TestSourceColorCycles(t *testing.T) {
	if SourceColor(0) != "red" {
		t.Errorf("expected red for source 0, got %q", SourceColor(0))
	}
	if SourceColor(0) != SourceColor(len(palette)) {
		t.Error("expected the palette to cycle")
	}
}
