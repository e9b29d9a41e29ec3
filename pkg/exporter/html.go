package exporter

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"htwctl/pkg/schedule"
)

// palette colors lectures by source feed, cycling when there are more
// sources than colors.
var palette = []string{"red", "blue", "green", "yellow", "orange", "gray"}

// SourceColor returns the display color for a source feed index.
func SourceColor(idx int) string {
	return palette[idx%len(palette)]
}

var documentTemplate = template.Must(template.New("document").Parse(`<html>
  <head>
    <title>Custom Schedule</title>
    <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  </head>
  <body>
    <h1>My custom schedule</h1>
    <ul>
{{- range .Headlines}}
      {{.}}
{{- end}}
    </ul>
{{- range .Weeks}}
    <h3>Week {{.Number}} ({{.Label}})</h3>
    {{.Table}}
{{- end}}
  </body>
</html>
`))

type documentData struct {
	Headlines []template.HTML
	Weeks     []documentWeek
}

type documentWeek struct {
	Number int
	Label  string
	Table  template.HTML
}

// RenderDocument produces a standalone HTML page listing the source
// headlines (colored by source when there is more than one) followed by one
// table per week. startWeek numbers the week headings, the current week
// being 1.
func RenderDocument(headlines []string, weeks []*schedule.Week, startWeek int) string {
	data := documentData{}

	for idx, headline := range headlines {
		item := fmt.Sprintf("<li>%s</li>", html.EscapeString(headline))
		if len(headlines) > 1 {
			item = fmt.Sprintf(`<li style="color: %s">%s</li>`, SourceColor(idx), html.EscapeString(headline))
		}
		data.Headlines = append(data.Headlines, template.HTML(item))
	}

	for i, week := range weeks {
		data.Weeks = append(data.Weeks, documentWeek{
			Number: startWeek + i,
			Label:  week.Label,
			Table:  template.HTML(RenderTable(week)),
		})
	}

	var b strings.Builder
	// The template only receives pre-escaped fragments, so this cannot fail.
	_ = documentTemplate.Execute(&b, data)
	return b.String()
}

// RenderTable renders one week as an HTML table: a weekday header row, then
// one row per time slot with the lectures stacked per weekday cell. Lectures
// tagged with a source index are wrapped in a color span.
func RenderTable(week *schedule.Week) string {
	var b strings.Builder

	b.WriteString("<table border=\"1\" cellpadding=\"2\">\n")

	b.WriteString("<tr><td>&nbsp;</td>")
	for _, day := range schedule.Weekdays {
		fmt.Fprintf(&b, "<td>%s</td>", day)
	}
	b.WriteString("</tr>\n")

	for _, slot := range week.Order {
		b.WriteString("<tr>")
		fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(slot))

		for d := 0; d < 5; d++ {
			b.WriteString("<td>")
			lectures := week.Days[d][slot]
			if len(lectures) == 0 {
				b.WriteString("&nbsp;")
			}

			blocks := make([]string, 0, len(lectures))
			for _, lecture := range lectures {
				block := fmt.Sprintf("%s<br>%s %s<br>%s",
					html.EscapeString(lecture.Name),
					html.EscapeString(lecture.Short),
					html.EscapeString(lecture.Type),
					html.EscapeString(lecture.Room))
				if lecture.Source >= 0 {
					block = fmt.Sprintf(`<span style="color: %s;">%s</span>`, SourceColor(lecture.Source), block)
				}
				blocks = append(blocks, block)
			}
			b.WriteString(strings.Join(blocks, "<br><br>"))

			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</table>")
	return b.String()
}
