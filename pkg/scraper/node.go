package scraper

import (
	"strings"

	"htwctl/pkg/schedule"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// tableNode adapts a goquery selection to the narrow table interface the
// schedule package consumes, so the core never sees the HTML parser.
type tableNode struct {
	sel *goquery.Selection
}

func (t tableNode) Rows() []schedule.Row {
	var rows []schedule.Row
	t.sel.Find("tr").Each(func(_ int, s *goquery.Selection) {
		rows = append(rows, rowNode{s})
	})
	return rows
}

type rowNode struct {
	sel *goquery.Selection
}

func (r rowNode) Cells() []schedule.Cell {
	var cells []schedule.Cell
	r.sel.Find("td").Each(func(_ int, s *goquery.Selection) {
		cells = append(cells, cellNode{s})
	})
	return cells
}

type cellNode struct {
	sel *goquery.Selection
}

// Text renders the cell content with <br> elements as line breaks.
// goquery's Text() drops them, but the cell parser needs them to tell
// lecture lines and blocks apart.
func (c cellNode) Text() string {
	var b strings.Builder
	for _, node := range c.sel.Nodes {
		writeNodeText(&b, node)
	}
	return strings.TrimSpace(b.String())
}

// markupWhitespace flattens newlines that stem from source formatting so
// only <br> elements produce line breaks.
var markupWhitespace = strings.NewReplacer("\r", " ", "\n", " ")

func writeNodeText(b *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		b.WriteString(markupWhitespace.Replace(n.Data))
	case n.Type == html.ElementNode && n.Data == "br":
		b.WriteString("\n")
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeNodeText(b, child)
	}
}
