package scraper

import (
	"fmt"
	"io"
	"strings"

	"htwctl/pkg/schedule"

	"github.com/PuerkitoBio/goquery"
)

// ParsePage parses one schedule page into a Cohort. The page carries the
// cohort headline in its first <h2> and the timetable for week w at table
// index 2+2w, interleaved with spacer tables.
func ParsePage(r io.Reader) (*Cohort, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	headline := strings.TrimSpace(doc.Find("h2").First().Text())
	if headline == "" {
		return nil, fmt.Errorf("page has no headline, the service layout changed")
	}

	tables := doc.Find("table")
	cohort := &Cohort{Headline: headline}

	for w := 0; w < WeeksPerCycle; w++ {
		idx := 2 + 2*w
		if idx >= tables.Length() {
			return nil, fmt.Errorf("page has %d tables, need %d for week %d", tables.Length(), idx+1, w+1)
		}

		week, err := schedule.ParseTable(tableNode{tables.Eq(idx)})
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", w+1, err)
		}
		cohort.Weeks = append(cohort.Weeks, week)
	}

	return cohort, nil
}
