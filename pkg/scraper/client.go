package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const scheduleURL = "http://www2.htw-dresden.de/~rawa/cgi-bin/auf/raiplan.php"

// Client handles HTTP requests to the HTW schedule service.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a new scraper client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		url: scheduleURL,
	}
}

// FetchCohort downloads and parses the schedule page for one study group.
// Recently fetched cohorts are served from the disk cache.
func (c *Client) FetchCohort(spec CourseSpec) (*Cohort, error) {
	if cached, ok := readCache(spec); ok {
		return cached, nil
	}

	form := url.Values{
		"imm":     {spec.Year},
		"stuga":   {spec.Course},
		"grup":    {spec.Group},
		"lang":    {"1"},
		"aktkw":   {"1"},
		"pressme": {"S T A R T"},
		"matr":    {""},
		"unix":    {""},
		"passi":   {""},
	}

	req, err := http.NewRequest("POST", c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/xml,application/xhtml+xml,text/html;q=0.9,text/plain;q=0.8,image/png,*/*;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for %s: %w", spec, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching schedule for %s", resp.StatusCode, spec)
	}

	cohort, err := ParsePage(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("schedule page for %s: %w", spec, err)
	}

	writeCache(spec, cohort)
	return cohort, nil
}
