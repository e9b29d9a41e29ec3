package scraper

import (
	"sync"
	"time"
)

const (
	// The HTW server rejects closely spaced connection starts, so request
	// starts are paced and the pool size is capped.
	maxFetchWorkers = 5
	fetchSpacing    = 100 * time.Millisecond
)

// FetchAll retrieves the cohorts for every course spec and returns them in
// request order, so the slice index of each cohort is its source index for
// the merge step. Fetches run on a bounded worker pool with a minimum delay
// between request starts. The first error aborts the whole result.
func (c *Client) FetchAll(specs []CourseSpec) ([]*Cohort, error) {
	cohorts := make([]*Cohort, len(specs))
	errs := make([]error, len(specs))

	workers := len(specs)
	if workers > maxFetchWorkers {
		workers = maxFetchWorkers
	}
	sem := make(chan struct{}, workers)

	// Tokens are handed out one per fetchSpacing tick.
	starts := make(chan struct{})
	go func() {
		for range specs {
			starts <- struct{}{}
			time.Sleep(fetchSpacing)
		}
		close(starts)
	}()

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec CourseSpec) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			<-starts
			cohorts[i], errs[i] = c.FetchCohort(spec)
		}(i, spec)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return cohorts, nil
}
