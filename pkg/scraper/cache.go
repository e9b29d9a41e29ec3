package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long a fetched schedule page is kept before
// it is refreshed from the server.
const cacheDuration = 12 * time.Hour

// cacheEntry is the on-disk format of one cached cohort.
type cacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Cohort    *Cohort   `json:"cohort"`
}

func cachePath(spec CourseSpec) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".htwctl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.json", spec.Year, spec.Course, spec.Group)
	return filepath.Join(cacheDir, name), nil
}

// readCache returns a valid, unexpired cached cohort for this course spec.
func readCache(spec CourseSpec) (*Cohort, bool) {
	path, err := cachePath(spec)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.Cohort == nil || time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Cohort, true
}

// writeCache saves a fetched cohort to disk. Cache errors are ignored, the
// next run simply fetches again.
func writeCache(spec CourseSpec, cohort *Cohort) {
	path, err := cachePath(spec)
	if err != nil {
		return
	}

	entry := cacheEntry{
		Timestamp: time.Now(),
		Cohort:    cohort,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
