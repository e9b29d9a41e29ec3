package cmd

import (
	"fmt"
	"strings"

	"htwctl/pkg/config"
	"htwctl/pkg/schedule"
	"htwctl/pkg/scraper"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

// selection holds the validated scrape and filter parameters shared by the
// export and show commands. Flags left empty fall back to the saved config.
type selection struct {
	specs     []scraper.CourseSpec
	lectures  []string
	blacklist []string
	start     int
	stop      int
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("courses", "c", nil, "Study groups to combine, format <imm>/<course>/<group>")
	cmd.Flags().StringSliceP("lectures", "l", nil, "Lecture short codes to keep, 'all' for everything")
	cmd.Flags().StringSliceP("blacklist", "b", nil, "Teachers to hide, 'none' for nobody")
	cmd.Flags().IntP("start", "s", 1, "First week to include, 1 is the current week")
	cmd.Flags().IntP("stop", "e", 1, "Last week to include")
}

// selectionFromFlags validates everything before any network or parsing
// work happens.
func selectionFromFlags(cmd *cobra.Command) (selection, error) {
	courses, _ := cmd.Flags().GetStringSlice("courses")
	lectures, _ := cmd.Flags().GetStringSlice("lectures")
	blacklist, _ := cmd.Flags().GetStringSlice("blacklist")
	start, _ := cmd.Flags().GetInt("start")
	stop, _ := cmd.Flags().GetInt("stop")

	cfg, _ := config.Load()
	if cfg != nil {
		if len(courses) == 0 {
			courses = cfg.Courses
		}
		if len(lectures) == 0 {
			lectures = cfg.Lectures
		}
		if len(blacklist) == 0 {
			blacklist = cfg.Blacklist
		}
	}

	if len(courses) == 0 {
		return selection{}, fmt.Errorf("no study groups given, pass --courses or save them with 'htwctl config'")
	}
	if len(lectures) == 0 {
		lectures = []string{schedule.AllLectures}
	}
	if len(blacklist) == 1 && strings.EqualFold(blacklist[0], "none") {
		blacklist = nil
	}

	if start < 1 || start > scraper.WeeksPerCycle || stop < 1 || stop > scraper.WeeksPerCycle {
		return selection{}, fmt.Errorf("weeks must be between 1 and %d", scraper.WeeksPerCycle)
	}
	if start > stop {
		return selection{}, fmt.Errorf("first week %d is after last week %d", start, stop)
	}

	sel := selection{
		lectures:  lectures,
		blacklist: blacklist,
		start:     start,
		stop:      stop,
	}
	for _, course := range courses {
		spec, err := scraper.ParseCourseSpec(course)
		if err != nil {
			return selection{}, err
		}
		sel.specs = append(sel.specs, spec)
	}

	return sel, nil
}

// buildSchedules fetches every selected study group and returns the merged,
// filtered weeks of the requested range plus the source headlines.
func buildSchedules(sel selection) ([]*schedule.Week, []string, error) {
	client := scraper.NewClient()
	var cohorts []*scraper.Cohort
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching %d schedule(s) from the HTW server...", len(sel.specs))).
		Action(func() {
			cohorts, err = client.FetchAll(sel.specs)
		}).
		Run()

	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	headlines := make([]string, len(cohorts))
	for i, cohort := range cohorts {
		headlines[i] = cohort.Headline
	}

	var weeks []*schedule.Week
	perSource := make([]*schedule.Week, len(cohorts))
	for w := sel.start - 1; w < sel.stop; w++ {
		for i, cohort := range cohorts {
			perSource[i] = cohort.Weeks[w]
		}
		merged := schedule.Merge(perSource)
		weeks = append(weeks, schedule.Filter(merged, sel.lectures, sel.blacklist))
	}

	return weeks, headlines, nil
}
