package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"htwctl/pkg/config"
	"htwctl/pkg/exporter"
	"htwctl/pkg/schedule"
	"htwctl/pkg/scraper"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunScheduleTUI runs the interactive flow for combining study group
// schedules, filtering them, and exporting the result.
func RunScheduleTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the htwctl schedule builder!"))

	cfg, _ := config.Load()

	var courseInput string
	if cfg != nil && len(cfg.Courses) > 0 {
		courseInput = strings.Join(cfg.Courses, ", ")
	}

	courseForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Study groups to combine").
				Description("Comma separated, format <imm>/<course>/<group>, e.g. 08/042/62").
				Value(&courseInput).
				Validate(func(s string) error {
					specs, err := parseCourseInput(s)
					if err != nil {
						return err
					}
					if len(specs) == 0 {
						return fmt.Errorf("enter at least one study group")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := courseForm.Run(); err != nil {
		return err
	}

	specs, err := parseCourseInput(courseInput)
	if err != nil {
		return err
	}

	client := scraper.NewClient()
	var cohorts []*scraper.Cohort
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching %d schedule(s) from the HTW server...", len(specs))).
		Action(func() {
			cohorts, fetchErr = client.FetchAll(specs)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("failed to fetch schedules: %w", fetchErr)
	}

	// Offer every short code seen across the fetched cycle, preselecting the
	// saved allow-list (or everything when none is saved).
	shorts := collectShortCodes(cohorts)
	if len(shorts) == 0 {
		fmt.Println(errorStyle.Render("No lectures found for the selected groups!"))
		return nil
	}

	savedLectures := make(map[string]bool)
	if cfg != nil {
		for _, short := range cfg.Lectures {
			savedLectures[strings.ToUpper(short)] = true
		}
	}

	var lectureOptions []huh.Option[string]
	for _, short := range shorts {
		opt := huh.NewOption(short, short)
		if len(savedLectures) > 0 {
			if savedLectures[strings.ToUpper(short)] {
				opt = opt.Selected(true)
			}
		} else {
			opt = opt.Selected(true)
		}
		lectureOptions = append(lectureOptions, opt)
	}

	var selectedLectures []string
	var blacklistInput string
	if cfg != nil {
		blacklistInput = strings.Join(cfg.Blacklist, ", ")
	}
	startWeek, stopWeek := 1, 1

	weekOptions := []huh.Option[int]{
		huh.NewOption("current week", 1),
		huh.NewOption("next week", 2),
		huh.NewOption("in two weeks", 3),
		huh.NewOption("in three weeks", 4),
	}

	filterForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select lectures to keep").
				Description("Space = toggle, Enter = confirm").
				Options(lectureOptions...).
				Value(&selectedLectures).
				Filterable(true).
				Height(12),

			huh.NewInput().
				Title("Teachers to hide").
				Description("Comma separated, leave empty to keep all").
				Value(&blacklistInput),

			huh.NewSelect[int]().
				Title("First week").
				Options(weekOptions...).
				Value(&startWeek),

			huh.NewSelect[int]().
				Title("Last week").
				Options(weekOptions...).
				Value(&stopWeek),
		),
	).WithTheme(GetTheme())

	if err := filterForm.Run(); err != nil {
		return err
	}

	if stopWeek < startWeek {
		stopWeek = startWeek
	}
	if len(selectedLectures) == 0 {
		selectedLectures = []string{schedule.AllLectures}
	}
	blacklist := splitList(blacklistInput)

	weeks := make([]*schedule.Week, 0, stopWeek-startWeek+1)
	headlines := make([]string, len(cohorts))
	perSource := make([]*schedule.Week, len(cohorts))
	for i, cohort := range cohorts {
		headlines[i] = cohort.Headline
	}
	for w := startWeek - 1; w < stopWeek; w++ {
		for i, cohort := range cohorts {
			perSource[i] = cohort.Weeks[w]
		}
		merged := schedule.Merge(perSource)
		weeks = append(weeks, schedule.Filter(merged, selectedLectures, blacklist))
	}

	var mode string
	outputFile := "stundenplan.ics"

	outputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output").
				Options(
					huh.NewOption("Calendar file (.ics)", "ics"),
					huh.NewOption("Plain text table", "text"),
					huh.NewOption("Raw HTML", "html"),
				).
				Value(&mode),

			huh.NewInput().
				Title("Output file name (calendar export only)").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := outputForm.Run(); err != nil {
		return err
	}

	switch mode {
	case "ics":
		if !strings.HasSuffix(outputFile, ".ics") {
			outputFile += ".ics"
		}

		year := time.Now().Year()
		if cfg != nil && cfg.Year != 0 {
			year = cfg.Year
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(weeks, headlines, year, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported weeks %d-%d to %s", startWeek, stopWeek, outputFile)))

	case "html":
		fmt.Println(exporter.RenderDocument(headlines, weeks, startWeek))

	default:
		text, err := exporter.Textify(exporter.RenderDocument(headlines, weeks, startWeek))
		if err != nil {
			return err
		}
		fmt.Println(text)
	}

	return nil
}

// parseCourseInput parses a comma separated list of course specs.
func parseCourseInput(s string) ([]scraper.CourseSpec, error) {
	var specs []scraper.CourseSpec
	for _, part := range splitList(s) {
		spec, err := scraper.ParseCourseSpec(part)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// splitList splits a comma separated input into trimmed, non-empty items.
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// collectShortCodes gathers the distinct lecture short codes of a fetched
// cycle, sorted for a stable selection list.
func collectShortCodes(cohorts []*scraper.Cohort) []string {
	seen := make(map[string]bool)
	var shorts []string
	for _, cohort := range cohorts {
		for _, week := range cohort.Weeks {
			for _, day := range week.Days {
				for _, lectures := range day {
					for _, lecture := range lectures {
						if !seen[lecture.Short] {
							seen[lecture.Short] = true
							shorts = append(shorts, lecture.Short)
						}
					}
				}
			}
		}
	}
	sort.Strings(shorts)
	return shorts
}
