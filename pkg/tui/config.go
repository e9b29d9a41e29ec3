package tui

import (
	"fmt"
	"strconv"
	"strings"

	"htwctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Saved Study Groups", "courses"),
						huh.NewOption("Set Default Lectures", "lectures"),
						huh.NewOption("Set Teacher Blacklist", "blacklist"),
						huh.NewOption("Set Calendar Year", "year"),
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "courses":
			err = runSetListTUI(cfg, &cfg.Courses,
				"Saved study groups",
				"Comma separated course specs, e.g. 08/042/62, 08/042/61")
		case "lectures":
			err = runSetListTUI(cfg, &cfg.Lectures,
				"Default lecture allow-list",
				"Comma separated short codes, e.g. EWA, BIS. Empty keeps everything.")
		case "blacklist":
			err = runSetListTUI(cfg, &cfg.Blacklist,
				"Teacher blacklist",
				"Comma separated teacher names. Empty hides nobody.")
		case "year":
			err = runSetYearTUI(cfg)
		case "theme":
			err = runSetThemeTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.htwctl.json) ---"))
			fmt.Printf("Study Groups: %s\n", joinOrUnset(cfg.Courses))
			fmt.Printf("Lectures: %s\n", joinOrUnset(cfg.Lectures))
			fmt.Printf("Blacklist: %s\n", joinOrUnset(cfg.Blacklist))
			if cfg.Year == 0 {
				fmt.Println("Calendar Year: current")
			} else {
				fmt.Printf("Calendar Year: %d\n", cfg.Year)
			}
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func joinOrUnset(items []string) string {
	if len(items) == 0 {
		return "Not set"
	}
	return strings.Join(items, ", ")
}

func runSetListTUI(cfg *config.AppConfig, target *[]string, title, description string) error {
	input := strings.Join(*target, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	*target = splitList(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d entries.\n", len(*target))))
	return nil
}

func runSetYearTUI(cfg *config.AppConfig) error {
	var input string
	if cfg.Year != 0 {
		input = strconv.Itoa(cfg.Year)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Calendar year for exported events").
				Description("The scraped week labels carry no year. Leave empty to use the current year.").
				Value(&input).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := strconv.Atoi(s); err != nil {
						return fmt.Errorf("must be a year like 2026")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Year = 0
	if input != "" {
		cfg.Year, _ = strconv.Atoi(input)
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Calendar year saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for htwctl").
				Options(
					huh.NewOption(fmt.Sprintf("%s HTW Teal", colorBlock("36")), "36"),
					huh.NewOption(fmt.Sprintf("%s Campus Orange", colorBlock("208")), "208"),
					huh.NewOption(fmt.Sprintf("%s Slate Blue", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Chalk Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
