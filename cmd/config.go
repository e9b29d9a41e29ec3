package cmd

import (
	"fmt"
	"strings"

	"htwctl/pkg/config"
	"htwctl/pkg/scraper"
	"htwctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage htwctl configuration",
	Long:  "View or edit your local configuration settings (saved study groups, default filters, calendar year).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setCourses, _ := cmd.Flags().GetStringSlice("set-courses")
		if len(setCourses) > 0 {
			// Validate before persisting, mistyped specs would fail every run.
			for _, course := range setCourses {
				if _, err := scraper.ParseCourseSpec(course); err != nil {
					return err
				}
			}

			cfg.Courses = setCourses
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Saved study groups: %s\n", strings.Join(setCourses, ", "))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringSlice("set-courses", nil, "Save the default study groups, format <imm>/<course>/<group>")
}
