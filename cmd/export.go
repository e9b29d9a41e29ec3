package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"htwctl/pkg/config"
	"htwctl/pkg/exporter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a merged, filtered schedule to an ICS file",
	Long: `Export the selected week range as an iCalendar file with one event per
lecture occurrence. Event UIDs are stable across runs, so re-importing an
updated export replaces the old events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectionFromFlags(cmd)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		year, _ := cmd.Flags().GetInt("year")
		if year == 0 {
			if cfg, err := config.Load(); err == nil && cfg.Year != 0 {
				year = cfg.Year
			} else {
				year = time.Now().Year()
			}
		}

		weeks, headlines, err := buildSchedules(sel)
		if err != nil {
			return err
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(weeks, headlines, year, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported weeks %d-%d to %s\n", sel.start, sel.stop, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addSelectionFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "stundenplan.ics", "Output file path")
	exportCmd.Flags().IntP("year", "y", 0, "Year the calendar week labels belong to, 0 for the current year")
}
