package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "htwctl",
	Short: "A CLI and TUI for HTW Dresden timetables",
	Long: `htwctl scrapes the weekly schedules of one or more HTW Dresden study
groups, merges them without duplicate room bookings, filters lectures and
teachers, and prints the result as a table or exports it to an .ics file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
