package cmd

import (
	"fmt"

	"htwctl/pkg/exporter"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a merged, filtered schedule as a table",
	Long: `Print the selected week range as a table, rendered to plain text with
w3m. Use --html to get the raw HTML document instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectionFromFlags(cmd)
		if err != nil {
			return err
		}

		weeks, headlines, err := buildSchedules(sel)
		if err != nil {
			return err
		}

		doc := exporter.RenderDocument(headlines, weeks, sel.start)

		if html, _ := cmd.Flags().GetBool("html"); html {
			fmt.Println(doc)
			return nil
		}

		text, err := exporter.Textify(doc)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	addSelectionFlags(showCmd)
	showCmd.Flags().Bool("html", false, "Print raw HTML instead of plain text")
}
