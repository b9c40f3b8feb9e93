package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var organsCmd = &cobra.Command{
	Use:   "organs",
	Short: "List the organs and routes of the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer func() { _ = rt.log.Sync() }()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-20s  %-22s  %6s  %5s  %s\n", "KEY", "NAME", "ROUTES", "CASE", "STEPS")
		fmt.Fprintln(out, strings.Repeat("─", 72))

		for _, o := range rt.dataset.Organs() {
			steps := make([]string, len(o.Routes))
			for i, r := range o.Routes {
				steps[i] = fmt.Sprint(len(r.Path))
			}
			hasCase := "-"
			if o.HasCase() {
				hasCase = "sim"
			}
			fmt.Fprintf(out, "%-20s  %s  %6d  %5s  %s\n",
				o.Key, padCell(o.Name, 22), len(o.Routes), hasCase, strings.Join(steps, "/"))
		}

		fmt.Fprintf(out, "\n%d organs, %d distinct structures (%s)\n",
			len(rt.dataset.Organs()), rt.dataset.AllNodes().Len(), rt.dataset.Source())
		return nil
	},
}

// padCell left-aligns s in a cell of width terminal columns. Longer values
// are kept whole.
func padCell(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, s)
}
