package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/lymphiz/internal/diagram"
	"github.com/abhisek/lymphiz/internal/ui/theme"
)

var routeCmd = &cobra.Command{
	Use:   "route <organ-key> [route-index]",
	Short: "Draw the drainage diagram of an organ route",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer func() { _ = rt.log.Sync() }()

		organ, ok := rt.dataset.Organ(args[0])
		if !ok {
			return fmt.Errorf("unknown organ %q (see 'lymphiz organs')", args[0])
		}

		indexes := make([]int, len(organ.Routes))
		for i := range indexes {
			indexes[i] = i
		}
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 || n > len(organ.Routes) {
				return fmt.Errorf("invalid route index %q: %s has %d routes", args[1], organ.Name, len(organ.Routes))
			}
			indexes = []int{n - 1}
		}

		inline, _ := cmd.Flags().GetBool("inline")
		out := cmd.OutOrStdout()
		for _, i := range indexes {
			r := organ.Routes[i]
			lipgloss.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s · %d. %s", organ.Name, i+1, r.Label)))
			if inline {
				lipgloss.Fprintln(out, diagram.Inline(r.Path))
			} else {
				lipgloss.Fprintln(out, diagram.Render(r.Path, diagram.Options{Width: 44, Captions: true, Highlight: -1}))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	routeCmd.Flags().Bool("inline", false, "Print each route on one line")
}
