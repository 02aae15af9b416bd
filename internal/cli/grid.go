package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wallcable/pkg/pipeline"
)

// gridCommand creates the grid command.
func (c *CLI) gridCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "grid [project.toml]",
		Short: "Print a map of data lines per panel",
		Long: `Grid prints each wall as seen from the audience, with the data line number
of every panel. Knockouts show as x and the first panel of each line is
underlined.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.run(cmd.Context(), projectArg(args), flags, pipeline.Options{})
			if err != nil {
				return err
			}
			for _, w := range res.Walls {
				fmt.Fprintln(stdout, StyleTitle.Render(w.Name))
				if w.Cabling == nil {
					printWarning("nothing to compute (empty wall)")
					continue
				}
				fmt.Fprintln(stdout, gridMap(w.Grid, w.Cabling))
				printDetail("%d panels on %d lines", w.Cabling.Totals.Panels, w.Cabling.Totals.DataLines)
				printNewline()
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
