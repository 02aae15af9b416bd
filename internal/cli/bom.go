package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wallcable/pkg/pipeline"
)

// bomCommand creates the bom command.
func (c *CLI) bomCommand() *cobra.Command {
	var (
		flags   runFlags
		perWall bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "bom [project.toml]",
		Short: "Print the bill of materials",
		Long: `Bom counts stock cables by category, type and length across all walls of
the project, with total footage per cable type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.run(cmd.Context(), projectArg(args), flags, pipeline.Options{})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(res.BOM)
			}

			if perWall {
				for _, w := range res.Walls {
					fmt.Fprintln(stdout, StyleTitle.Render(w.Name))
					fmt.Fprintln(stdout, bomTable(w.BOM))
					printNewline()
				}
			}
			fmt.Fprintln(stdout, StyleTitle.Render(fmt.Sprintf("%s · %d walls", res.Project, len(res.Walls))))
			fmt.Fprintln(stdout, bomTable(res.BOM))
			printKeyValue("cables", fmt.Sprint(res.BOM.Count()))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&perWall, "per-wall", false, "also print a list per wall")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the project list as JSON")

	return cmd
}
