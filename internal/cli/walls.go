package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wallcable/pkg/pipeline"
)

// wallsCommand creates the walls command.
func (c *CLI) wallsCommand() *cobra.Command {
	var (
		flags       runFlags
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "walls [project.toml]",
		Short: "List the walls of a project",
		Long: `Walls lists every wall with its panel, size, mode and knockout count.

With -i, pick a wall interactively and print its cable schedule.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := projectArg(args)
			p, err := c.loadProject(path)
			if err != nil {
				return err
			}

			if !interactive {
				t := newTable("ID", "Wall", "Panel", "Size", "Mode", "Knockouts")
				for i := range p.Walls {
					w := &p.Walls[i]
					t.Row(append([]string{shortID(w.ID)}, wallRow(w)...)...)
				}
				fmt.Fprintln(stdout, StyleTitle.Render(p.Name))
				fmt.Fprintln(stdout, t.Render())
				return nil
			}

			finalModel, err := tea.NewProgram(NewWallListModel(p.Walls)).Run()
			if err != nil {
				return err
			}
			fm, ok := finalModel.(WallListModel)
			if !ok || fm.Selected == nil {
				printDetail("No selection made")
				return nil
			}

			flags.walls = []string{fm.Selected.ID}
			res, err := c.run(cmd.Context(), path, flags, pipeline.Options{})
			if err != nil {
				return err
			}
			printWall(&res.Walls[0], nil)
			printNextStep("Draw it", fmt.Sprintf("%s diagram %s --wall %q", appName, path, fm.Selected.Name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a wall and print its schedule")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
