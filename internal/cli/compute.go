package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/pipeline"
)

// runFlags are shared by every command that runs the pipeline.
type runFlags struct {
	walls   []string
	noCache bool
	refresh bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.walls, "wall", "w", nil, "only these walls (name or ID, repeatable)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute cached results")
}

// run loads the project at path and executes the pipeline on it.
func (c *CLI) run(ctx context.Context, path string, f runFlags, opts pipeline.Options) (*pipeline.Result, error) {
	p, err := c.loadProject(path)
	if err != nil {
		return nil, err
	}
	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Walls = f.walls
	opts.Refresh = f.refresh
	opts.Logger = c.Logger
	return runner.Execute(ctx, p, opts)
}

// computeCommand creates the compute command.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		flags   runFlags
		catsStr string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "compute [project.toml]",
		Short: "Print the cable schedule of each wall",
		Long: `Compute assigns panels to data lines and prints every cable run of each wall:
power, data home runs, bridge jumpers, trunks and the media server link.

Results are cached locally; an unchanged wall is not recomputed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := parseCategories(catsStr)
			if err != nil {
				return err
			}
			prog := newProgress(c.Logger)
			res, err := c.run(cmd.Context(), projectArg(args), flags, pipeline.Options{})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(res)
			}
			for i := range res.Walls {
				w := &res.Walls[i]
				printWall(w, cats)
				prog.wall(w.Name, w.CacheInfo.ComputeHit)
			}
			prog.done(fmt.Sprintf("Computed %d walls", prog.walls))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&catsStr, "category", "", "cable categories to list: power, data, bridge, trunk, signal (comma-separated)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")

	return cmd
}

// printWall prints the heading, stats, warnings and cable table of one wall.
func printWall(w *pipeline.WallResult, cats []cabling.Category) {
	fmt.Fprintln(stdout, StyleTitle.Render(w.Name))
	if w.Cabling == nil {
		printWarning("nothing to compute (empty wall)")
		printNewline()
		return
	}
	t := w.Cabling.Totals
	printStats(t.Panels, t.DataLines, t.Cables, w.CacheInfo.ComputeHit)
	for _, i := range w.Cabling.Overloaded {
		printWarning("line %d carries %d panels", i+1, len(w.Cabling.Lines[i]))
	}
	fmt.Fprintln(stdout, cableTable(w.Cabling, cats...))
	printNewline()
}

func parseCategories(s string) ([]cabling.Category, error) {
	if s == "" {
		return nil, nil
	}
	var cats []cabling.Category
	for _, part := range strings.Split(s, ",") {
		cat := cabling.Category(strings.ToLower(strings.TrimSpace(part)))
		if !slices.Contains(cabling.Categories, cat) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown cable category %q", part)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
