package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wallcable/pkg/pipeline"
)

// diagramCommand creates the diagram command.
func (c *CLI) diagramCommand() *cobra.Command {
	var (
		flags      runFlags
		formatsStr string
		outDir     string
		power      bool
	)

	cmd := &cobra.Command{
		Use:   "diagram [project.toml]",
		Short: "Write cable diagrams",
		Long: `Diagram draws each wall's data lines, home runs, jumpers and trunks with
Graphviz and writes one file per wall and format, named after the wall.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}

			spinner := newSpinnerWithContext(cmd.Context(), "Rendering diagrams...")
			spinner.Start()
			restore := withSpinnerHooks(spinner)
			res, err := c.run(cmd.Context(), projectArg(args), flags, pipeline.Options{
				Formats: formats,
				Power:   power,
			})
			restore()
			if err != nil {
				spinner.StopWithError("Rendering failed")
				return err
			}
			spinner.Stop()

			paths, err := writeArtifacts(res, formats, outDir)
			if err != nil {
				return err
			}
			printSuccess("Wrote %d diagrams", len(paths))
			for _, p := range paths {
				printFile(p)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, json (comma-separated)")
	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "output directory")
	cmd.Flags().BoolVar(&power, "power", false, "include power runs")

	return cmd
}

// writeArtifacts writes every wall's artifacts into dir and returns the paths.
func writeArtifacts(res *pipeline.Result, formats []string, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	var paths []string
	for i := range res.Walls {
		w := &res.Walls[i]
		for _, format := range formats {
			data, err := w.Artifact(format)
			if err != nil {
				return paths, err
			}
			path := filepath.Join(dir, slug(w.Name)+"."+format)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return paths, fmt.Errorf("write %s: %w", path, err)
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// slug turns a wall name into a file name: "Stage Left" becomes "stage-left".
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "wall"
	}
	return s
}
