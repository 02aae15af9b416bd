// Package cli implements the wallcable command-line interface.
//
// Commands read a project file (TOML), run it through the pipeline and print
// or write the results. The CLI is built using cobra, logs with
// charmbracelet/log and renders tables with lipgloss.
//
// # Commands
//
//   - init: Write an example project file
//   - compute: Print the cable schedule of each wall
//   - bom: Print the bill of materials
//   - diagram: Write cable diagrams as SVG or DOT
//   - grid: Print a map of data lines per panel
//   - walls: Pick a wall interactively and show its schedule
//   - serve: Run the HTTP API
//   - cache: Manage the local result cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wallcable/pkg/buildinfo"
	"github.com/matzehuels/wallcable/pkg/cache"
	"github.com/matzehuels/wallcable/pkg/pipeline"
	"github.com/matzehuels/wallcable/pkg/project"
)

const (
	// appName is the application name used for directories and display.
	appName = "wallcable"

	// defaultProject is the project file used when no path is given.
	defaultProject = "wallcable.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Plan power and data cabling for LED video walls",
		Long: `wallcable assigns LED panels to data lines, routes cables around knockouts
and turns the result into a cable schedule and a bill of materials.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.initCommand())
	root.AddCommand(c.computeCommand())
	root.AddCommand(c.bomCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.wallsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wallcable/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// projectArg returns the project path from args, or the default file.
func projectArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultProject
}

// loadProject reads and validates a project file.
func (c *CLI) loadProject(path string) (*project.Project, error) {
	p, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded project", "path", path, "walls", len(p.Walls), "panels", len(p.Panels))
	return p, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}
