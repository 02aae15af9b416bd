package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wallcable/pkg/project"
)

// initCommand creates the init command.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [project.toml]",
		Short: "Write an example project file",
		Long: `Init writes a starting point: a panel catalog and two walls, one with
knockouts. The file is TOML unless the name ends in .yaml, .yml or .json.
Edit it, then run compute.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := projectArg(args)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data, err := project.Example().Marshal(project.FormatFor(path))
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			printSuccess("Created project")
			printFile(path)
			printNextStep("Compute cables", fmt.Sprintf("%s compute %s", appName, path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
