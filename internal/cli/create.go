package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// createCommand creates the create command, which writes a new empty chart.
func (c *CLI) createCommand() *cobra.Command {
	var heading string

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create an empty chart",
		Long: `Create an empty chart at path, replacing any existing file.

The heading may span several lines; separate them with a newline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return instrument(cmd, func(ctx context.Context) error {
				return c.runCreate(ctx, args[0], heading)
			})
		},
	}

	cmd.Flags().StringVar(&heading, "heading", "", "heading text shown above the chart")

	return cmd
}

func (c *CLI) runCreate(ctx context.Context, path, heading string) error {
	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	res, err := runner.Create(ctx, path, heading)
	if err != nil {
		return err
	}
	prog.done("Created chart")

	printSuccess("Created chart")
	printFile(res.Path)
	printNextStep("Add an actor", fmt.Sprintf("%s add-actor %s <identity>", appName, res.Path))
	return nil
}
