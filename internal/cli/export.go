package cli

import (
	"context"

	"github.com/spf13/cobra"

	chartio "github.com/matzehuels/chartr/pkg/io"
)

// exportCommand creates the export command, which writes a chart's embedded
// state as indented JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export the state embedded in a chart as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return instrument(cmd, func(ctx context.Context) error {
				runner, err := c.newRunner()
				if err != nil {
					return err
				}
				if output == "" {
					return runner.Export(ctx, args[0], cmd.OutOrStdout())
				}

				st, err := runner.Load(ctx, args[0])
				if err != nil {
					return err
				}
				if err := chartio.ExportJSON(st, output); err != nil {
					return err
				}
				printSuccess("Exported state")
				printFile(output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
