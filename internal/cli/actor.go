package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartr/pkg/event"
)

// addActorCommand creates the add-actor command, which registers a new lane.
func (c *CLI) addActorCommand() *cobra.Command {
	var tooltip string

	cmd := &cobra.Command{
		Use:   "add-actor <path> <identity>",
		Short: "Add an actor to a chart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return instrument(cmd, func(ctx context.Context) error {
				return c.runAddActor(ctx, args[0], event.Actor{Identity: args[1], Tooltip: tooltip})
			})
		},
	}

	cmd.Flags().StringVar(&tooltip, "tooltip", "", "hover text for the actor label")

	return cmd
}

func (c *CLI) runAddActor(ctx context.Context, path string, a event.Actor) error {
	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	res, err := runner.AddActor(ctx, path, a)
	if err != nil {
		return err
	}
	prog.done("Added actor")

	printSuccess("Added actor %s", StyleHighlight.Render(a.Identity))
	printFile(res.Path)
	printStats(res.Actors, res.Events, res.Size)
	printNextStep("Add an event", fmt.Sprintf("%s add-event %s %s <start> [duration]", appName, res.Path, a.Identity))
	return nil
}
