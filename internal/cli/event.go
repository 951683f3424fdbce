package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartr/pkg/chart"
)

// eventOpts holds the command-line flags for the add-event command.
type eventOpts struct {
	endless bool     // open span when no duration is given
	color   string   // fill colour
	value   string   // free-text label
	tooltip string   // hover text
	fields  []string // extra attributes as key=value
	pick    bool     // choose the actor interactively
}

// addEventCommand creates the add-event command.
//
// With a duration the event is a span; without one it is an instant, or an
// open-ended span with --endless.
func (c *CLI) addEventCommand() *cobra.Command {
	var opts eventOpts

	cmd := &cobra.Command{
		Use:   "add-event <path> <actor> <start> [duration]",
		Short: "Add an event to an actor",
		Long: `Add an event to an actor's lane.

With a duration the event is a span from start to start+duration. Without
one it is an instant marker, or a span that runs to the end of the chart
with --endless.

With --pick the actor is chosen from a list and omitted from the arguments:
  chartr add-event --pick <path> <start> [duration]`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return instrument(cmd, func(ctx context.Context) error {
				return c.runAddEvent(ctx, args[0], args[1:], &opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.endless, "endless", "e", false, "open-ended span when no duration is given")
	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "fill colour, e.g. #AB7C94")
	cmd.Flags().StringVar(&opts.value, "value", "", "free-text label stored with the event")
	cmd.Flags().StringVar(&opts.tooltip, "tooltip", "", "hover text for the event")
	cmd.Flags().StringArrayVar(&opts.fields, "field", nil, "extra SVG attribute as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose the actor interactively")

	return cmd
}

func (c *CLI) runAddEvent(ctx context.Context, path string, args []string, opts *eventOpts) error {
	ea, err := parseEventArgs(args, opts.pick)
	if err != nil {
		return err
	}
	fields, err := parseFields(opts.fields)
	if err != nil {
		return err
	}

	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	if opts.pick {
		st, err := runner.Load(ctx, path)
		if err != nil {
			return err
		}
		items := actorItems(st.Store)
		if len(items) == 0 {
			printWarning("Chart has no actors")
			return nil
		}
		ea.actor, err = pickActor(items)
		if err != nil {
			return err
		}
		if ea.actor == "" {
			printInfo("No actor selected")
			return nil
		}
	}

	if ea.duration != nil && opts.endless {
		printWarning("--endless ignored: a duration was given")
	}

	prog := newProgress(c.Logger)
	res, err := runner.AddEvent(ctx, path, chart.EventSpec{
		Actor:    ea.actor,
		Start:    ea.start,
		Duration: ea.duration,
		Endless:  opts.endless,
		Color:    opts.color,
		Value:    opts.value,
		Tooltip:  opts.tooltip,
		Fields:   fields,
	})
	if err != nil {
		return err
	}
	prog.done("Added event")

	printSuccess("Added event to %s", StyleHighlight.Render(ea.actor))
	printDetail("id %s", res.EventID)
	printFile(res.Path)
	printStats(res.Actors, res.Events, res.Size)
	return nil
}
