package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartr/pkg/chart"
	"github.com/matzehuels/chartr/pkg/event"
	chartio "github.com/matzehuels/chartr/pkg/io"
	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
)

// showCommand creates the show command, which prints a chart's options and events.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Print the options and events stored in a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return instrument(cmd, func(ctx context.Context) error {
				runner, err := c.newRunner()
				if err != nil {
					return err
				}
				st, err := runner.Load(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderShow(args[0], st))
				return nil
			})
		},
	}
}

func renderShow(path string, st chartio.State) string {
	var b strings.Builder
	o := st.Options

	b.WriteString(StyleTitle.Render(path))
	b.WriteString("\n")
	if lines := layout.HeadingLines(o.Heading); len(lines) > 0 {
		b.WriteString(StyleDim.Render(strings.Join(lines, " / ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, kv := range [][2]string{
		{"us_per_line", strconv.FormatUint(o.USPerLine, 10)},
		{"sublines", strconv.FormatUint(uint64(o.Sublines), 10)},
		{"us_per_pixel", strconv.FormatUint(uint64(o.USPerPixel), 10)},
		{"pixels_per_actor", layout.Num(o.PixelsPerActor)},
		{"actor_margin", layout.Num(o.ActorMargin)},
		{"actor_name_padding", layout.Num(o.ActorNamePadding)},
		{"top_margin", layout.Num(o.TopMargin)},
		{"side_margin", layout.Num(o.SideMargin)},
		{"fit_heading", strconv.FormatBool(o.FitHeading)},
	} {
		b.WriteString(keyValue(kv[0], kv[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := eventRows(st.Store)
	if len(rows) == 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d actors, no events", st.Store.ActorCount())))
		return b.String()
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Actor", "Kind", "Start", "End", "Fill", "Value", "Tooltip").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 2 || col == 3:
				return StyleNumber
			}
			return StyleValue
		})
	b.WriteString(t.Render())
	return b.String()
}

// eventRows lists every event, including a placeholder row for actors
// without events.
func eventRows(s *event.Store) [][]string {
	var rows [][]string
	for id := range s.Actors() {
		events, err := s.EventsFor(id)
		if err != nil {
			continue
		}
		n := 0
		for e := range events {
			n++
			end := "open"
			if t, ok := e.EndTime(); ok {
				end = layout.FormatTime(t)
			}
			rows = append(rows, []string{
				id,
				e.Kind.String(),
				layout.FormatTime(e.Start),
				end,
				e.Fields[chart.FillField],
				e.Value,
				e.Tooltip,
			})
		}
		if n == 0 {
			rows = append(rows, []string{id, "—", "", "", "", "", ""})
		}
	}
	return rows
}
