package layout

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/chartr/pkg/event"
	"github.com/matzehuels/chartr/pkg/render/timeline/styles"
)

// LineHeight is the approximate height of one line of 14px text.
const LineHeight = 15.0

// labelBaseline positions lane labels at 80% of the lane height, roughly
// where the baseline of a lane-sized font sits.
const labelBaseline = 0.8

// gridLabelY is the vertical offset of grid labels above the box.
const gridLabelY = -5.0

// Compute lays out the store's events according to opts.
//
// Compute performs no validation of its own: it only fails when iterating
// the store fails.
func Compute(opts Options, s *event.Store) (Scene, error) {
	first, last := timeBounds(s)

	lanes, err := orderLanes(s)
	if err != nil {
		return Scene{}, err
	}

	headingHeight := HeadingHeight(opts)
	boxWidth := opts.ToPixel(last - first)
	boxHeight := float64(len(lanes)) * opts.PixelsPerActor

	sc := Scene{
		Width:     boxWidth + 2*opts.SideMargin,
		Height:    boxHeight + headingHeight + opts.TopMargin,
		OriginX:   opts.SideMargin - opts.ToPixel(first),
		OriginY:   headingHeight,
		BoxWidth:  boxWidth,
		BoxHeight: boxHeight,
		FirstTime: first,
		LastTime:  last,
		Heading:   layoutHeading(opts),
		Grid:      layoutGrid(opts, first, last, boxHeight),
	}

	if opts.FitHeading {
		for _, h := range sc.Heading {
			sc.Width = max(sc.Width, styles.TextWidth(h.Content, styles.TextFontSize)+2*opts.SideMargin)
		}
	}

	firstPixel := opts.ToPixel(first)
	for i, l := range lanes {
		lane, err := layoutLane(opts, s, l, float64(i)*opts.PixelsPerActor, firstPixel, boxWidth)
		if err != nil {
			return Scene{}, err
		}
		sc.Lanes = append(sc.Lanes, lane)
	}
	return sc, nil
}

// timeBounds returns the earliest start clamped to <= 0 and the latest
// determinate end (0 when nothing has an end).
func timeBounds(s *event.Store) (first, last int64) {
	hasEnd := false
	for e := range s.AllEvents() {
		first = min(first, e.StartTime())
		if end, ok := e.EndTime(); ok {
			if !hasEnd || end > last {
				last = end
			}
			hasEnd = true
		}
	}
	return first, last
}

type laneRef struct {
	actor event.ActorID
	start int64
}

// orderLanes returns the actors that have events, ordered by the start of
// their first event. Ties keep the store's lexicographic actor order.
func orderLanes(s *event.Store) ([]laneRef, error) {
	var lanes []laneRef
	for id := range s.Actors() {
		events, err := s.EventsFor(id)
		if err != nil {
			return nil, err
		}
		for e := range events {
			lanes = append(lanes, laneRef{actor: id, start: e.StartTime()})
			break
		}
	}
	slices.SortStableFunc(lanes, func(a, b laneRef) int {
		return cmp.Compare(a.start, b.start)
	})
	return lanes, nil
}

func layoutLane(opts Options, s *event.Store, ref laneRef, y, firstPixel, boxWidth float64) (Lane, error) {
	events, err := s.EventsFor(ref.actor)
	if err != nil {
		return Lane{}, fmt.Errorf("lane %s: %w", ref.actor, err)
	}

	lane := Lane{Actor: ref.actor, Y: y}
	height := opts.PixelsPerActor - 2*opts.ActorMargin
	rightEdge := firstPixel + boxWidth

	for e := range events {
		var sh Shape
		switch e.Kind {
		case event.KindSpan:
			x := opts.ToPixel(e.Start)
			var width float64
			if e.Duration != nil {
				width = opts.ToPixel(*e.Duration)
			} else {
				width = max(0, rightEdge-x)
			}
			sh = Shape{Element: ElementRect, Attrs: []Attr{
				{"class", styles.ClassSpan},
				{"width", Num(width)},
				{"height", Num(height)},
				{"x", Num(x)},
				{"y", Num(y + opts.ActorMargin)},
			}}
		case event.KindInstant:
			sh = Shape{Element: ElementPath, Attrs: []Attr{
				{"class", styles.ClassInstant},
				{"d", diamond(opts.ToPixel(e.Start), y+opts.PixelsPerActor/2, height/2)},
			}}
		default:
			return Lane{}, fmt.Errorf("lane %s: unsupported event kind %s", ref.actor, e.Kind)
		}
		sh.EventID = e.ID
		sh.Kind = e.Kind
		sh.Tooltip = e.Tooltip
		sh.Attrs = mergeFields(sh.Attrs, e.Fields)
		lane.Shapes = append(lane.Shapes, sh)
	}

	actor, _ := s.Actor(ref.actor)
	lane.Label = labelFor(opts, actor, ref.start, y, firstPixel, boxWidth)
	return lane, nil
}

// labelFor anchors the actor name at its first event. Starts left of the
// box midpoint get a left-aligned label to the right of the anchor; the rest
// get a right-aligned label to its left, so labels never run off the chart.
func labelFor(opts Options, a event.Actor, start int64, y, firstPixel, boxWidth float64) Text {
	x := opts.ToPixel(start)
	class, padding := styles.ClassLeft, opts.ActorNamePadding
	if x >= firstPixel+boxWidth/2 {
		class, padding = styles.ClassRight, -opts.ActorNamePadding
	}
	return Text{
		Content: a.Identity,
		Class:   class,
		X:       x + padding,
		Y:       y + opts.PixelsPerActor*labelBaseline,
		Tooltip: a.Tooltip,
	}
}

// mergeFields adds event fields to attrs in key order. A field whose
// attribute already exists is prepended to the existing value.
func mergeFields(attrs []Attr, fields map[string]string) []Attr {
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		v := fields[k]
		i := slices.IndexFunc(attrs, func(a Attr) bool { return a.Name == k })
		if i < 0 {
			attrs = append(attrs, Attr{k, v})
			continue
		}
		attrs[i].Value = v + " " + attrs[i].Value
	}
	return attrs
}

func diamond(cx, cy, r float64) string {
	return fmt.Sprintf("M%s,%s L%s,%s L%s,%s L%s,%s Z",
		Num(cx), Num(cy-r),
		Num(cx+r), Num(cy),
		Num(cx), Num(cy+r),
		Num(cx-r), Num(cy))
}

// HeadingLines splits the heading into its lines. An empty heading has no
// lines and a trailing newline does not add one.
func HeadingLines(heading string) []string {
	if heading == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(heading, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// HeadingHeight is the vertical space reserved above the box: the top
// margin, one line per heading line, and two blank lines.
func HeadingHeight(opts Options) float64 {
	lines := float64(len(HeadingLines(opts.Heading)))
	return opts.TopMargin + lines*LineHeight + 2*LineHeight
}

func layoutHeading(opts Options) []Text {
	var out []Text
	y := opts.TopMargin + LineHeight
	for _, line := range HeadingLines(opts.Heading) {
		out = append(out, Text{Content: line, Class: styles.ClassHeading, X: opts.SideMargin, Y: y})
		y += LineHeight
	}
	return out
}

// layoutGrid places a labelled line at every multiple of USPerLine between
// the bounds rounded outward, and Sublines-1 evenly spaced sublines inside
// each interval.
func layoutGrid(opts Options, first, last int64, height float64) []GridLine {
	if opts.USPerLine == 0 || opts.USPerPixel == 0 {
		return nil
	}
	step := int64(opts.USPerLine)
	start := floorDiv(first, step) * step
	end := ceilDiv(last, step) * step
	subs := int64(opts.Sublines)

	var grid []GridLine
	for t := start; t <= end; t += step {
		x := opts.ToPixel(t)
		grid = append(grid, GridLine{
			Time:   t,
			X:      x,
			Height: height,
			Major:  true,
			Label:  &Text{Content: FormatTime(t), Class: styles.ClassLabel, X: x, Y: gridLabelY},
		})
		if t == end {
			break
		}
		for k := int64(1); k < subs; k++ {
			st := t + k*step/subs
			grid = append(grid, GridLine{Time: st, X: opts.ToPixel(st), Height: height})
		}
	}
	return grid
}

// FormatTime renders microseconds as "seconds.microseconds", e.g.
// 1500000 -> "1.500000" and -500000 -> "-0.500000".
func FormatTime(us int64) string {
	sign := ""
	if us < 0 {
		sign = "-"
	}
	abs := us
	if abs < 0 {
		abs = -abs
	}
	return fmt.Sprintf("%s%d.%06d", sign, abs/1_000_000, abs%1_000_000)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
