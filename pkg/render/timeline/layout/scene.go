package layout

import (
	"strconv"

	"github.com/matzehuels/chartr/pkg/event"
)

// Scene is the positioned output of Compute.
type Scene struct {
	Width, Height    float64 // Canvas size
	OriginX, OriginY float64 // Translation of the timeline group
	BoxWidth         float64 // Pixel width of the time range
	BoxHeight        float64 // Total height of all lanes
	FirstTime        int64   // Left bound of the time range (<= 0)
	LastTime         int64   // Right bound of the time range
	Heading          []Text  // Heading lines, document coordinates
	Grid             []GridLine
	Lanes            []Lane
}

// Text is a positioned piece of text.
type Text struct {
	Content string
	Class   string
	X, Y    float64
	Tooltip string
}

// GridLine is a vertical time marker spanning the box height.
type GridLine struct {
	Time   int64
	X      float64
	Height float64
	Major  bool
	Label  *Text // nil for sublines
}

// Path returns the SVG path data of the line.
func (g GridLine) Path() string {
	return "M" + Num(g.X) + ",0 l0," + Num(g.Height) + " z"
}

// Lane is one actor's horizontal strip.
type Lane struct {
	Actor  event.ActorID
	Y      float64
	Shapes []Shape
	Label  Text
}

// Element names a shape's SVG element.
type Element string

const (
	ElementRect Element = "rect"
	ElementPath Element = "path"
)

// Shape is a drawn event.
type Shape struct {
	EventID string
	Kind    event.Kind
	Element Element
	Attrs   []Attr // Geometry and class first, merged event fields after
	Tooltip string
}

// Attr is a single SVG attribute.
type Attr struct {
	Name, Value string
}

// Attr returns the value of the named attribute.
func (s Shape) Attr(name string) (string, bool) {
	for _, a := range s.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Num formats a pixel value with the shortest exact decimal representation.
func Num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
