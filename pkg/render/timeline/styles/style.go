package styles

import (
	"bytes"
	"fmt"
)

// CSS classes shared between the layout scene and the stylesheet.
const (
	ClassActor   = "actor"
	ClassSpan    = "span"
	ClassInstant = "instant"
	ClassSubline = "subline"
	ClassLabel   = "label"
	ClassHeading = "heading"
	ClassLeft    = "left"
	ClassRight   = "right"
)

// Font sizes, in pixels, used by the stylesheet.
const (
	TextFontSize  = 14.0
	LabelFontSize = 10.0
)

const stylesheet = `
    rect.span      { opacity: 0.7; }
    path.instant   { opacity: 0.8; fill: rgb(64,64,64); stroke-width: 0.5; }
    g.actor:hover rect, g.actor:hover path.instant { opacity: 1.0; }
    path           { stroke: rgb(64,64,64); stroke-width: 1; }
    path.subline   { stroke: rgb(224,224,224); stroke-width: 0.7; }
    text           { font-family: Verdana, Helvetica; font-size: 14px; }
    text.left      { font-family: Verdana, Helvetica; font-size: 14px; text-anchor: start; }
    text.right     { font-family: Verdana, Helvetica; font-size: 14px; text-anchor: end; }
    text.label     { font-size: 10px; }`

// Stylesheet returns the CSS emitted once per rendered chart.
func Stylesheet() string { return stylesheet }

// RenderDefs writes the stylesheet wrapped in an SVG <defs> block.
func RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <defs>\n    <style>%s\n    </style>\n  </defs>\n", stylesheet)
}
