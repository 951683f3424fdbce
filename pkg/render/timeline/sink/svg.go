package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
	"github.com/matzehuels/chartr/pkg/render/timeline/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	annotation string
	annotate   bool
}

// WithAnnotation embeds text as an XML comment ahead of all visual content.
// The caller must ensure text contains no "--" sequence.
func WithAnnotation(text string) SVGOption {
	return func(r *svgRenderer) {
		r.annotation = text
		r.annotate = true
	}
}

// RenderSVG renders the scene as a standalone SVG document.
func RenderSVG(sc layout.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := layout.Num(sc.Width), layout.Num(sc.Height)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n", w, h, w, h)

	if r.annotate {
		fmt.Fprintf(&buf, "<!-- %s -->\n", r.annotation)
	}

	styles.RenderDefs(&buf)
	for _, t := range sc.Heading {
		renderText(&buf, "  ", t)
	}

	fmt.Fprintf(&buf, "  <g transform=\"translate(%s, %s)\">\n", layout.Num(sc.OriginX), layout.Num(sc.OriginY))
	renderGrid(&buf, sc.Grid)
	for _, l := range sc.Lanes {
		renderLane(&buf, l)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, grid []layout.GridLine) {
	for _, g := range grid {
		if g.Label != nil {
			renderText(buf, "    ", *g.Label)
			fmt.Fprintf(buf, "    <path d=\"%s\"/>\n", g.Path())
			continue
		}
		fmt.Fprintf(buf, "    <path d=\"%s\" class=\"%s\"/>\n", g.Path(), styles.ClassSubline)
	}
}

func renderLane(buf *bytes.Buffer, l layout.Lane) {
	fmt.Fprintf(buf, "    <g class=\"%s\">\n", styles.ClassActor)
	for _, sh := range l.Shapes {
		renderShape(buf, sh)
	}
	renderText(buf, "      ", l.Label)
	buf.WriteString("    </g>\n")
}

func renderShape(buf *bytes.Buffer, sh layout.Shape) {
	fmt.Fprintf(buf, "      <%s", sh.Element)
	for _, a := range sh.Attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Name, styles.EscapeXML(a.Value))
	}
	if sh.Tooltip == "" {
		buf.WriteString("/>\n")
		return
	}
	fmt.Fprintf(buf, "><title>%s</title></%s>\n", styles.EscapeXML(sh.Tooltip), sh.Element)
}

func renderText(buf *bytes.Buffer, indent string, t layout.Text) {
	fmt.Fprintf(buf, `%s<text class="%s" x="%s" y="%s">`, indent, t.Class, layout.Num(t.X), layout.Num(t.Y))
	if t.Tooltip != "" {
		fmt.Fprintf(buf, "<title>%s</title>", styles.EscapeXML(t.Tooltip))
	}
	fmt.Fprintf(buf, "%s</text>\n", styles.EscapeXML(t.Content))
}
