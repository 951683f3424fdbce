package sink

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/chartr/pkg/event"
	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
)

func scene(t *testing.T, heading string) layout.Scene {
	t.Helper()
	s := event.NewStore()
	a, _ := s.RegisterActor(event.Actor{Identity: "A", Tooltip: "first <actor>"})
	b, _ := s.RegisterActor(event.Actor{Identity: "B"})
	e := event.NewSpan(1_500_000, 750_000).WithField("fill", "#AB7C94")
	e.Tooltip = "build & test"
	_ = s.AddEvent(a, e)
	_ = s.AddEvent(b, event.NewSpan(-5_000_000, 2_000_000))
	_ = s.AddEvent(b, event.NewInstant(-1_000_000))

	opts := layout.DefaultOptions()
	opts.Heading = heading
	sc, err := layout.Compute(opts, s)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	return sc
}

func TestRenderSVGWellFormed(t *testing.T) {
	out := RenderSVG(scene(t, "My Heading\nanother <line>"), WithAnnotation(`{"k":"v"}`))

	d := xml.NewDecoder(strings.NewReader(string(out)))
	for {
		_, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("RenderSVG() produced invalid XML: %v\n%s", err, out)
		}
	}
}

func TestRenderSVGStructure(t *testing.T) {
	out := string(RenderSVG(scene(t, "My Heading"), WithAnnotation("payload")))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 765 125" width="765" height="125">`) {
		t.Errorf("unexpected svg header: %s", out[:strings.Index(out, "\n")])
	}

	note := strings.Index(out, "<!-- payload -->")
	defs := strings.Index(out, "<defs>")
	heading := strings.Index(out, `class="heading"`)
	group := strings.Index(out, "<g transform=")
	if note < 0 || defs < 0 || heading < 0 || group < 0 {
		t.Fatalf("missing sections: note=%d defs=%d heading=%d group=%d", note, defs, heading, group)
	}
	if !(note < defs && defs < heading && heading < group) {
		t.Errorf("sections out of order: note=%d defs=%d heading=%d group=%d", note, defs, heading, group)
	}

	if n := strings.Count(out, `<g class="actor">`); n != 2 {
		t.Errorf("actor groups = %d, want 2", n)
	}
	if !strings.Contains(out, `<g transform="translate(520, 65)">`) {
		t.Errorf("missing timeline translation")
	}
	if !strings.Contains(out, `fill="#AB7C94"`) {
		t.Errorf("missing merged fill attribute")
	}
	if !strings.Contains(out, `class="instant"`) {
		t.Errorf("missing instant marker")
	}
	if !strings.Contains(out, `<text class="label" x="100" y="-5">1.000000</text>`) {
		t.Errorf("missing grid label at 1s")
	}
	if !strings.Contains(out, `class="subline"`) {
		t.Errorf("missing sublines")
	}
}

func TestRenderSVGTooltips(t *testing.T) {
	out := string(RenderSVG(scene(t, "")))

	if !strings.Contains(out, "<title>build &amp; test</title></rect>") {
		t.Errorf("missing escaped event tooltip")
	}
	if !strings.Contains(out, "<title>first &lt;actor&gt;</title>A</text>") {
		t.Errorf("missing escaped actor tooltip")
	}
}

func TestRenderSVGWithoutAnnotation(t *testing.T) {
	out := string(RenderSVG(scene(t, "")))
	if strings.Contains(out, "<!--") {
		t.Error("RenderSVG() without WithAnnotation should not emit a comment")
	}
}

func TestRenderSVGEscapesHeading(t *testing.T) {
	out := string(RenderSVG(scene(t, "a < b & c")))
	if !strings.Contains(out, ">a &lt; b &amp; c</text>") {
		t.Errorf("heading not escaped")
	}
}
