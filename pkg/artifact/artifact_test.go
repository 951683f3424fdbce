package artifact

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/chartr/pkg/errors"
	"github.com/matzehuels/chartr/pkg/event"
	chartio "github.com/matzehuels/chartr/pkg/io"
)

func sampleState(t *testing.T) chartio.State {
	t.Helper()
	st := chartio.NewState()
	st.Options.Heading = "deploy -- prod"
	for _, name := range []string{"A", "B"} {
		if _, err := st.Store.RegisterActor(event.Actor{Identity: name}); err != nil {
			t.Fatal(err)
		}
	}
	span := event.NewSpan(1_500_000, 750_000).WithField("fill", "#AB7C94")
	span.Value = "step--1"
	for actor, e := range map[string]event.Event{
		"A": span,
		"B": event.NewOpenSpan(-5_000_000),
	} {
		if err := st.Store.AddEvent(actor, e); err != nil {
			t.Fatal(err)
		}
	}
	return st
}

func comment(t *testing.T, svg []byte) string {
	t.Helper()
	s := string(svg)
	start := strings.Index(s, "<!--")
	end := strings.Index(s, "-->")
	if start < 0 || end < start {
		t.Fatalf("no comment in:\n%s", s)
	}
	return s[start+4 : end]
}

func TestEncodeEmbedsStateFirst(t *testing.T) {
	svg, err := Encode(sampleState(t))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := string(svg)
	if !strings.HasPrefix(s, "<svg ") {
		t.Fatalf("artifact does not start with <svg: %.40q", s)
	}
	if i, j := strings.Index(s, "<!--"), strings.Index(s, "<defs>"); i < 0 || i > j {
		t.Errorf("state comment is not the first child")
	}
	if c := comment(t, svg); strings.Contains(c, "--") {
		t.Errorf("comment contains \"--\": %s", c)
	}
}

func TestRoundTrip(t *testing.T) {
	st := sampleState(t)
	first, err := Encode(st)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := DecodeBytes(first)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Options.Heading != "deploy -- prod" {
		t.Errorf("Heading = %q", got.Options.Heading)
	}
	events := slices.Collect(got.Store.AllEvents())
	if len(events) != 2 || events[0].Value != "step--1" {
		t.Fatalf("events = %+v", events)
	}

	second, err := Encode(got)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("re-rendered artifact differs:\n%s\n---\n%s", first, second)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"no comment", `<svg xmlns="http://www.w3.org/2000/svg"><g/></svg>`, errors.ErrCodeStateNotFound},
		{"nested comment only", `<svg><g><!-- {"actors":[]} --></g></svg>`, errors.ErrCodeStateNotFound},
		{"not xml", `hello`, errors.ErrCodeStateNotFound},
		{"empty", ``, errors.ErrCodeStateNotFound},
		{"comment not json", `<svg><!-- drawn by hand --></svg>`, errors.ErrCodeMalformedState},
		{"impossible state", `<svg><!-- {"options":{"us_per_line":0}} --></svg>`, errors.ErrCodeUnrecoverable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.input))
			if err == nil {
				t.Fatal("Decode() = nil error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestDecodeLegacyArtifact(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg">
<!-- [{"opts":{"us_per_line":1000000,"sublines":10,"us_per_pixel":10000,"pixels_per_actor":20.0,"actor_margin":0.5,"actor_name_padding":5.0,"top_margin":20.0,"side_margin":20.0,"heading":""}},{"actors":{"A":{"identity":"A","tooltip":null}},"events":{"A":[{"fields":{},"kind":{"Span":[0,500]},"value":"","tooltip":null}]}}] -->
</svg>`
	st, err := DecodeBytes([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if st.Store.ActorCount() != 1 || st.Store.EventCount() != 1 {
		t.Errorf("counts = %d, %d, want 1, 1", st.Store.ActorCount(), st.Store.EventCount())
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.svg")
	if err := Save(path, sampleState(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Overwrite in place.
	if err := Save(path, sampleState(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1", len(entries))
	}

	st, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Store.EventCount() != 2 {
		t.Errorf("EventCount = %d, want 2", st.Store.EventCount())
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.svg"))
	if !errors.Is(err, errors.ErrCodeArtifactRead) {
		t.Errorf("Load(missing) = %v, want %s", err, errors.ErrCodeArtifactRead)
	}
}

func TestSaveUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chart.svg")
	err := Save(path, sampleState(t))
	if !errors.Is(err, errors.ErrCodeArtifactWrite) {
		t.Errorf("Save() = %v, want %s", err, errors.ErrCodeArtifactWrite)
	}
}
