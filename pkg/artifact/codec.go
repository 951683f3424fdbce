package artifact

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/matzehuels/chartr/pkg/errors"
	chartio "github.com/matzehuels/chartr/pkg/io"
	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
	"github.com/matzehuels/chartr/pkg/render/timeline/sink"
)

var commentSafe = strings.NewReplacer("--", `-\u002d`)

// Payload returns the JSON state as it is embedded in the comment.
func Payload(st chartio.State) ([]byte, error) {
	data, err := chartio.Marshal(st)
	if err != nil {
		return nil, err
	}
	return []byte(commentSafe.Replace(string(data))), nil
}

// Encode renders st and embeds its state in the resulting SVG.
func Encode(st chartio.State) ([]byte, error) {
	payload, err := Payload(st)
	if err != nil {
		return nil, err
	}
	scene, err := layout.Compute(st.Options, st.Store)
	if err != nil {
		return nil, err
	}
	return sink.RenderSVG(scene, sink.WithAnnotation(string(payload))), nil
}

// Decode recovers the state embedded in an SVG artifact.
func Decode(r io.Reader) (chartio.State, error) {
	payload, err := findPayload(r)
	if err != nil {
		return chartio.State{}, err
	}
	return chartio.Unmarshal(payload)
}

// DecodeBytes is Decode over an in-memory artifact.
func DecodeBytes(data []byte) (chartio.State, error) {
	return Decode(bytes.NewReader(data))
}

// findPayload returns the first comment that is either a top-level node or
// a direct child of the root element.
func findPayload(r io.Reader) ([]byte, error) {
	dec := xml.NewDecoder(r)
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeStateNotFound, "no embedded state found")
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStateNotFound, err, "no embedded state found")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.Comment:
			if depth <= 1 {
				return bytes.TrimSpace(t), nil
			}
		}
	}
}
