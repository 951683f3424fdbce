package styles

import (
	"bytes"
	"encoding/xml"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontCharWidth approximates a glyph advance as a fraction of the font size
// when the embedded font cannot be parsed.
const fontCharWidth = 0.55

var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once
)

func regularFont() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// TextWidth returns the advance width of s, in pixels, at the given font size.
// Verdana is not available to the renderer, so Go Regular stands in for it.
func TextWidth(s string, size float64) float64 {
	if s == "" {
		return 0
	}
	f, err := regularFont()
	if err != nil {
		return float64(len([]rune(s))) * size * fontCharWidth
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return float64(len([]rune(s))) * size * fontCharWidth
	}
	defer func() {
		_ = face.Close()
	}()
	return fixedToFloat(font.MeasureString(face, s))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// EscapeXML escapes s for use as SVG text content or attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
