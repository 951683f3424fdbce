// Package config loads render-option override files.
//
// An override file names any subset of the render options. Keys that are
// present replace the corresponding option; everything else keeps the value
// recovered from the artifact (or the default, for a new chart).
//
// TOML:
//
//	us_per_line = 500000
//	sublines = 5
//	heading = "Nightly build"
//
// YAML:
//
//	us_per_pixel: 5000
//	fit_heading: true
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartr/pkg/errors"
	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
)

// Overrides holds the options set by an override file. Nil fields are unset.
type Overrides struct {
	USPerLine        *uint64  `toml:"us_per_line" yaml:"us_per_line"`
	Sublines         *uint32  `toml:"sublines" yaml:"sublines"`
	USPerPixel       *uint32  `toml:"us_per_pixel" yaml:"us_per_pixel"`
	PixelsPerActor   *float64 `toml:"pixels_per_actor" yaml:"pixels_per_actor"`
	ActorMargin      *float64 `toml:"actor_margin" yaml:"actor_margin"`
	ActorNamePadding *float64 `toml:"actor_name_padding" yaml:"actor_name_padding"`
	TopMargin        *float64 `toml:"top_margin" yaml:"top_margin"`
	SideMargin       *float64 `toml:"side_margin" yaml:"side_margin"`
	Heading          *string  `toml:"heading" yaml:"heading"`
	FitHeading       *bool    `toml:"fit_heading" yaml:"fit_heading"`
}

// Load reads an override file. The format is chosen by extension:
// .toml, or .yaml/.yml.
func Load(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unsupported format (want .toml, .yaml or .yml)", path)
	}
}

// ParseTOML decodes TOML overrides. Unknown keys are rejected.
func ParseTOML(data []byte) (*Overrides, error) {
	var o Overrides
	md, err := toml.Decode(string(data), &o)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	return &o, nil
}

// ParseYAML decodes YAML overrides. Unknown keys are rejected.
func ParseYAML(data []byte) (*Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
	}
	return &o, nil
}

// Apply returns opts with the overrides applied. The result is validated;
// unusable values fail with INVALID_CONFIG. A nil receiver returns opts
// unchanged.
func (o *Overrides) Apply(opts layout.Options) (layout.Options, error) {
	if o == nil {
		return opts, nil
	}
	set(&opts.USPerLine, o.USPerLine)
	set(&opts.Sublines, o.Sublines)
	set(&opts.USPerPixel, o.USPerPixel)
	set(&opts.PixelsPerActor, o.PixelsPerActor)
	set(&opts.ActorMargin, o.ActorMargin)
	set(&opts.ActorNamePadding, o.ActorNamePadding)
	set(&opts.TopMargin, o.TopMargin)
	set(&opts.SideMargin, o.SideMargin)
	set(&opts.Heading, o.Heading)
	set(&opts.FitHeading, o.FitHeading)
	if err := opts.Validate(); err != nil {
		return layout.Options{}, err
	}
	return opts, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
