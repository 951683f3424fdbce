package layout

import (
	"time"

	"github.com/matzehuels/chartr/pkg/errors"
)

// Options controls the timeline scale and chart chrome geometry. It is
// persisted inside the artifact next to the event store.
type Options struct {
	USPerLine        uint64  // Microseconds between labelled grid lines
	Sublines         uint32  // Subdivisions of each grid interval
	USPerPixel       uint32  // Microseconds per horizontal pixel
	PixelsPerActor   float64 // Lane height
	ActorMargin      float64 // Vertical inset of shapes within a lane
	ActorNamePadding float64 // Horizontal gap between a label and its anchor
	TopMargin        float64 // Space above the heading
	SideMargin       float64 // Space left and right of the box
	Heading          string  // Multi-line heading text
	FitHeading       bool    // Widen the canvas to fit the heading
}

// Defaults.
const (
	DefaultUSPerLine        = uint64(time.Second / time.Microsecond)
	DefaultSublines         = 10
	DefaultUSPerPixel       = 10000
	DefaultPixelsPerActor   = 20.0
	DefaultActorMargin      = 0.5
	DefaultActorNamePadding = 5.0
	DefaultTopMargin        = 20.0
	DefaultSideMargin       = 20.0
)

// DefaultOptions returns the options of a freshly created chart.
func DefaultOptions() Options {
	return Options{
		USPerLine:        DefaultUSPerLine,
		Sublines:         DefaultSublines,
		USPerPixel:       DefaultUSPerPixel,
		PixelsPerActor:   DefaultPixelsPerActor,
		ActorMargin:      DefaultActorMargin,
		ActorNamePadding: DefaultActorNamePadding,
		TopMargin:        DefaultTopMargin,
		SideMargin:       DefaultSideMargin,
	}
}

// Validate reports options that cannot be rendered.
func (o Options) Validate() error {
	switch {
	case o.USPerLine == 0:
		return errors.New(errors.ErrCodeInvalidConfig, "us_per_line must be positive")
	case o.USPerPixel == 0:
		return errors.New(errors.ErrCodeInvalidConfig, "us_per_pixel must be positive")
	case o.PixelsPerActor <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "pixels_per_actor must be positive")
	case o.ActorMargin < 0 || 2*o.ActorMargin > o.PixelsPerActor:
		return errors.New(errors.ErrCodeInvalidConfig, "actor_margin must be between 0 and half of pixels_per_actor")
	case o.ActorNamePadding < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "actor_name_padding cannot be negative")
	case o.TopMargin < 0 || o.SideMargin < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "margins cannot be negative")
	}
	return nil
}

// ToPixel maps a time in microseconds to a horizontal pixel offset.
func (o Options) ToPixel(us int64) float64 {
	return float64(us) / float64(o.USPerPixel)
}
