package chart

import (
	"github.com/google/uuid"

	"github.com/matzehuels/chartr/pkg/errors"
	"github.com/matzehuels/chartr/pkg/event"
)

// FillField is the field set by EventSpec.Color.
const FillField = "fill"

// EventSpec describes an event to add from user input.
//
// With a Duration the event is a bounded span. Without one it is an open
// span when Endless is set, and an instant otherwise.
type EventSpec struct {
	Actor    event.ActorID
	Start    int64
	Duration *int64
	Endless  bool

	Color   string            // shorthand for Fields["fill"]; wins over Fields
	Value   string            // free-text label, stored but not drawn
	Tooltip string            // hover text
	Fields  map[string]string // extra SVG attributes
}

// Event builds the event described by s with a fresh id.
func (s EventSpec) Event() (event.Event, error) {
	var e event.Event
	switch {
	case s.Duration != nil:
		if *s.Duration < 0 {
			return event.Event{}, errors.New(errors.ErrCodeInvalidInput, "duration cannot be negative: %d", *s.Duration)
		}
		e = event.NewSpan(s.Start, *s.Duration)
	case s.Endless:
		e = event.NewOpenSpan(s.Start)
	default:
		e = event.NewInstant(s.Start)
	}

	e.ID = uuid.NewString()
	for k, v := range s.Fields {
		e = e.WithField(k, v)
	}
	if s.Color != "" {
		e = e.WithField(FillField, s.Color)
	}
	e.Value = s.Value
	e.Tooltip = s.Tooltip

	if err := e.Validate(); err != nil {
		return event.Event{}, err
	}
	return e, nil
}
