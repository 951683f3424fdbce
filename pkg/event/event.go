package event

import (
	"cmp"
	"maps"

	"github.com/matzehuels/chartr/pkg/errors"
)

// Kind distinguishes the two shapes an event can take.
type Kind int

const (
	// KindSpan is an event with a start and an optional duration.
	KindSpan Kind = iota
	// KindInstant is a single point in time.
	KindInstant
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSpan:
		return "span"
	case KindInstant:
		return "instant"
	default:
		return "unknown"
	}
}

// Event is a single thing that happened to an actor.
//
// For KindInstant, Start is the instant and Duration is nil. For KindSpan,
// Start is the span start and Duration is the span length in microseconds,
// or nil for an open-ended span.
type Event struct {
	ID       string            // Stable identifier, assigned by Store.AddEvent when empty
	Kind     Kind              // Span or instant
	Start    int64             // Microseconds; may be negative
	Duration *int64            // Span length in microseconds (nil = open-ended or instant)
	Fields   map[string]string // Presentation attributes merged onto the rendered shape
	Value    string            // Free-text label
	Tooltip  string            // Optional hover text
}

// NewSpan returns a bounded span starting at start and lasting duration.
func NewSpan(start, duration int64) Event {
	return Event{Kind: KindSpan, Start: start, Duration: &duration}
}

// NewOpenSpan returns a span starting at start with no end.
func NewOpenSpan(start int64) Event {
	return Event{Kind: KindSpan, Start: start}
}

// NewInstant returns an instant at t.
func NewInstant(t int64) Event {
	return Event{Kind: KindInstant, Start: t}
}

// StartTime returns the instant or the span start.
func (e Event) StartTime() int64 { return e.Start }

// EndTime returns the end of the event. Instants end where they start;
// open-ended spans report ok == false.
func (e Event) EndTime() (end int64, ok bool) {
	switch {
	case e.Kind == KindInstant:
		return e.Start, true
	case e.Duration != nil:
		return e.Start + *e.Duration, true
	default:
		return 0, false
	}
}

// IsOpen reports whether the event is a span with no duration.
func (e Event) IsOpen() bool { return e.Kind == KindSpan && e.Duration == nil }

// WithField returns a copy of e with key set to value.
func (e Event) WithField(key, value string) Event {
	fields := make(map[string]string, len(e.Fields)+1)
	maps.Copy(fields, e.Fields)
	fields[key] = value
	e.Fields = fields
	return e
}

// Validate checks the event's shape: a known kind, no duration on instants,
// a non-negative span duration, and field keys usable as attribute names.
func (e Event) Validate() error {
	switch e.Kind {
	case KindSpan:
		if e.Duration != nil && *e.Duration < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "negative duration %d", *e.Duration)
		}
	case KindInstant:
		if e.Duration != nil {
			return errors.New(errors.ErrCodeInvalidInput, "instant events cannot have a duration")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown event kind %d", int(e.Kind))
	}
	for k := range e.Fields {
		if err := errors.ValidateFieldKey(k); err != nil {
			return err
		}
	}
	return nil
}

// Compare orders events by (start time, end time). An event without an end
// sorts before one with an end at the same start.
func Compare(a, b Event) int {
	if c := cmp.Compare(a.StartTime(), b.StartTime()); c != 0 {
		return c
	}
	aEnd, aOK := a.EndTime()
	bEnd, bOK := b.EndTime()
	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		return -1
	case !bOK:
		return 1
	default:
		return cmp.Compare(aEnd, bEnd)
	}
}

func (e Event) clone() Event {
	if e.Duration != nil {
		d := *e.Duration
		e.Duration = &d
	}
	e.Fields = maps.Clone(e.Fields)
	return e
}
