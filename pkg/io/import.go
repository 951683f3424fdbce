package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/chartr/pkg/errors"
	"github.com/matzehuels/chartr/pkg/event"
	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
)

// Unmarshal decodes a state in either the current or the legacy format.
// The returned store is rebuilt through the store's own operations, so every
// store invariant holds for it.
func Unmarshal(data []byte) (State, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return unmarshalLegacy(data)
	}

	w := state{Options: fromOptions(layout.DefaultOptions())}
	if err := json.Unmarshal(data, &w); err != nil {
		return State{}, errors.Wrap(errors.ErrCodeMalformedState, err, "decode state")
	}
	return fromWire(w)
}

// ReadJSON decodes a state from r.
func ReadJSON(r io.Reader) (State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return State{}, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// ImportJSON reads a state from a JSON file at path.
func ImportJSON(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func fromWire(w state) (State, error) {
	st := State{Options: w.Options.toOptions(), Store: event.NewStore()}
	if err := st.Options.Validate(); err != nil {
		return State{}, unrecoverable(err, "options")
	}

	for _, a := range w.Actors {
		id, err := st.Store.RegisterActor(event.Actor{Identity: a.Identity, Tooltip: a.Tooltip})
		if err != nil {
			return State{}, unrecoverable(err, "actor %q", a.Identity)
		}
		for _, rec := range a.Events {
			e, err := toEvent(rec)
			if err != nil {
				return State{}, unrecoverable(err, "actor %q", a.Identity)
			}
			if err := st.Store.AddEvent(id, e); err != nil {
				return State{}, unrecoverable(err, "actor %q", a.Identity)
			}
		}
	}
	return st, nil
}

func toEvent(rec eventRecord) (event.Event, error) {
	e := event.Event{
		ID:       rec.ID,
		Start:    rec.Start,
		Duration: rec.Duration,
		Fields:   rec.Fields,
		Value:    rec.Value,
		Tooltip:  rec.Tooltip,
	}
	switch rec.Kind {
	case kindSpan:
		e.Kind = event.KindSpan
	case kindInstant:
		e.Kind = event.KindInstant
	default:
		return event.Event{}, fmt.Errorf("event %s: unknown kind %q", rec.ID, rec.Kind)
	}
	return e, nil
}

func unrecoverable(err error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeUnrecoverable, err, format, args...)
}
