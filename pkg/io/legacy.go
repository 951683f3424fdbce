package io

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/matzehuels/chartr/pkg/errors"
	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
)

type legacyRenderer struct {
	Opts options `json:"opts"`
}

type legacyStore struct {
	Actors map[string]legacyActor   `json:"actors"`
	Events map[string][]legacyEvent `json:"events"`
}

type legacyActor struct {
	Identity string  `json:"identity"`
	Tooltip  *string `json:"tooltip"`
}

type legacyEvent struct {
	Fields  map[string]string          `json:"fields"`
	Kind    map[string]json.RawMessage `json:"kind"`
	Value   string                     `json:"value"`
	Tooltip *string                    `json:"tooltip"`
}

func unmarshalLegacy(data []byte) (State, error) {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return State{}, errors.Wrap(errors.ErrCodeMalformedState, err, "decode legacy state")
	}
	if len(tuple) != 2 {
		return State{}, errors.New(errors.ErrCodeUnrecoverable, "legacy state has %d elements, want 2", len(tuple))
	}

	r := legacyRenderer{Opts: fromOptions(layout.DefaultOptions())}
	if err := json.Unmarshal(tuple[0], &r); err != nil {
		return State{}, errors.Wrap(errors.ErrCodeMalformedState, err, "decode legacy options")
	}
	var s legacyStore
	if err := json.Unmarshal(tuple[1], &s); err != nil {
		return State{}, errors.Wrap(errors.ErrCodeMalformedState, err, "decode legacy store")
	}

	w := state{Options: r.Opts}
	ids := make([]string, 0, len(s.Actors))
	for id := range s.Actors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		a := s.Actors[id]
		if a.Identity != id {
			return State{}, errors.New(errors.ErrCodeUnrecoverable, "actor key %q does not match identity %q", id, a.Identity)
		}
		rec := actor{Identity: a.Identity, Tooltip: deref(a.Tooltip)}
		for _, le := range s.Events[id] {
			ev, err := le.record()
			if err != nil {
				return State{}, unrecoverable(err, "actor %q", id)
			}
			rec.Events = append(rec.Events, ev)
		}
		w.Actors = append(w.Actors, rec)
	}
	for id := range s.Events {
		if _, ok := s.Actors[id]; !ok {
			return State{}, errors.New(errors.ErrCodeUnrecoverable, "events recorded for unknown actor %q", id)
		}
	}
	return fromWire(w)
}

func (le legacyEvent) record() (eventRecord, error) {
	rec := eventRecord{Fields: le.Fields, Value: le.Value, Tooltip: deref(le.Tooltip)}
	if raw, ok := le.Kind["Span"]; ok {
		var span [2]json.RawMessage
		if err := json.Unmarshal(raw, &span); err != nil {
			return rec, fmt.Errorf("span: %w", err)
		}
		rec.Kind = kindSpan
		if err := json.Unmarshal(span[0], &rec.Start); err != nil {
			return rec, fmt.Errorf("span start: %w", err)
		}
		if err := json.Unmarshal(span[1], &rec.Duration); err != nil {
			return rec, fmt.Errorf("span duration: %w", err)
		}
		return rec, nil
	}
	if raw, ok := le.Kind["Instant"]; ok {
		rec.Kind = kindInstant
		if err := json.Unmarshal(raw, &rec.Start); err != nil {
			return rec, fmt.Errorf("instant: %w", err)
		}
		return rec, nil
	}
	return rec, fmt.Errorf("unknown event kind")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
