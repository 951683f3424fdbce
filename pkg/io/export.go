package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func toWire(st State) state {
	out := state{Options: fromOptions(st.Options), Actors: []actor{}}
	for id := range st.Store.Actors() {
		a, _ := st.Store.Actor(id)
		rec := actor{Identity: a.Identity, Tooltip: a.Tooltip, Events: []eventRecord{}}
		events, _ := st.Store.EventsFor(id)
		for e := range events {
			rec.Events = append(rec.Events, fromEvent(e))
		}
		out.Actors = append(out.Actors, rec)
	}
	return out
}

// Marshal encodes st as compact JSON.
func Marshal(st State) ([]byte, error) {
	data, err := json.Marshal(toWire(st))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// WriteJSON encodes st as indented JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(st State, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toWire(st)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes st to a JSON file at path.
func ExportJSON(st State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(st, f)
}
