package io

import (
	"github.com/matzehuels/chartr/pkg/event"
	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
)

// State is everything needed to re-render a chart.
type State struct {
	Options layout.Options
	Store   *event.Store
}

// NewState returns default options and an empty store.
func NewState() State {
	return State{Options: layout.DefaultOptions(), Store: event.NewStore()}
}

const (
	kindSpan    = "span"
	kindInstant = "instant"
)

type state struct {
	Options options `json:"options"`
	Actors  []actor `json:"actors"`
}

type options struct {
	USPerLine        uint64  `json:"us_per_line"`
	Sublines         uint32  `json:"sublines"`
	USPerPixel       uint32  `json:"us_per_pixel"`
	PixelsPerActor   float64 `json:"pixels_per_actor"`
	ActorMargin      float64 `json:"actor_margin"`
	ActorNamePadding float64 `json:"actor_name_padding"`
	TopMargin        float64 `json:"top_margin"`
	SideMargin       float64 `json:"side_margin"`
	Heading          string  `json:"heading"`
	FitHeading       bool    `json:"fit_heading,omitempty"`
}

type actor struct {
	Identity string        `json:"identity"`
	Tooltip  string        `json:"tooltip,omitempty"`
	Events   []eventRecord `json:"events"`
}

type eventRecord struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`
	Start    int64             `json:"start"`
	Duration *int64            `json:"duration,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Value    string            `json:"value,omitempty"`
	Tooltip  string            `json:"tooltip,omitempty"`
}

func fromOptions(o layout.Options) options {
	return options{
		USPerLine:        o.USPerLine,
		Sublines:         o.Sublines,
		USPerPixel:       o.USPerPixel,
		PixelsPerActor:   o.PixelsPerActor,
		ActorMargin:      o.ActorMargin,
		ActorNamePadding: o.ActorNamePadding,
		TopMargin:        o.TopMargin,
		SideMargin:       o.SideMargin,
		Heading:          o.Heading,
		FitHeading:       o.FitHeading,
	}
}

func (o options) toOptions() layout.Options {
	return layout.Options{
		USPerLine:        o.USPerLine,
		Sublines:         o.Sublines,
		USPerPixel:       o.USPerPixel,
		PixelsPerActor:   o.PixelsPerActor,
		ActorMargin:      o.ActorMargin,
		ActorNamePadding: o.ActorNamePadding,
		TopMargin:        o.TopMargin,
		SideMargin:       o.SideMargin,
		Heading:          o.Heading,
		FitHeading:       o.FitHeading,
	}
}

func fromEvent(e event.Event) eventRecord {
	rec := eventRecord{
		ID:       e.ID,
		Kind:     kindSpan,
		Start:    e.Start,
		Duration: e.Duration,
		Fields:   e.Fields,
		Value:    e.Value,
		Tooltip:  e.Tooltip,
	}
	if e.Kind == event.KindInstant {
		rec.Kind = kindInstant
	}
	return rec
}
