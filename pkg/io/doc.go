// Package io provides the JSON encoding of a chart's persisted state.
//
// # Overview
//
// A chart's state is the pair of render options and event store, bundled as
// a [State]. The JSON form is what the artifact codec embeds inside every
// rendered chart, and what the export command writes for external tools.
//
// # JSON Format
//
//	{
//	  "options": {
//	    "us_per_line": 1000000, "sublines": 10, "us_per_pixel": 10000,
//	    "pixels_per_actor": 20, "actor_margin": 0.5, "actor_name_padding": 5,
//	    "top_margin": 20, "side_margin": 20, "heading": "Build"
//	  },
//	  "actors": [
//	    {
//	      "identity": "A",
//	      "events": [
//	        {"id": "…", "kind": "span", "start": 1500000, "duration": 750000,
//	         "fields": {"fill": "#AB7C94"}},
//	        {"id": "…", "kind": "span", "start": 3000000},
//	        {"id": "…", "kind": "instant", "start": 4000000}
//	      ]
//	    }
//	  ]
//	}
//
// Actors are written in identity order and events in their store order, so
// encoding the same state twice yields identical bytes. A span without a
// duration is open-ended. Option keys missing from the input keep their
// default values.
//
// # Legacy Format
//
// [Unmarshal] also accepts the older tuple layout, a two-element array of
// renderer and store:
//
//	[{"opts": {...}},
//	 {"actors": {"A": {"identity": "A", "tooltip": null}},
//	  "events": {"A": [{"fields": {}, "kind": {"Span": [0, 500]},
//	                    "value": "", "tooltip": null}]}}]
//
// Legacy events receive fresh ids. The state is always written back in the
// current format.
//
// # Errors
//
// Input that is not valid JSON, or whose values have the wrong types, fails
// with MALFORMED_EMBEDDED_STATE. Well-formed input that describes an
// impossible state (unusable options, duplicate actors, events for unknown
// actors, negative durations) fails with UNRECOVERABLE_STATE.
package io
