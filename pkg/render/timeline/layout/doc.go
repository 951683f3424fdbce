// Package layout maps an event store onto pixel coordinates.
//
// # Overview
//
// [Compute] turns a [event.Store] and [Options] into a [Scene]: a flat,
// fully positioned description of everything a sink needs to draw. The
// computation is deterministic and keeps no state between calls, so the
// same store and options always produce the same scene.
//
// # Algorithm
//
//  1. Time bounds: the earliest start (clamped to at most zero) and the
//     latest determinate end (open spans do not extend it; zero if none).
//  2. Scale: a time t maps to t / us_per_pixel pixels.
//  3. Box: the pixel width between the bounds; one lane of
//     pixels_per_actor per actor that has at least one event.
//  4. Lanes: actors sorted by their first event's start, ties by id.
//  5. Shapes: spans become rectangles, open spans reach the right edge of
//     the box, instants become diamond markers. Event fields are merged onto
//     the shape's attributes, concatenating onto existing values.
//  6. Labels: each actor is labelled at its first event, on the side of the
//     start that faces the middle of the box.
//  7. Grid: labelled lines every us_per_line, with unlabelled sublines in
//     between, covering the time bounds rounded outward.
//  8. Heading: one line of text per heading line above the box.
//
// # Coordinates
//
// Heading text is positioned in document coordinates. Grid lines and lanes
// are positioned relative to the timeline group, which a sink translates by
// ([Scene.OriginX], [Scene.OriginY]); time zero is at x = 0 in that group.
//
// [event.Store]: github.com/matzehuels/chartr/pkg/event.Store
package layout
