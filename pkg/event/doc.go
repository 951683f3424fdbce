// Package event provides the actor and event model rendered by chartr.
//
// # Overview
//
// A chart is a set of [Actor] values, each owning an ordered sequence of
// [Event] values. An event is either an instant (a single point in time) or a
// span (a start plus an optional duration; a span without a duration is
// open-ended and runs to the right edge of the rendered chart). All times are
// signed integer microseconds relative to an arbitrary origin.
//
// # Ordering and Identity
//
// Events are ordered by (start time, end time), where an open-ended span
// (no end) sorts before any bounded event with the same start. Ordering is
// not identity: every event carries its own ID (a UUID assigned on insert),
// so two events with the same start and end are both kept, in insertion
// order.
//
// # Store
//
// [Store] owns all actors and events and keeps the actor and event mappings
// in lockstep: an actor is registered together with an empty event sequence,
// and events can only be added to registered actors.
//
//	s := event.NewStore()
//	id, err := s.RegisterActor(event.Actor{Identity: "worker"})
//	if err != nil {
//	    return err
//	}
//	err = s.AddEvent(id, event.NewSpan(1_500_000, 750_000))
//
// Iteration is lazy and restartable: [Store.Actors], [Store.AllEvents] and
// [Store.EventsFor] return iter.Seq values that walk the current contents
// from scratch on every range.
//
// A Store is not safe for concurrent use.
package event
