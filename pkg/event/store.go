package event

import (
	"iter"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/chartr/pkg/errors"
)

// ActorID identifies an actor. It is the actor's identity string.
type ActorID = string

// Actor is a named participant in the timeline, drawn as one lane.
type Actor struct {
	Identity string // Unique name, doubles as the ActorID
	Tooltip  string // Optional hover text for the lane label
}

// Store owns all actors and their events.
//
// The zero value is not usable - use NewStore.
type Store struct {
	actors map[ActorID]*Actor
	events map[ActorID][]Event // sorted by Compare, ties in insertion order
	ids    map[string]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		actors: make(map[ActorID]*Actor),
		events: make(map[ActorID][]Event),
		ids:    make(map[string]struct{}),
	}
}

// RegisterActor adds a to the store and returns its id.
// It fails with DUPLICATE_ACTOR if the identity is already registered, and
// leaves the store unchanged on any error.
func (s *Store) RegisterActor(a Actor) (ActorID, error) {
	if err := errors.ValidateIdentity(a.Identity); err != nil {
		return "", err
	}
	id := a.Identity
	if _, exists := s.actors[id]; exists {
		return "", errors.New(errors.ErrCodeDuplicateActor, "actor already registered: %s", id)
	}
	s.actors[id] = &a
	s.events[id] = nil
	return id, nil
}

// AddEvent inserts e into the actor's ordered event sequence.
//
// An empty e.ID is replaced by a fresh UUID. AddEvent fails with
// UNKNOWN_ACTOR if the actor was never registered, and with INVALID_INPUT if
// the event is malformed or its ID is already in use. The store is unchanged
// on error.
func (s *Store) AddEvent(actor ActorID, e Event) error {
	events, ok := s.events[actor]
	if !ok {
		return errors.New(errors.ErrCodeUnknownActor, "unknown actor id: %s", actor)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	e = e.clone()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, dup := s.ids[e.ID]; dup {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate event id: %s", e.ID)
	}

	// Insert after every event that compares equal so ties keep insertion order.
	i, _ := slices.BinarySearchFunc(events, e, func(have, want Event) int {
		if Compare(have, want) <= 0 {
			return -1
		}
		return 1
	})
	s.events[actor] = slices.Insert(events, i, e)
	s.ids[e.ID] = struct{}{}
	return nil
}

// SetActorTooltip replaces the tooltip of a registered actor.
func (s *Store) SetActorTooltip(actor ActorID, tooltip string) error {
	a, ok := s.actors[actor]
	if !ok {
		return errors.New(errors.ErrCodeUnknownActor, "unknown actor id: %s", actor)
	}
	a.Tooltip = tooltip
	return nil
}

// Actor returns the actor registered under id.
func (s *Store) Actor(id ActorID) (Actor, bool) {
	a, ok := s.actors[id]
	if !ok {
		return Actor{}, false
	}
	return *a, true
}

// Actors returns the registered actor ids in lexicographic order.
func (s *Store) Actors() iter.Seq[ActorID] {
	return func(yield func(ActorID) bool) {
		for _, id := range slices.Sorted(maps.Keys(s.actors)) {
			if !yield(id) {
				return
			}
		}
	}
}

// EventsFor returns the actor's events in ascending (start, end) order.
// It fails with UNKNOWN_ACTOR if the actor was never registered.
func (s *Store) EventsFor(actor ActorID) (iter.Seq[Event], error) {
	if _, ok := s.events[actor]; !ok {
		return nil, errors.New(errors.ErrCodeUnknownActor, "unknown actor id: %s", actor)
	}
	return func(yield func(Event) bool) {
		for _, e := range s.events[actor] {
			if !yield(e.clone()) {
				return
			}
		}
	}, nil
}

// AllEvents returns every event in the store. Events of one actor are
// yielded in order; actors are visited in lexicographic order.
func (s *Store) AllEvents() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for id := range s.Actors() {
			for _, e := range s.events[id] {
				if !yield(e.clone()) {
					return
				}
			}
		}
	}
}

// ActorCount returns the number of registered actors.
func (s *Store) ActorCount() int { return len(s.actors) }

// EventCount returns the number of events across all actors.
func (s *Store) EventCount() int { return len(s.ids) }
