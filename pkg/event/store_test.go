package event

import (
	"slices"
	"testing"

	"github.com/matzehuels/chartr/pkg/errors"
)

func mustRegister(t *testing.T, s *Store, identity string) ActorID {
	t.Helper()
	id, err := s.RegisterActor(Actor{Identity: identity})
	if err != nil {
		t.Fatalf("RegisterActor(%q) error: %v", identity, err)
	}
	return id
}

func starts(t *testing.T, s *Store, id ActorID) []int64 {
	t.Helper()
	seq, err := s.EventsFor(id)
	if err != nil {
		t.Fatalf("EventsFor(%q) error: %v", id, err)
	}
	var out []int64
	for e := range seq {
		out = append(out, e.StartTime())
	}
	return out
}

func TestRegisterActor(t *testing.T) {
	s := NewStore()
	id := mustRegister(t, s, "myproc")
	if id != "myproc" {
		t.Errorf("RegisterActor() id = %q, want %q", id, "myproc")
	}

	seq, err := s.EventsFor(id)
	if err != nil {
		t.Fatalf("EventsFor() error: %v", err)
	}
	for range seq {
		t.Error("new actor should have no events")
	}
}

func TestRegisterActorDuplicate(t *testing.T) {
	s := NewStore()
	mustRegister(t, s, "A")
	if err := s.SetActorTooltip("A", "first"); err != nil {
		t.Fatalf("SetActorTooltip() error: %v", err)
	}

	_, err := s.RegisterActor(Actor{Identity: "A", Tooltip: "second"})
	if !errors.Is(err, errors.ErrCodeDuplicateActor) {
		t.Fatalf("RegisterActor() error = %v, want %s", err, errors.ErrCodeDuplicateActor)
	}

	if s.ActorCount() != 1 {
		t.Errorf("ActorCount() = %d, want 1", s.ActorCount())
	}
	a, _ := s.Actor("A")
	if a.Tooltip != "first" {
		t.Errorf("Tooltip = %q, want %q (store mutated by failed call)", a.Tooltip, "first")
	}
}

func TestRegisterActorInvalid(t *testing.T) {
	s := NewStore()
	if _, err := s.RegisterActor(Actor{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RegisterActor(empty) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if s.ActorCount() != 0 {
		t.Errorf("ActorCount() = %d, want 0", s.ActorCount())
	}
}

func TestAddEventUnknownActor(t *testing.T) {
	s := NewStore()
	mustRegister(t, s, "A")

	err := s.AddEvent("B", NewSpan(0, 1))
	if !errors.Is(err, errors.ErrCodeUnknownActor) {
		t.Fatalf("AddEvent() error = %v, want %s", err, errors.ErrCodeUnknownActor)
	}
	if s.EventCount() != 0 {
		t.Errorf("EventCount() = %d, want 0", s.EventCount())
	}

	if _, err := s.EventsFor("B"); !errors.Is(err, errors.ErrCodeUnknownActor) {
		t.Errorf("EventsFor() error = %v, want %s", err, errors.ErrCodeUnknownActor)
	}
}

func TestAddEventOrdering(t *testing.T) {
	s := NewStore()
	id := mustRegister(t, s, "A")

	for _, start := range []int64{3_500_000, -5_000_000, 1_500_000, 0, 2_000_000} {
		if err := s.AddEvent(id, NewSpan(start, 750_000)); err != nil {
			t.Fatalf("AddEvent(%d) error: %v", start, err)
		}
	}

	want := []int64{-5_000_000, 0, 1_500_000, 2_000_000, 3_500_000}
	if got := starts(t, s, id); !slices.Equal(got, want) {
		t.Errorf("EventsFor() starts = %v, want %v", got, want)
	}
}

func TestAddEventOpenSpanSortsFirst(t *testing.T) {
	s := NewStore()
	id := mustRegister(t, s, "A")
	_ = s.AddEvent(id, NewSpan(10, 5).WithField("n", "bounded"))
	_ = s.AddEvent(id, NewOpenSpan(10).WithField("n", "open"))

	seq, _ := s.EventsFor(id)
	var got []string
	for e := range seq {
		got = append(got, e.Fields["n"])
	}
	if want := []string{"open", "bounded"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestAddEventKeepsCollidingEvents(t *testing.T) {
	s := NewStore()
	id := mustRegister(t, s, "A")

	first := NewSpan(100, 50)
	first.Value = "first"
	second := NewSpan(100, 50)
	second.Value = "second"

	if err := s.AddEvent(id, first); err != nil {
		t.Fatalf("AddEvent(first) error: %v", err)
	}
	if err := s.AddEvent(id, second); err != nil {
		t.Fatalf("AddEvent(second) error: %v", err)
	}

	seq, _ := s.EventsFor(id)
	var values, ids []string
	for e := range seq {
		values = append(values, e.Value)
		ids = append(ids, e.ID)
	}
	if want := []string{"first", "second"}; !slices.Equal(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
	if len(ids) != 2 || ids[0] == "" || ids[0] == ids[1] {
		t.Errorf("ids = %v, want two distinct non-empty ids", ids)
	}
}

func TestAddEventDuplicateID(t *testing.T) {
	s := NewStore()
	id := mustRegister(t, s, "A")

	e := NewInstant(5)
	e.ID = "fixed"
	if err := s.AddEvent(id, e); err != nil {
		t.Fatalf("AddEvent() error: %v", err)
	}
	if err := s.AddEvent(id, e); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("AddEvent(dup id) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if s.EventCount() != 1 {
		t.Errorf("EventCount() = %d, want 1", s.EventCount())
	}
}

func TestAddEventCopiesInput(t *testing.T) {
	s := NewStore()
	id := mustRegister(t, s, "A")

	e := NewSpan(0, 10).WithField("fill", "red")
	_ = s.AddEvent(id, e)
	e.Fields["fill"] = "blue"
	*e.Duration = 99

	seq, _ := s.EventsFor(id)
	for got := range seq {
		if got.Fields["fill"] != "red" {
			t.Errorf("fill = %q, want red", got.Fields["fill"])
		}
		if *got.Duration != 10 {
			t.Errorf("duration = %d, want 10", *got.Duration)
		}
	}
}

func TestActorsLexicographic(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"zeta", "alpha", "Mid", "beta"} {
		mustRegister(t, s, name)
	}

	got := slices.Collect(s.Actors())
	want := []string{"Mid", "alpha", "beta", "zeta"}
	if !slices.Equal(got, want) {
		t.Errorf("Actors() = %v, want %v", got, want)
	}
}

func TestAllEventsRestartable(t *testing.T) {
	s := NewStore()
	a := mustRegister(t, s, "A")
	b := mustRegister(t, s, "B")
	_ = s.AddEvent(a, NewSpan(2, 1))
	_ = s.AddEvent(a, NewSpan(1, 1))
	_ = s.AddEvent(b, NewInstant(0))

	seq := s.AllEvents()
	for pass := 0; pass < 2; pass++ {
		var got []int64
		for e := range seq {
			got = append(got, e.StartTime())
		}
		if want := []int64{1, 2, 0}; !slices.Equal(got, want) {
			t.Errorf("pass %d: AllEvents() = %v, want %v", pass, got, want)
		}
	}
}

func TestSetActorTooltip(t *testing.T) {
	s := NewStore()
	mustRegister(t, s, "A")

	if err := s.SetActorTooltip("A", "primary worker"); err != nil {
		t.Fatalf("SetActorTooltip() error: %v", err)
	}
	a, ok := s.Actor("A")
	if !ok || a.Tooltip != "primary worker" {
		t.Errorf("Actor() = %+v, %v", a, ok)
	}

	if err := s.SetActorTooltip("nope", "x"); !errors.Is(err, errors.ErrCodeUnknownActor) {
		t.Errorf("SetActorTooltip(unknown) error = %v, want %s", err, errors.ErrCodeUnknownActor)
	}
}
