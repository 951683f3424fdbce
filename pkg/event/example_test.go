package event_test

import (
	"fmt"

	"github.com/matzehuels/chartr/pkg/event"
)

func ExampleStore() {
	s := event.NewStore()
	a, _ := s.RegisterActor(event.Actor{Identity: "A"})
	b, _ := s.RegisterActor(event.Actor{Identity: "B"})

	_ = s.AddEvent(a, event.NewSpan(3_500_000, 750_000))
	_ = s.AddEvent(a, event.NewSpan(1_500_000, 750_000).WithField("fill", "#AB7C94"))
	_ = s.AddEvent(b, event.NewOpenSpan(-5_000_000))

	for id := range s.Actors() {
		events, _ := s.EventsFor(id)
		for e := range events {
			end, ok := e.EndTime()
			fmt.Println(id, e.StartTime(), end, ok)
		}
	}
	// Output:
	// A 1500000 2250000 true
	// A 3500000 4250000 true
	// B -5000000 0 false
}
