// Package pkg provides the libraries behind chartr, a tool that draws
// timelines of actors and their events as self-describing SVG charts.
//
// # Overview
//
// A chart is an SVG file that embeds its own state. Editing a chart means
// recovering that state, changing it, and rendering it again:
//
//	artifact.svg
//	     ↓
//	[artifact] Decode (embedded JSON → [io].State)
//	     ↓
//	[event] Store mutation (register actor, add event)
//	     ↓
//	[render/timeline/layout] Compute (store + options → scene)
//	     ↓
//	[render/timeline/sink] RenderSVG (scene + embedded state → SVG)
//	     ↓
//	artifact.svg
//
// # Quick Start
//
//	st := io.NewState()
//	st.Options.Heading = "Nightly build"
//	id, _ := st.Store.RegisterActor(event.Actor{Identity: "compile"})
//	_ = st.Store.AddEvent(id, event.NewSpan(0, 1_500_000))
//	err := artifact.Save("build.svg", st)
//
// Or through [chart], which wraps each edit as load, change, save:
//
//	r := chart.NewRunner(nil, logger)
//	_, err := r.AddActor(ctx, "build.svg", event.Actor{Identity: "test"})
//
// # Main Packages
//
//   - [event]: actors, events, and the ordered event store
//   - [render/timeline/layout]: render options and scene geometry
//   - [render/timeline/styles]: stylesheet and text measurement
//   - [render/timeline/sink]: SVG output
//   - [io]: JSON state format, including the legacy layout
//   - [artifact]: state embedding, loading, atomic saving
//   - [chart]: create / add-actor / add-event operations
//   - [config]: TOML and YAML render-option overrides
//   - [errors]: structured error codes
//   - [observability]: lifecycle hooks
//   - [buildinfo]: version information
package pkg
