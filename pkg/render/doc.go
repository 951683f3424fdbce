// Package render groups the chart renderers.
//
// The [timeline] subpackages turn an event store into an SVG timeline:
//
//   - [timeline/layout]: scene geometry (lanes, shapes, grid, labels)
//   - [timeline/styles]: stylesheet, CSS classes, text measurement
//   - [timeline/sink]: SVG document writer
//
// A render is two pure steps:
//
//	scene, err := layout.Compute(opts, store)
//	svg := sink.RenderSVG(scene, sink.WithAnnotation(payload))
//
// Embedding chart state in the output is handled by package artifact.
package render
