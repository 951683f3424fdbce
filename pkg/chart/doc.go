// Package chart implements the chart editing operations: create a chart,
// register an actor, and add an event.
//
// Every operation works on an artifact path. Edits load the state embedded
// in the existing artifact, apply one change, re-render, and replace the
// file. A failed edit leaves the previous artifact untouched.
//
//	r := chart.NewRunner(nil, logger)
//	r.Create(ctx, "build.svg", "Nightly build")
//	r.AddActor(ctx, "build.svg", event.Actor{Identity: "compile"})
//	r.AddEvent(ctx, "build.svg", chart.EventSpec{Actor: "compile", Start: 0, Duration: &d})
//
// A [Runner] may carry render-option overrides (see package config); they
// are applied before every render and persist in the written artifact.
package chart
