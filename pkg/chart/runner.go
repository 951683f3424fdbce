package chart

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartr/pkg/artifact"
	"github.com/matzehuels/chartr/pkg/config"
	"github.com/matzehuels/chartr/pkg/event"
	chartio "github.com/matzehuels/chartr/pkg/io"
	"github.com/matzehuels/chartr/pkg/observability"
	"github.com/matzehuels/chartr/pkg/render/timeline/layout"
)

// Runner executes chart operations against artifact files.
//
// The Runner holds no chart state between calls; every operation reads the
// artifact it edits. Multiple goroutines may share a Runner as long as they
// do not edit the same path.
type Runner struct {
	Overrides *config.Overrides
	Logger    *log.Logger
}

// NewRunner creates a runner. Overrides may be nil.
// If logger is nil, log.Default() is used.
func NewRunner(overrides *config.Overrides, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Overrides: overrides,
		Logger:    logger,
	}
}

// Result describes a written artifact.
type Result struct {
	Path       string
	Actors     int
	Events     int
	Size       int
	EventID    string // set by AddEvent
	RenderTime time.Duration
}

// Create writes a new chart with no actors. A non-empty heading replaces the
// configured one.
func (r *Runner) Create(ctx context.Context, path, heading string) (*Result, error) {
	opts, err := r.Overrides.Apply(layout.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if heading != "" {
		opts.Heading = heading
	}
	return r.write(ctx, path, chartio.State{Options: opts, Store: event.NewStore()})
}

// AddActor registers a new actor in the chart at path.
func (r *Runner) AddActor(ctx context.Context, path string, a event.Actor) (*Result, error) {
	st, err := r.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if _, err := st.Store.RegisterActor(a); err != nil {
		return nil, err
	}
	return r.save(ctx, path, st)
}

// AddEvent adds the event described by spec to the chart at path.
func (r *Runner) AddEvent(ctx context.Context, path string, spec EventSpec) (*Result, error) {
	st, err := r.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	e, err := spec.Event()
	if err != nil {
		return nil, err
	}
	if err := st.Store.AddEvent(spec.Actor, e); err != nil {
		return nil, err
	}
	res, err := r.save(ctx, path, st)
	if err != nil {
		return nil, err
	}
	res.EventID = e.ID
	return res, nil
}

// Load recovers the state embedded in the artifact at path.
func (r *Runner) Load(ctx context.Context, path string) (chartio.State, error) {
	start := time.Now()
	st, err := artifact.Load(path)
	observability.Chart().OnLoad(ctx, path, time.Since(start), err)
	if err != nil {
		return chartio.State{}, err
	}
	r.Logger.Debug("loaded chart",
		"path", path,
		"actors", st.Store.ActorCount(),
		"events", st.Store.EventCount())
	return st, nil
}

// Export writes the state of the artifact at path to w as indented JSON.
func (r *Runner) Export(ctx context.Context, path string, w io.Writer) error {
	st, err := r.Load(ctx, path)
	if err != nil {
		return err
	}
	return chartio.WriteJSON(st, w)
}

func (r *Runner) save(ctx context.Context, path string, st chartio.State) (*Result, error) {
	opts, err := r.Overrides.Apply(st.Options)
	if err != nil {
		return nil, err
	}
	st.Options = opts
	return r.write(ctx, path, st)
}

func (r *Runner) write(ctx context.Context, path string, st chartio.State) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	actors, events := st.Store.ActorCount(), st.Store.EventCount()
	renderStart := time.Now()
	data, err := artifact.Encode(st)
	renderTime := time.Since(renderStart)
	observability.Chart().OnRender(ctx, actors, events, len(data), renderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r.Logger.Debug("rendered chart",
		"actors", actors,
		"events", events,
		"bytes", len(data),
		"duration", renderTime)

	saveStart := time.Now()
	err = artifact.WriteFile(path, data)
	observability.Chart().OnSave(ctx, path, len(data), time.Since(saveStart), err)
	if err != nil {
		return nil, err
	}

	return &Result{
		Path:       path,
		Actors:     actors,
		Events:     events,
		Size:       len(data),
		RenderTime: renderTime,
	}, nil
}
