// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about artifact reads, renders, writes, and command runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the chart packages stay
// free of any particular metrics or tracing framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetChartHooks(&myChartHooks{})
//	    observability.SetCommandHooks(&myCommandHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	st, err := artifact.Load(path)
//	observability.Chart().OnLoad(ctx, path, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Chart Hooks
// =============================================================================

// ChartHooks receives events from the artifact lifecycle.
type ChartHooks interface {
	// OnLoad records an artifact read and decode.
	OnLoad(ctx context.Context, path string, duration time.Duration, err error)

	// OnRender records a render of actors and events into size bytes of SVG.
	OnRender(ctx context.Context, actors, events, size int, duration time.Duration, err error)

	// OnSave records an artifact write.
	OnSave(ctx context.Context, path string, size int, duration time.Duration, err error)
}

// =============================================================================
// Command Hooks
// =============================================================================

// CommandHooks receives events from CLI command execution.
type CommandHooks interface {
	OnCommandStart(ctx context.Context, name string)
	OnCommandComplete(ctx context.Context, name string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopChartHooks is a no-op implementation of ChartHooks.
type NoopChartHooks struct{}

func (NoopChartHooks) OnLoad(context.Context, string, time.Duration, error)          {}
func (NoopChartHooks) OnRender(context.Context, int, int, int, time.Duration, error) {}
func (NoopChartHooks) OnSave(context.Context, string, int, time.Duration, error)     {}

// NoopCommandHooks is a no-op implementation of CommandHooks.
type NoopCommandHooks struct{}

func (NoopCommandHooks) OnCommandStart(context.Context, string)                          {}
func (NoopCommandHooks) OnCommandComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	chartHooks   ChartHooks   = NoopChartHooks{}
	commandHooks CommandHooks = NoopCommandHooks{}
	hooksMu      sync.RWMutex
)

// SetChartHooks registers custom chart hooks.
// This should be called once at application startup before any chart operations.
func SetChartHooks(h ChartHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		chartHooks = h
	}
}

// SetCommandHooks registers custom command hooks.
func SetCommandHooks(h CommandHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		commandHooks = h
	}
}

// Chart returns the registered chart hooks.
func Chart() ChartHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return chartHooks
}

// Command returns the registered command hooks.
func Command() CommandHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return commandHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	chartHooks = NoopChartHooks{}
	commandHooks = NoopCommandHooks{}
}
