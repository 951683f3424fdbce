// Package cli implements the chartr command-line interface.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartr/pkg/buildinfo"
	"github.com/matzehuels/chartr/pkg/chart"
	"github.com/matzehuels/chartr/pkg/config"
	"github.com/matzehuels/chartr/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "chartr"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Chartr draws actor timelines as self-describing SVG charts",
		Long: `Chartr draws timelines of actors and their events as SVG charts.

Each chart carries its own state, so a chart created by chartr can be
edited again later with nothing but the SVG file itself.

Times and durations are microseconds, or Go durations such as 1.5s or 250ms.
Use "--" before negative times: chartr add-event chart.svg db -- -2s 1s`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "render option overrides (.toml, .yaml)")

	// Register all subcommands
	root.AddCommand(c.createCommand())
	root.AddCommand(c.addActorCommand())
	root.AddCommand(c.addEventCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a chart runner with the overrides named by --config.
func (c *CLI) newRunner() (*chart.Runner, error) {
	var overrides *config.Overrides
	if c.configPath != "" {
		o, err := config.Load(c.configPath)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("loaded config", "path", c.configPath)
		overrides = o
	}
	return chart.NewRunner(overrides, c.Logger), nil
}

// instrument runs fn between the command start and completion hooks.
func instrument(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	name := cmd.Name()
	start := time.Now()
	observability.Command().OnCommandStart(ctx, name)
	err := fn(ctx)
	observability.Command().OnCommandComplete(ctx, name, time.Since(start), err)
	return err
}
