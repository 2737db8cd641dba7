package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/streemap/pkg/buildinfo"
	"github.com/matzehuels/streemap/pkg/cache"
	"github.com/matzehuels/streemap/pkg/config"
	"github.com/matzehuels/streemap/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = config.AppName

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
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Streemap lays out weighted items as treemaps",
		Long:         `Streemap partitions a rectangle into one tile per item, with tile area proportional to item weight, and renders the result as SVG, PNG or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/streemap/config.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file once per invocation.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.config != nil {
		return *c.config, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	c.config = &cfg
	return cfg, nil
}

// resolveOptions layers flags over the config file. Pipeline defaults are
// applied later by the runner.
func (c *CLI) resolveOptions(flags pipeline.Options) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	flags.Inherit(configOptions(cfg))
	flags.Logger = c.Logger
	return flags, nil
}

// configOptions converts the [layout] and [render] sections.
func configOptions(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		Algorithm: cfg.Layout.Algorithm,
		Width:     cfg.Layout.Width,
		Height:    cfg.Layout.Height,
		Unscaled:  !config.Bool(cfg.Layout.Scaled, true),
		Sort:      cfg.Layout.Sort,
		Padding:   cfg.Layout.Padding,
		MaxDepth:  cfg.Layout.MaxDepth,
		Formats:   cfg.Render.Formats,
		Style:     cfg.Render.Style,
		NoLabels:  !config.Bool(cfg.Render.Labels, true),
		Scale:     cfg.Render.Scale,
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := c.openCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, c.keyer(cfg), c.Logger), nil
}

func (c *CLI) openCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	store, err := cache.Open(ctx, cfg.CacheConfig())
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", cfg.Cache.Backend, "error", err)
		return cache.NewNullCache(), nil
	}
	return store, nil
}

// keyer scopes cache keys when a prefix is configured for a shared backend.
func (c *CLI) keyer(cfg config.Config) cache.Keyer {
	if cfg.Cache.Prefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), cfg.Cache.Prefix)
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags registers the layout option flags on cmd.
func layoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", "", "layout algorithm (default: squarify, see 'streemap algorithms')")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "frame width (default: 800)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "frame height (default: 600)")
	cmd.Flags().BoolVar(&opts.Unscaled, "unscaled", false, "place raw weights at the top level instead of scaling them to the frame")
	cmd.Flags().BoolVar(&opts.Sort, "sort", false, "sort items by weight, largest first")
	cmd.Flags().Float64Var(&opts.Padding, "padding", 0, "inset between a group and its children")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", 0, "lay out at most this many levels (0: all)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached results")
}

// renderFlags registers the render option flags on cmd.
func renderFlags(cmd *cobra.Command, opts *pipeline.Options, formats *string) {
	cmd.Flags().StringVarP(formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), outline")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", false, "omit tile labels")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "png resolution multiplier (default: 2)")
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string leaves the choice to the config file and defaults.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
