package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/streemap/internal/server"
	"github.com/matzehuels/streemap/pkg/cache"
	"github.com/matzehuels/streemap/pkg/pipeline"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Layouts created through the API are stored in the configured cache. Without a
cache backend an in-memory store is used, so stored layouts live as long as
the process.

With --data-dir, requests may name dataset files by a relative path below
that directory instead of sending the dataset inline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr, dataDir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: :8080)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory requests may read datasets from")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, addr, dataDir string) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}
	if addr == "" {
		addr = server.DefaultAddr
	}

	cacheCfg := cfg.CacheConfig()
	if cacheCfg.Backend == cache.BackendNone {
		printWarning("cache backend %q cannot store layouts, using memory", cache.BackendNone)
		cacheCfg.Backend = cache.BackendMemory
	}
	store, err := cache.Open(ctx, cacheCfg)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	runner := pipeline.NewRunner(store, c.keyer(cfg), c.Logger)
	defer runner.Close()

	defaults := configOptions(cfg)
	defaults.Logger = c.Logger
	opts := []server.Option{server.WithLogger(c.Logger), server.WithDefaults(defaults)}
	if dataDir != "" {
		opts = append(opts, server.WithDataDir(dataDir))
	}
	srv := server.New(runner, opts...)

	printSuccess("Serving %s API", appName)
	printKeyValue("Address", StyleLink.Render(listenURL(addr)))
	printKeyValue("Cache", backendName(cacheCfg.Backend))
	if dataDir != "" {
		printKeyValue("Data dir", dataDir)
	}
	printNewline()

	return srv.ListenAndServe(ctx, addr)
}

// listenURL turns a listen address into a URL for display.
func listenURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
