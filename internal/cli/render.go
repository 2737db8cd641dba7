package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/streemap/pkg/pipeline"
)

// renderCommand creates the render command, a shortcut from dataset to output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		opts       pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render [items.json|items.toml]",
		Short: "Lay out and render a dataset in one step",
		Long: `Lay out and render a dataset in one step.

The render command combines 'layout' and 'visualize': it reads a dataset,
computes the treemap and writes every requested format. Both stages are
cached independently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			resolved, err := c.resolveOptions(opts)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, args[0], resolved, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	layoutFlags(cmd, &opts)
	renderFlags(cmd, &opts, &formatsStr)

	return cmd
}

// runRender parses the dataset and runs the full pipeline over it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Rendering %s", input)

	ds, err := pipeline.ParseFile(ctx, input)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering treemap...")
	spinner.Start()

	result, err := runner.Execute(ctx, ds, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		input:     input,
		output:    output,
		summary:   summarize(&result.Layout, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit),
	})
}

// =============================================================================
// Output
// =============================================================================

type artifactWriteParams struct {
	artifacts map[string][]byte
	input     string
	output    string
	summary   treemapSummary
}

// writeArtifacts writes each rendered format next to the input, or to
// output when exactly one format was requested.
func writeArtifacts(p artifactWriteParams) error {
	formats := make([]string, 0, len(p.artifacts))
	for f := range p.artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	var written []string
	if len(formats) == 1 && p.output != "" {
		if err := os.WriteFile(p.output, p.artifacts[formats[0]], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p.output, err)
		}
		written = append(written, p.output)
	} else {
		base := basePath(p.output, p.input)
		for _, f := range formats {
			path := artifactPath(base, f)
			if err := os.WriteFile(path, p.artifacts[f], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}

	printSuccess("Rendered %s", strings.Join(formats, ", "))
	for _, path := range written {
		printFile(path)
	}
	printStats(p.summary)
	return nil
}

// artifactPath names the file for one format. JSON output gets its own
// suffix so it cannot overwrite a JSON dataset with the same base name.
func artifactPath(base, format string) string {
	if format == pipeline.FormatJSON {
		return base + ".treemap.json"
	}
	return base + "." + format
}

// basePath derives the base output path from the output and input file paths.
// Without an output it strips the extension (and a ".layout" suffix) from
// input. A format extension on output is stripped too.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
