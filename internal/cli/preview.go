package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/pipeline"
)

const (
	previewCols = 80
	previewRows = 24
)

// previewCommand creates the preview command drawing a treemap in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		noCache bool
		opts    pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "preview [items.json|items.toml|items.layout.json]",
		Short: "Browse a treemap in the terminal",
		Long: `Browse a treemap in the terminal.

The preview command draws a layout document, or a dataset laid out on the fly,
with colored terminal cells. Arrow keys move between tiles and show each
tile's weight and share of the total.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := c.resolveOptions(opts)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runPreview(ctx, args[0], resolved, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	layoutFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, opts pipeline.Options, noCache bool) error {
	layout, err := c.loadPreviewLayout(ctx, input, opts, noCache)
	if err != nil {
		return err
	}
	if len(layout.Blocks) == 0 {
		printInfo("Nothing to preview: %s has no tiles", input)
		return nil
	}

	model := NewPreviewModel(layout, previewCols, previewRows)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// loadPreviewLayout reads a layout document, or computes one from a dataset.
func (c *CLI) loadPreviewLayout(ctx context.Context, input string, opts pipeline.Options, noCache bool) (dataset.Layout, error) {
	if strings.HasSuffix(input, ".layout.json") {
		layout, err := dataset.ReadLayoutFile(input)
		if err != nil {
			return dataset.Layout{}, fmt.Errorf("load layout %s: %w", input, err)
		}
		return layout, nil
	}

	ds, err := pipeline.ParseFile(ctx, input)
	if err != nil {
		return dataset.Layout{}, fmt.Errorf("load dataset %s: %w", input, err)
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return dataset.Layout{}, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	layout, err := runner.ComputeLayout(ctx, ds, opts)
	if err != nil {
		return dataset.Layout{}, fmt.Errorf("compute layout: %w", err)
	}
	return layout, nil
}
