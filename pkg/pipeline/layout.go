package pipeline

import (
	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/treemap"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout places every item of the dataset in an Options.Width by
// Options.Height frame with the chosen algorithm.
//
// Items with children become group blocks; their children are laid out again
// inside the group's rectangle, inset by Options.Padding, until
// Options.MaxDepth levels have been placed (0 places every level). Nested
// levels always scale to their group, since the group's rectangle is the
// only frame the children may use.
func GenerateLayout(ds dataset.Dataset, opts Options) (dataset.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return dataset.Layout{}, err
	}
	if err := validate(ds); err != nil {
		return dataset.Layout{}, err
	}
	algorithm, _ := treemap.ParseAlgorithm(opts.Algorithm)

	work := ds
	if opts.Sort {
		work = ds.Clone()
		work.SortByWeight()
	}

	b := &layoutBuilder{
		algorithm: algorithm,
		padding:   opts.Padding,
		maxDepth:  opts.MaxDepth,
		blocks:    make([]dataset.Block, 0, work.Count()),
	}
	b.place(treemap.FromSize(opts.Width, opts.Height), work.Items, "", 0, !opts.Unscaled)

	return dataset.Layout{
		Name:      ds.Name,
		Algorithm: algorithm.String(),
		Width:     opts.Width,
		Height:    opts.Height,
		Scaled:    !opts.Unscaled,
		Padding:   opts.Padding,
		Blocks:    b.blocks,
	}, nil
}

// layoutBuilder accumulates blocks depth-first in dataset order.
type layoutBuilder struct {
	algorithm treemap.Algorithm
	padding   float64
	maxDepth  int
	blocks    []dataset.Block
}

func (b *layoutBuilder) place(frame treemap.Rect[float64], items []dataset.Item, parent string, depth int, scaled bool) {
	treemap.Run(b.algorithm, scaled, frame, items, dataset.Weight, func(it *dataset.Item, r treemap.Rect[float64]) {
		group := len(it.Items) > 0 && (b.maxDepth == 0 || depth+1 < b.maxDepth)
		b.blocks = append(b.blocks, dataset.Block{
			ID:     it.ID,
			Label:  it.Label,
			Weight: it.EffectiveWeight(),
			X:      r.X,
			Y:      r.Y,
			Width:  r.W,
			Height: r.H,
			Color:  it.Color,
			Depth:  depth,
			Parent: parent,
			Group:  group,
		})
		if group {
			b.place(inset(r, b.padding), it.Items, it.ID, depth+1, true)
		}
	})
}

// inset shrinks r by pad on every side, never below zero size.
func inset(r treemap.Rect[float64], pad float64) treemap.Rect[float64] {
	dx := min(pad, r.W/2)
	dy := min(pad, r.H/2)
	return treemap.Rect[float64]{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}
