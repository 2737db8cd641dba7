package sink

import (
	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/render/styles"
)

// Blocks converts layout blocks to style blocks, resolving fills.
// Explicit colors win; otherwise children take their parent's fill and
// top-level blocks cycle through the palette.
func Blocks(l dataset.Layout) []styles.Block {
	fills := make(map[string]string, len(l.Blocks))
	blocks := make([]styles.Block, 0, len(l.Blocks))
	top := 0
	for _, b := range l.Blocks {
		fill := b.Color
		if fill == "" || !styles.ValidColor(fill) {
			if parent, ok := fills[b.Parent]; ok && b.Parent != "" {
				fill = parent
			} else {
				fill = styles.PaletteColor(top)
			}
		}
		if b.Parent == "" {
			top++
		}
		fills[b.ID] = fill

		blocks = append(blocks, styles.Block{
			ID:    b.ID,
			Label: b.DisplayLabel(),
			X:     b.X, Y: b.Y,
			W: b.Width, H: b.Height,
			CX: b.X + b.Width/2, CY: b.Y + b.Height/2,
			Fill:  fill,
			Depth: b.Depth,
			Group: b.Group,
		})
	}
	return blocks
}
