// Package sink provides output format renderers for treemap layouts.
//
// # Overview
//
// A "sink" transforms a computed [dataset.Layout] into a final output format:
//
//   - SVG: vector output with one rect per block and optional labels
//   - PNG: raster output drawn with github.com/fogleman/gg
//   - JSON: layout data with resolved fill colors for external tools
//
// # Colors
//
// Blocks with an explicit hex color keep it. Children without one inherit
// their parent's fill; top-level blocks cycle through [styles.Palette].
//
// # SVG Output
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStyle(styles.Outline{}),
//	    sink.WithLabels(false),
//	)
//
// # PNG Output
//
// [RenderPNG] accepts the SVG options through [WithPNGSVGOptions], so both
// formats share style and label settings:
//
//	png, err := sink.RenderPNG(layout, sink.WithScale(2),
//	    sink.WithPNGSVGOptions(sink.WithStyle(styles.Simple{})))
package sink
