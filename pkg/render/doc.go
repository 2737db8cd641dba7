// Package render turns computed treemap layouts into pictures.
//
// # Overview
//
// Layouts come out of the pipeline as [dataset.Layout] values: a frame size
// and a flat, depth-first list of positioned blocks. Rendering is split in
// two subpackages:
//
//   - [styles]: how a block looks (fill, stroke, label placement)
//   - [sink]: output formats (SVG, PNG, JSON)
//
// # Usage
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Simple{}))
//	png, err := sink.RenderPNG(layout, sink.WithScale(2))
//	data, err := sink.RenderJSON(layout)
//
// [dataset.Layout]: github.com/matzehuels/streemap/pkg/dataset.Layout
// [styles]: github.com/matzehuels/streemap/pkg/render/styles
// [sink]: github.com/matzehuels/streemap/pkg/render/sink
package render
