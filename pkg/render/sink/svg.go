package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/render/styles"
)

const blockInteractionCSS = `
    .block { transition: stroke-width 0.2s ease; }
    .block:hover { stroke-width: 3; }
    .block-text { pointer-events: none; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	labels bool
}

// WithStyle sets the visual style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLabels toggles block labels (default on).
func WithLabels(show bool) SVGOption { return func(r *svgRenderer) { r.labels = show } }

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l dataset.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	blocks := Blocks(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	if l.Name != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(l.Name))
	}
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", blockInteractionCSS)
	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="#ffffff"/>`+"\n", l.Width, l.Height)

	for _, b := range blocks {
		r.style.RenderBlock(&buf, b)
	}
	if r.labels {
		for _, b := range blocks {
			r.style.RenderText(&buf, b)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Simple{}
	}
	return r
}
