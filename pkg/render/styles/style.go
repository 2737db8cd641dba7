package styles

import (
	"bytes"
	"fmt"
	"strings"
)

// Style defines the visual appearance of a rendered treemap.
type Style interface {
	// Name is the identifier used on the command line and in cache keys.
	Name() string
	// RenderDefs writes SVG <defs> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderBlock writes the SVG for a single block shape.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderText writes the SVG for a block's label.
	RenderText(buf *bytes.Buffer, b Block)
}

// Block contains all data needed to render a single treemap cell.
type Block struct {
	ID         string  // Item identifier
	Label      string  // Display text
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
	Fill       string  // Resolved fill color
	Depth      int     // Nesting level, 0 for top-level items
	Group      bool    // Whether the block encloses child blocks
}

// Names of the built-in styles.
const (
	NameSimple  = "simple"
	NameOutline = "outline"
)

// Names returns the built-in style names.
func Names() []string { return []string{NameSimple, NameOutline} }

// Lookup returns the built-in style registered under name.
func Lookup(name string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSimple, "":
		return Simple{}, true
	case NameOutline:
		return Outline{}, true
	}
	return nil, false
}

// Simple fills every block with its palette color.
type Simple struct{}

func (Simple) Name() string { return NameSimple }

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderBlock(buf *bytes.Buffer, b Block) {
	opacity := 1.0
	if b.Group {
		opacity = 0.35
	}
	fmt.Fprintf(buf, `  <rect id="block-%s" class="block" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f" stroke="#ffffff" stroke-width="1"/>`+"\n",
		EscapeXML(b.ID), b.X, b.Y, b.W, b.H, b.Fill, opacity)
}

func (Simple) RenderText(buf *bytes.Buffer, b Block) {
	renderLabel(buf, b, TextColor(b.Fill))
}

// Outline draws block borders in the palette color on a white canvas.
type Outline struct{}

func (Outline) Name() string { return NameOutline }

func (Outline) RenderDefs(buf *bytes.Buffer) {}

func (Outline) RenderBlock(buf *bytes.Buffer, b Block) {
	width := 1.5
	if b.Group {
		width = 2.5
	}
	fmt.Fprintf(buf, `  <rect id="block-%s" class="block" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
		EscapeXML(b.ID), b.X, b.Y, b.W, b.H, b.Fill, width)
}

func (Outline) RenderText(buf *bytes.Buffer, b Block) {
	renderLabel(buf, b, "#333333")
}

func renderLabel(buf *bytes.Buffer, b Block, color string) {
	if !HasRoomForLabel(b) {
		return
	}
	size := FontSize(b)
	label := EscapeXML(TruncateLabel(b))
	if b.Group {
		fmt.Fprintf(buf, `  <text class="block-text" data-block="%s" x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" font-weight="bold" fill="%s">%s</text>`+"\n",
			EscapeXML(b.ID), b.X+groupLabelInset, b.Y+groupLabelInset+size, size, color, label)
		return
	}
	fmt.Fprintf(buf, `  <text class="block-text" data-block="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
		EscapeXML(b.ID), b.CX, b.CY, size, color, label)
}
