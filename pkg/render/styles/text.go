package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 24.0
	groupFontSize   = 11.0
	groupLabelInset = 3.0
	minLabelWidth   = 24.0
)

// FontSize picks a label size that fits the block, clamped to a readable range.
// Group labels use a fixed size since they sit in the block's corner.
func FontSize(b Block) float64 {
	if b.Group {
		return groupFontSize
	}
	n := max(1, len(b.Label))
	byHeight := b.H * fontHeightRatio
	byWidth := (b.W * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// HasRoomForLabel reports whether a label at the minimum font size fits.
func HasRoomForLabel(b Block) bool {
	if b.Label == "" || b.W < minLabelWidth {
		return false
	}
	need := fontSizeMin / fontHeightRatio
	if b.Group {
		need = groupFontSize + 2*groupLabelInset
	}
	return b.H >= need
}

// TruncateLabel shortens the label to the characters that fit the block width.
func TruncateLabel(b Block) string {
	charWidth := FontSize(b) * fontCharWidth
	maxChars := max(3, int(b.W*fontWidthRatio/charWidth))
	runes := []rune(b.Label)
	if len(runes) <= maxChars {
		return b.Label
	}
	return string(runes[:maxChars-2]) + ".."
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
