package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/errors"
	"github.com/matzehuels/streemap/pkg/render/styles"
)

// MaxPNGPixels bounds the raster size so a large frame and scale cannot
// exhaust memory.
const MaxPNGPixels = 64 << 20

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions applies the SVG style and label options to the raster.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the layout with gg.
func RenderPNG(l dataset.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", r.scale)
	}
	if err := errors.ValidateDimensions(l.Width, l.Height); err != nil {
		return nil, err
	}

	w := int(math.Ceil(l.Width * r.scale))
	h := int(math.Ceil(l.Height * r.scale))
	if w*h > MaxPNGPixels {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "png of %dx%d pixels exceeds limit", w, h)
	}

	svg := newSVGRenderer(r.svgOpts...)
	outline := svg.style.Name() == styles.NameOutline
	blocks := Blocks(l)

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(r.scale, r.scale)

	for _, b := range blocks {
		drawBlock(dc, b, outline)
	}
	if svg.labels {
		for _, b := range blocks {
			drawLabel(dc, b, outline)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func drawBlock(dc *gg.Context, b styles.Block, outline bool) {
	dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	if outline {
		dc.SetHexColor(b.Fill)
		dc.SetLineWidth(1.5)
		if b.Group {
			dc.SetLineWidth(2.5)
		}
		dc.Stroke()
		return
	}

	r, g, bl, _ := styles.ParseHex(b.Fill)
	alpha := 1.0
	if b.Group {
		alpha = 0.35
	}
	dc.SetRGBA255(int(r), int(g), int(bl), int(alpha*255))
	dc.FillPreserve()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(1)
	dc.Stroke()
}

func drawLabel(dc *gg.Context, b styles.Block, outline bool) {
	if !styles.HasRoomForLabel(b) {
		return
	}
	color := "#333333"
	if !outline {
		color = styles.TextColor(b.Fill)
	}
	dc.SetHexColor(color)

	label := styles.TruncateLabel(b)
	if b.Group {
		dc.DrawStringAnchored(label, b.X+3, b.Y+3, 0, 1)
		return
	}
	dc.DrawStringAnchored(label, b.CX, b.CY, 0.5, 0.5)
}
