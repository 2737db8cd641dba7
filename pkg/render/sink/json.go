package sink

import (
	"encoding/json"

	"github.com/matzehuels/streemap/pkg/dataset"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name in the JSON output.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Name      string      `json:"name,omitempty"`
	Algorithm string      `json:"algorithm"`
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	Scaled    bool        `json:"scaled"`
	Padding   float64     `json:"padding,omitempty"`
	Style     string      `json:"style,omitempty"`
	Blocks    []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill"`
	Depth  int     `json:"depth,omitempty"`
	Parent string  `json:"parent,omitempty"`
	Group  bool    `json:"group,omitempty"`
}

// RenderJSON exports the layout as pretty-printed JSON with resolved fill
// colors, for drawing in external tools.
func RenderJSON(l dataset.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	styled := Blocks(l)
	out := jsonOutput{
		Name:      l.Name,
		Algorithm: l.Algorithm,
		Width:     l.Width,
		Height:    l.Height,
		Scaled:    l.Scaled,
		Padding:   l.Padding,
		Style:     r.style,
		Blocks:    make([]jsonBlock, len(l.Blocks)),
	}
	for i, b := range l.Blocks {
		out.Blocks[i] = jsonBlock{
			ID:     b.ID,
			Label:  b.DisplayLabel(),
			Weight: b.Weight,
			X:      b.X,
			Y:      b.Y,
			Width:  b.Width,
			Height: b.Height,
			Fill:   styled[i].Fill,
			Depth:  b.Depth,
			Parent: b.Parent,
			Group:  b.Group,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
