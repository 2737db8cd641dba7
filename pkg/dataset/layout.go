package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/streemap/pkg/errors"
)

// =============================================================================
// Layout - Computed Treemap
// =============================================================================

// Layout is the serialization format for a computed treemap.
//
// Blocks are listed depth-first in dataset order: every group block comes
// right before the blocks of its children.
type Layout struct {
	// ID is assigned when a layout is stored by the HTTP API.
	ID string `json:"id,omitempty" bson:"_id,omitempty"`

	Name      string  `json:"name,omitempty" bson:"name,omitempty"`
	Algorithm string  `json:"algorithm" bson:"algorithm"`
	Width     float64 `json:"width" bson:"width"`
	Height    float64 `json:"height" bson:"height"`
	Scaled    bool    `json:"scaled" bson:"scaled"`
	Padding   float64 `json:"padding,omitempty" bson:"padding,omitempty"`
	Blocks    []Block `json:"blocks" bson:"blocks"`
}

// =============================================================================
// Block - Positioned Item
// =============================================================================

// Block is one item placed in a layout.
type Block struct {
	ID     string  `json:"id" bson:"id"`
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`
	Weight float64 `json:"weight" bson:"weight"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Color  string  `json:"color,omitempty" bson:"color,omitempty"`

	// Nesting
	Depth  int    `json:"depth,omitempty" bson:"depth,omitempty"`
	Parent string `json:"parent,omitempty" bson:"parent,omitempty"`
	Group  bool   `json:"group,omitempty" bson:"group,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (b *Block) DisplayLabel() string {
	if b.Label != "" {
		return b.Label
	}
	return b.ID
}

// Area returns Width*Height.
func (b *Block) Area() float64 { return b.Width * b.Height }

// Leaves returns the blocks that are not groups.
func (l *Layout) Leaves() []Block {
	out := make([]Block, 0, len(l.Blocks))
	for _, b := range l.Blocks {
		if !b.Group {
			out = append(out, b)
		}
	}
	return out
}

// MaxDepth returns the deepest nesting level in the layout.
func (l *Layout) MaxDepth() int {
	depth := 0
	for _, b := range l.Blocks {
		depth = max(depth, b.Depth)
	}
	return depth
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and checks that it
// has a usable frame.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal layout")
	}
	if err := errors.ValidateDimensions(l.Width, l.Height); err != nil {
		return Layout{}, fmt.Errorf("layout frame: %w", err)
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
