package dataset

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/streemap/pkg/errors"
)

// =============================================================================
// Dataset - Input Format
// =============================================================================

// Dataset is a named, ordered list of weighted items.
type Dataset struct {
	Name  string `json:"name,omitempty" toml:"name,omitempty" bson:"name,omitempty"`
	Items []Item `json:"items" toml:"items" bson:"items"`
}

// Item is one weighted entry. Items with children are laid out as a group
// and their children are laid out again inside the group's rectangle.
type Item struct {
	ID     string  `json:"id" toml:"id" bson:"id"`
	Label  string  `json:"label,omitempty" toml:"label,omitempty" bson:"label,omitempty"`
	Weight float64 `json:"weight,omitempty" toml:"weight,omitempty" bson:"weight,omitempty"`
	Color  string  `json:"color,omitempty" toml:"color,omitempty" bson:"color,omitempty"`
	Items  []Item  `json:"items,omitempty" toml:"items,omitempty" bson:"items,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (it *Item) DisplayLabel() string {
	if it.Label != "" {
		return it.Label
	}
	return it.ID
}

// EffectiveWeight returns the weight used for layout: the item's own weight,
// or the sum of its children's when it has none.
func (it *Item) EffectiveWeight() float64 {
	if it.Weight != 0 || len(it.Items) == 0 {
		return it.Weight
	}
	var total float64
	for i := range it.Items {
		total += it.Items[i].EffectiveWeight()
	}
	return total
}

// Weight returns the effective weight of item. It has the shape of a size
// callback for the treemap package.
func Weight(item *Item) float64 { return item.EffectiveWeight() }

// TotalWeight sums the effective weights of the top-level items.
func (d *Dataset) TotalWeight() float64 {
	var total float64
	for i := range d.Items {
		total += d.Items[i].EffectiveWeight()
	}
	return total
}

// Count returns the number of items at every depth.
func (d *Dataset) Count() int {
	return countItems(d.Items)
}

func countItems(items []Item) int {
	n := len(items)
	for i := range items {
		n += countItems(items[i].Items)
	}
	return n
}

// Validate checks item IDs and weights at every depth. IDs must be unique
// within the whole dataset, since they identify blocks in rendered output.
func (d *Dataset) Validate() error {
	seen := make(map[string]bool)
	return validateItems(d.Items, "", seen)
}

func validateItems(items []Item, parent string, seen map[string]bool) error {
	ids := make([]string, len(items))
	weights := make([]float64, len(items))
	for i := range items {
		it := &items[i]
		if err := errors.ValidateItemID(it.ID); err != nil {
			return err
		}
		if seen[it.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		ids[i] = it.ID
		weights[i] = it.EffectiveWeight()
	}

	if err := errors.ValidateWeights(ids, weights); err != nil {
		if parent != "" {
			return fmt.Errorf("children of %q: %w", parent, err)
		}
		return err
	}

	for i := range items {
		if len(items[i].Items) == 0 {
			continue
		}
		if err := validateItems(items[i].Items, items[i].ID, seen); err != nil {
			return err
		}
	}
	return nil
}

// SortByWeight orders items by descending effective weight at every depth.
// Items of equal weight keep their relative order.
func (d *Dataset) SortByWeight() {
	sortItems(d.Items)
}

func sortItems(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(b.EffectiveWeight(), a.EffectiveWeight())
	})
	for i := range items {
		sortItems(items[i].Items)
	}
}

// Clone returns a deep copy of d.
func (d Dataset) Clone() Dataset {
	d.Items = cloneItems(d.Items)
	return d
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		it.Items = cloneItems(it.Items)
		out[i] = it
	}
	return out
}
