package errors

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MaxDimension bounds layout width and height.
const MaxDimension = 1 << 16

// ValidateWeights checks that every weight is a finite, non-negative number
// and that at least one is positive. ids names the items in error messages
// and may be shorter than weights.
func ValidateWeights(ids []string, weights []float64) error {
	if len(weights) == 0 {
		return New(ErrCodeInvalidInput, "dataset has no items")
	}

	var total float64
	for i, w := range weights {
		name := itemName(ids, i)
		switch {
		case math.IsNaN(w) || math.IsInf(w, 0):
			return New(ErrCodeInvalidWeight, "item %s has a non-finite weight", name)
		case w < 0:
			return New(ErrCodeInvalidWeight, "item %s has negative weight %g", name, w)
		}
		total += w
	}
	if total == 0 {
		return New(ErrCodeInvalidWeight, "total weight is zero")
	}
	if math.IsInf(total, 0) {
		return New(ErrCodeInvalidWeight, "total weight overflows")
	}
	return nil
}

func itemName(ids []string, i int) string {
	if i < len(ids) && ids[i] != "" {
		return "\"" + ids[i] + "\""
	}
	return "#" + strconv.Itoa(i)
}

// ValidateDimensions checks the size of a layout canvas.
func ValidateDimensions(width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) {
		return New(ErrCodeInvalidDimensions, "dimensions must be numbers")
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %gx%g", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large (max %d)", MaxDimension)
	}
	return nil
}

// ValidateItemID validates an item identifier. IDs end up in SVG attributes
// and cache keys, so they must be short and printable.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "item id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "item id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item id contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a relative output path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
