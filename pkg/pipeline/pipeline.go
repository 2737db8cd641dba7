// Package pipeline provides the parse → layout → render pipeline for streemap.
//
// The CLI and the HTTP server both go through this package, so defaults,
// validation and caching behave the same at every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read a dataset from JSON or TOML
//  2. Layout: Place every item with a treemap algorithm
//  3. Render: Generate output in various formats (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	ds, err := pipeline.ParseFile(ctx, "items.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, ds, pipeline.Options{
//	    Algorithm: "squarify",
//	    Formats:   []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	layout, err := runner.ComputeLayout(ctx, ds, opts)
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/streemap/pkg/cache"
	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/errors"
	"github.com/matzehuels/streemap/pkg/render/styles"
	"github.com/matzehuels/streemap/pkg/treemap"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600.0

	// DefaultScale is the default PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultAlgorithm is the default layout algorithm.
	DefaultAlgorithm = treemap.AlgorithmSquarify

	// DefaultStyle is the default visual style.
	DefaultStyle = styles.NameSimple
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	styles.NameSimple:  true,
	styles.NameOutline: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Algorithm string  `json:"algorithm,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Unscaled  bool    `json:"unscaled,omitempty"` // Place raw weights at the top level instead of scaling to the frame
	Sort      bool    `json:"sort,omitempty"`     // Sort items by weight, largest first, before layout
	Padding   float64 `json:"padding,omitempty"`  // Inset between a group and its children
	MaxDepth  int     `json:"max_depth,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`
	Scale    float64  `json:"scale,omitempty"` // PNG resolution multiplier

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the input dataset, sorted when Options.Sort is set.
	Dataset dataset.Dataset

	// DatasetHash is the content hash of the input dataset.
	DatasetHash string

	// Layout contains the positioned blocks.
	Layout dataset.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	BlockCount int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateAlgorithm checks that an algorithm name is known.
func ValidateAlgorithm(name string) error {
	if _, ok := treemap.ParseAlgorithm(name); !ok {
		return errors.New(errors.ErrCodeInvalidAlgorithm,
			"invalid algorithm: %q (must be one of: %s)", name, algorithmNames())
	}
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, outline)", style)
	}
	return nil
}

func algorithmNames() string {
	var names []string
	for _, a := range treemap.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Algorithm == "" {
		o.Algorithm = string(DefaultAlgorithm)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
// The algorithm name is normalized so equivalent spellings share cache entries.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	a, ok := treemap.ParseAlgorithm(o.Algorithm)
	if !ok {
		return ValidateAlgorithm(o.Algorithm)
	}
	o.Algorithm = a.String()

	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.Padding < 0 || math.IsNaN(o.Padding) || math.IsInf(o.Padding, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "padding must be a non-negative number, got %v", o.Padding)
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max depth must not be negative, got %d", o.MaxDepth)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
// Duplicate formats are dropped.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Scale < 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be a positive number, got %v", o.Scale)
	}
	return nil
}

// Inherit fills the fields o leaves unset from d. Flags are combined, so a
// flag set in d cannot be cleared by o.
func (o *Options) Inherit(d Options) {
	if o.Algorithm == "" {
		o.Algorithm = d.Algorithm
	}
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.Padding == 0 {
		o.Padding = d.Padding
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = d.MaxDepth
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(d.Formats)
	}
	if o.Style == "" {
		o.Style = d.Style
	}
	if o.Scale == 0 {
		o.Scale = d.Scale
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	o.Unscaled = o.Unscaled || d.Unscaled
	o.Sort = o.Sort || d.Sort
	o.NoLabels = o.NoLabels || d.NoLabels
	o.Refresh = o.Refresh || d.Refresh
	o.validated = false
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Algorithm: o.Algorithm,
		Width:     o.Width,
		Height:    o.Height,
		Scaled:    !o.Unscaled,
		Sort:      o.Sort,
		Padding:   o.Padding,
		MaxDepth:  o.MaxDepth,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Labels: !o.NoLabels,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
