// Package cache stores computed layouts and rendered artifacts.
//
// Everything the pipeline produces is a pure function of its input and
// options, so results are cached under content-derived keys. The CLI uses
// [FileCache] under the XDG cache directory; the HTTP server can share
// results across instances through [RedisCache] or [MongoCache].
//
// # Keys
//
// Keys come from a [Keyer]:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.LayoutKey(datasetHash, cache.LayoutKeyOpts{Algorithm: "squarify", Width: 800, Height: 600})
//
// Wrap a keyer with [NewScopedKeyer] to keep separate namespaces in one
// shared backend.
package cache

import (
	"context"
	"time"
)

// TTLs for each kind of entry. Zero means no expiry.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
	TTLDocument = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies a layout of the dataset with the given hash.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact of the layout with the given hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string

	// DocumentKey identifies a stored layout document by ID.
	DocumentKey(id string) string
}

// LayoutKeyOpts holds the options that change a computed layout.
type LayoutKeyOpts struct {
	Algorithm string  `json:"algorithm"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Scaled    bool    `json:"scaled"`
	Sort      bool    `json:"sort"`
	Padding   float64 `json:"padding"`
	MaxDepth  int     `json:"max_depth"`
}

// ArtifactKeyOpts holds the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Labels bool    `json:"labels"`
	Scale  float64 `json:"scale"`
}

// DefaultKeyer builds keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

func (DefaultKeyer) DocumentKey(id string) string {
	return "doc:" + id
}
