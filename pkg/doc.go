// Package pkg provides the libraries behind streemap, a treemap layout tool.
//
// # Overview
//
// A treemap partitions a rectangle into one tile per item, with tile area
// proportional to item weight and tiles placed in input order. The pkg
// directory is organized into three main areas:
//
//  1. [treemap] - The layout algorithms, generic over integer and float types
//  2. [pipeline] - Orchestration (parse → layout → render) with caching
//  3. Supporting packages for datasets, rendering, caching and configuration
//
// # Architecture
//
// The typical data flow through streemap:
//
//	Dataset (JSON or TOML)
//	         ↓
//	    [dataset] package (items, weights, nesting)
//	         ↓
//	    [treemap] package (place every item in a rectangle)
//	         ↓
//	    [render/sink] package (SVG, PNG, JSON)
//
// # Quick Start
//
// Lay out items with the core library alone:
//
//	type entry struct {
//	    name   string
//	    weight float64
//	}
//	items := []entry{{"a", 6}, {"b", 3}, {"c", 1}}
//	treemap.SquarifyScaled(treemap.FromSize(600.0, 400.0), items,
//	    func(e *entry) float64 { return e.weight },
//	    func(e *entry, r treemap.Rect[float64]) { fmt.Println(e.name, r) })
//
// Run the full pipeline:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	ds, _ := pipeline.ParseFile(ctx, "items.toml")
//	result, _ := runner.Execute(ctx, ds, pipeline.Options{Formats: []string{"svg"}})
//
// # Main Packages
//
// [treemap] - Slice, Dice, Binary, Squarify and ordered pivot layouts. Items
// are read through a size callback and written through a place callback, so
// the library never allocates output of its own.
//
// [dataset] - Input datasets and computed layout documents.
//
// [pipeline] - Options, validation and the cached [pipeline.Runner] used by
// both the CLI and the HTTP server.
//
// [render/sink] - Output formats. [render/styles] holds the visual styles
// and the color palette.
//
// [cache] - File, memory, Redis and MongoDB cache backends.
//
// [config] - The TOML configuration file.
//
// [errors] - Structured errors with codes the HTTP API maps to status codes.
//
// [observability] - Hooks fired around parsing, layout, rendering, cache
// access and HTTP requests.
//
// [treemap]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/treemap
// [dataset]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/dataset
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/pipeline#Runner
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/render/styles
// [cache]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/streemap/pkg/observability
package pkg
