// Package dataset provides serialization types for weighted items and the
// layouts computed from them.
//
// This package defines streemap's wire format, used for input files, API
// requests and responses, and cache entries.
//
// # Core Types
//
//   - [Dataset]: a named list of weighted [Item]s, optionally nested
//   - [Layout]: the positioned [Block]s produced for a dataset
//
// # Dataset Files
//
// Datasets are read from JSON or TOML, chosen by file extension:
//
//	{
//	  "name": "disk usage",
//	  "items": [
//	    {"id": "src", "weight": 120},
//	    {"id": "docs", "items": [
//	      {"id": "docs/api", "weight": 30},
//	      {"id": "docs/guide", "weight": 12}
//	    ]}
//	  ]
//	}
//
// The same dataset in TOML:
//
//	name = "disk usage"
//
//	[[items]]
//	id = "src"
//	weight = 120
//
//	[[items]]
//	id = "docs"
//
//	  [[items.items]]
//	  id = "docs/api"
//	  weight = 30
//
// A JSON file may also hold a bare array of items.
//
// An item with children and no weight of its own weighs as much as its
// children together.
//
// # Layout Serialization
//
//	layout, _ := dataset.ReadLayoutFile("layout.json")
//	for _, b := range layout.Blocks {
//	    fmt.Println(b.ID, b.X, b.Y, b.Width, b.Height)
//	}
package dataset
