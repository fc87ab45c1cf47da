// Package pkg provides the libraries behind notewall.
//
// # Overview
//
// Notewall turns an ordered list of notes into a sticky-note wall: notes are
// dealt into columns round-robin and each one gets a colour and a tilt
// derived only from its id, so the same note looks the same everywhere.
//
//  1. [layout] - column distribution, stable bucketing, palettes, breakpoints
//  2. [gallery] - photo tiling and viewer navigation for posts
//  3. [source] - note sources (JSON files, MongoDB)
//  4. [cache] - wall caches (files, Redis)
//  5. [theme] - TOML theme files
//  6. [pipeline] - orchestration (fetch → layout)
//  7. [io] - wall file import and export
//
// # Data flow
//
//	source.Source (file, MongoDB)
//	         ↓
//	pipeline.Runner.Fetch
//	         ↓
//	pipeline.Runner.Layout ── cache.Cache (file, Redis)
//	         ↓
//	layout.Decorate → layout.Wall
//
// # Quick Start
//
//	cols, err := layout.Distribute([]string{"a", "b", "c", "d", "e"}, 2)
//	// cols[0].Items = [a c e], cols[1].Items = [b d]
//
//	b, err := layout.Bucket("abc", 6) // 0
//
// [layout]: github.com/matzehuels/notewall/pkg/layout
// [gallery]: github.com/matzehuels/notewall/pkg/gallery
// [source]: github.com/matzehuels/notewall/pkg/source
// [cache]: github.com/matzehuels/notewall/pkg/cache
// [theme]: github.com/matzehuels/notewall/pkg/theme
// [pipeline]: github.com/matzehuels/notewall/pkg/pipeline
// [io]: github.com/matzehuels/notewall/pkg/io
package pkg
