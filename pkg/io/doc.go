// Package io reads and writes computed walls as JSON.
//
// A wall file is the JSON form of a [pipeline.Result]:
//
//	{
//	  "wall": {
//	    "columns": [
//	      {"index": 0, "placements": [
//	        {"item": {"id": "a"}, "column": 0, "row": 0,
//	         "color": "bg-yellow-100", "rotation": "rotate-2"}
//	      ]},
//	      {"index": 1, "placements": []}
//	    ]
//	  },
//	  "columns": 2,
//	  "gap": 20,
//	  "preset": "notes",
//	  "cache_hit": false
//	}
//
// Use [ExportJSON] to write a wall produced by `notewall layout`, and
// [ImportJSON] to load it again, e.g. for `notewall preview --wall`.
// Import checks that the file is a consistent wall: one column per index,
// placement coordinates matching their position, and every note placed once.
//
// [pipeline.Result]: github.com/matzehuels/notewall/pkg/pipeline.Result
package io
