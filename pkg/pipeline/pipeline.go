// Package pipeline turns a note source into a decorated wall.
//
// The same fetch → layout flow backs the CLI, the interactive watcher and
// the HTTP API:
//
//  1. Fetch: read the ordered notes from a [source.Source]
//  2. Layout: resolve the column count, then distribute and decorate the
//     notes (served from the cache when an identical wall was built before)
//
// # Usage
//
//	runner := pipeline.NewRunner(src, cache.NewNullCache(), theme.Default(), logger)
//	defer runner.Close()
//
//	res, err := runner.Execute(ctx, pipeline.Options{Width: 1024, Preset: "notes"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Columns, res.Wall.Len())
package pipeline

import (
	"time"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/layout"
	"github.com/matzehuels/notewall/pkg/source"
)

// =============================================================================
// Options
// =============================================================================

// Options selects how a wall is laid out.
//
// Columns wins when set. Otherwise the column count is resolved from Width
// through the named breakpoint Preset; a zero Width selects the preset's
// default (widest) tier.
type Options struct {
	Columns int    `json:"columns,omitempty"`
	Width   int    `json:"width,omitempty"`
	Preset  string `json:"preset,omitempty"`

	// Refresh bypasses the cache lookup; the fresh wall is still stored.
	Refresh bool `json:"refresh,omitempty"`
}

// MaxColumns bounds an explicitly requested column count. No breakpoint
// preset goes past four columns.
const MaxColumns = 64

// Validate rejects values that can never produce a wall.
func (o Options) Validate() error {
	if o.Columns < 0 || o.Columns > MaxColumns {
		return errors.New(errors.ErrCodeInvalidArgument, "column count must be between 1 and %d, got %d", MaxColumns, o.Columns)
	}
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "width must be >= 0, got %d", o.Width)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result is a computed wall plus the parameters that produced it.
type Result struct {
	Wall    layout.Wall[source.Note] `json:"wall"`
	Columns int                      `json:"columns"`
	Gap     int                      `json:"gap,omitempty"`
	Preset  string                   `json:"preset,omitempty"`

	CacheHit bool  `json:"cache_hit"`
	Stats    Stats `json:"-"`
}

// Stats contains timing information.
type Stats struct {
	Notes      int
	FetchTime  time.Duration
	LayoutTime time.Duration
}

// WithColumns returns o with an explicitly requested column count. A zero
// Columns field means "derive from Width", so an explicit request is
// checked here: n must be in [1, MaxColumns].
func (o Options) WithColumns(n int) (Options, error) {
	if n <= 0 || n > MaxColumns {
		return o, errors.New(errors.ErrCodeInvalidArgument, "column count must be between 1 and %d, got %d", MaxColumns, n)
	}
	o.Columns = n
	return o, nil
}
