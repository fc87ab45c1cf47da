package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/notewall/pkg/cache"
	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/layout"
	"github.com/matzehuels/notewall/pkg/observability"
	"github.com/matzehuels/notewall/pkg/source"
	"github.com/matzehuels/notewall/pkg/theme"
)

const keyTypeWall = "wall"

// Runner executes the pipeline with caching.
//
// A Runner holds no per-request state; concurrent calls with different
// options are safe as long as the Source and Cache are.
type Runner struct {
	Source source.Source
	Cache  cache.Cache
	Keyer  cache.Keyer
	Theme  *theme.Theme
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil theme
// uses the built-in palettes and breakpoints, a nil logger uses
// log.Default(). src may be nil when only Layout is used.
func NewRunner(src source.Source, c cache.Cache, th *theme.Theme, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if th == nil {
		th = theme.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source: src,
		Cache:  c,
		Keyer:  cache.NewDefaultKeyer(),
		Theme:  th,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// Execute fetches the notes and lays them out.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	notes, err := r.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	fetchTime := time.Since(start)

	res, err := r.Layout(ctx, notes, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	res.Stats.FetchTime = fetchTime
	return res, nil
}

// Fetch reads the notes from the configured source.
func (r *Runner) Fetch(ctx context.Context) ([]source.Note, error) {
	if r.Source == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no note source configured")
	}

	name := fmt.Sprintf("%T", r.Source)
	hooks := observability.Wall()
	hooks.OnFetchStart(ctx, name)

	start := time.Now()
	notes, err := r.Source.Notes(ctx)
	hooks.OnFetchComplete(ctx, name, len(notes), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("fetched notes", "count", len(notes), "duration", time.Since(start))
	return notes, nil
}

// Resolve returns the column count and gap for opts.
func (r *Runner) Resolve(opts Options) (columns, gap int, err error) {
	if err := opts.Validate(); err != nil {
		return 0, 0, err
	}
	bp, err := r.Theme.Preset(opts.Preset)
	if err != nil {
		return 0, 0, err
	}
	if opts.Columns > 0 {
		return opts.Columns, 0, nil
	}
	if opts.Width == 0 {
		return bp.Default.Columns, bp.Default.Gap, nil
	}
	tier, err := bp.Resolve(opts.Width)
	if err != nil {
		return 0, 0, err
	}
	return tier.Columns, tier.Gap, nil
}

// Layout decorates notes, consulting the cache first unless opts.Refresh.
func (r *Runner) Layout(ctx context.Context, notes []source.Note, opts Options) (*Result, error) {
	columns, gap, err := r.Resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := source.Validate(notes); err != nil {
		return nil, err
	}

	res := &Result{Columns: columns, Gap: gap, Preset: opts.Preset}
	res.Stats.Notes = len(notes)

	key := r.Keyer.WallKey(source.IDs(notes), cache.WallKeyOpts{
		Columns:   columns,
		Colors:    r.Theme.Colors,
		Rotations: r.Theme.Rotations,
	})

	if !opts.Refresh {
		if wall, ok := r.cached(ctx, key, notes); ok {
			res.Wall = wall
			res.CacheHit = true
			return res, nil
		}
	}

	hooks := observability.Wall()
	hooks.OnLayoutStart(ctx, len(notes), columns)
	start := time.Now()
	wall, err := layout.Decorate(notes, columns, r.Theme.Colors, r.Theme.Rotations)
	res.Stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, len(notes), columns, res.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	res.Wall = wall

	r.store(ctx, key, wall, notes)
	r.Logger.Debug("computed wall", "notes", len(notes), "columns", columns, "duration", res.Stats.LayoutTime)
	return res, nil
}

// cached returns a stored wall with notes attached. Only placements are
// cached, so the content always comes from the caller. Cache failures are
// logged and treated as misses; the wall can always be recomputed.
func (r *Runner) cached(ctx context.Context, key string, notes []source.Note) (layout.Wall[source.Note], bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeWall)
		return layout.Wall[source.Note]{}, false
	}

	var skeleton layout.Wall[layout.ID]
	err = json.Unmarshal(data, &skeleton)
	wall, ok := layout.Wall[source.Note]{}, false
	if err == nil {
		wall, ok = layout.Rebind(skeleton, notes)
	}
	if !ok {
		r.Logger.Warn("discarding corrupt cached wall", "key", key, "err", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, keyTypeWall)
		return layout.Wall[source.Note]{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeWall)
	return wall, true
}

// store caches the placements of wall, keyed by id only.
func (r *Runner) store(ctx context.Context, key string, wall layout.Wall[source.Note], notes []source.Note) {
	skeleton, ok := layout.Rebind(wall, layout.IDs(source.IDs(notes)...))
	if !ok {
		return
	}
	data, err := json.Marshal(skeleton)
	if err != nil {
		r.Logger.Warn("encode wall for cache", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeWall, len(data))
}

// Close releases the cache and the source.
func (r *Runner) Close() error {
	var firstErr error
	if r.Cache != nil {
		firstErr = r.Cache.Close()
	}
	if r.Source != nil {
		if err := r.Source.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
