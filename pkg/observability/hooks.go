// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module emit events through the registered hooks instead
// of depending on a metrics backend. Main registers real implementations at
// startup; until then every hook is a no-op.
//
//	observability.SetWallHooks(observability.NewLogHooks(logger))
//
//	observability.Wall().OnLayoutStart(ctx, len(notes), columns)
//	// ... decorate ...
//	observability.Wall().OnLayoutComplete(ctx, len(notes), columns, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Wall Hooks
// =============================================================================

// WallHooks receives events from the fetch and layout stages.
type WallHooks interface {
	OnFetchStart(ctx context.Context, source string)
	OnFetchComplete(ctx context.Context, source string, count int, duration time.Duration, err error)

	OnLayoutStart(ctx context.Context, items, columns int)
	OnLayoutComplete(ctx context.Context, items, columns int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP API.
type ServerHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWallHooks is a no-op implementation of WallHooks.
type NoopWallHooks struct{}

func (NoopWallHooks) OnFetchStart(context.Context, string)                               {}
func (NoopWallHooks) OnFetchComplete(context.Context, string, int, time.Duration, error) {}
func (NoopWallHooks) OnLayoutStart(context.Context, int, int)                            {}
func (NoopWallHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	wallHooks   WallHooks   = NoopWallHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetWallHooks registers wall hooks. Nil is ignored.
func SetWallHooks(h WallHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		wallHooks = h
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers server hooks. Nil is ignored.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Wall returns the registered wall hooks.
func Wall() WallHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return wallHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	wallHooks = NoopWallHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
