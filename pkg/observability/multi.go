package observability

import (
	"context"
	"time"
)

// Hooks implements every hook category.
type Hooks interface {
	WallHooks
	CacheHooks
	ServerHooks
}

// Multi forwards each event to every hook in order.
type Multi []Hooks

// Register installs m for every hook category.
func (m Multi) Register() {
	SetWallHooks(m)
	SetCacheHooks(m)
	SetServerHooks(m)
}

func (m Multi) OnFetchStart(ctx context.Context, source string) {
	for _, h := range m {
		h.OnFetchStart(ctx, source)
	}
}

func (m Multi) OnFetchComplete(ctx context.Context, source string, count int, d time.Duration, err error) {
	for _, h := range m {
		h.OnFetchComplete(ctx, source, count, d, err)
	}
}

func (m Multi) OnLayoutStart(ctx context.Context, items, columns int) {
	for _, h := range m {
		h.OnLayoutStart(ctx, items, columns)
	}
}

func (m Multi) OnLayoutComplete(ctx context.Context, items, columns int, d time.Duration, err error) {
	for _, h := range m {
		h.OnLayoutComplete(ctx, items, columns, d, err)
	}
}

func (m Multi) OnCacheHit(ctx context.Context, keyType string) {
	for _, h := range m {
		h.OnCacheHit(ctx, keyType)
	}
}

func (m Multi) OnCacheMiss(ctx context.Context, keyType string) {
	for _, h := range m {
		h.OnCacheMiss(ctx, keyType)
	}
}

func (m Multi) OnCacheSet(ctx context.Context, keyType string, size int) {
	for _, h := range m {
		h.OnCacheSet(ctx, keyType, size)
	}
}

func (m Multi) OnRequest(ctx context.Context, method, route string) {
	for _, h := range m {
		h.OnRequest(ctx, method, route)
	}
}

func (m Multi) OnResponse(ctx context.Context, method, route string, status int, d time.Duration) {
	for _, h := range m {
		h.OnResponse(ctx, method, route, status, d)
	}
}
