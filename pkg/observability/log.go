package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a charm logger at debug level, and failures
// at warn level. It implements all hook interfaces.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l (log.Default() when nil).
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

// Register installs h for every hook category.
func (h *LogHooks) Register() {
	SetWallHooks(h)
	SetCacheHooks(h)
	SetServerHooks(h)
}

func (h *LogHooks) OnFetchStart(_ context.Context, source string) {
	h.logger.Debug("fetch started", "source", source)
}

func (h *LogHooks) OnFetchComplete(_ context.Context, source string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("fetch failed", "source", source, "duration", d, "err", err)
		return
	}
	h.logger.Debug("fetch complete", "source", source, "notes", count, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, items, columns int) {
	h.logger.Debug("layout started", "items", items, "columns", columns)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, items, columns int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("layout failed", "items", items, "columns", columns, "err", err)
		return
	}
	h.logger.Debug("layout complete", "items", items, "columns", columns, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

var _ Hooks = (*LogHooks)(nil)
