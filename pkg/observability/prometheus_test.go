package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPromHooks(reg, "test")
	ctx := context.Background()

	p.OnFetchComplete(ctx, "*source.FileSource", 7, 10*time.Millisecond, nil)
	p.OnFetchComplete(ctx, "*source.MongoSource", 0, time.Second, errors.New("timeout"))
	p.OnLayoutComplete(ctx, 7, 3, time.Microsecond, nil)
	p.OnLayoutComplete(ctx, 7, 0, 0, errors.New("column count must be >= 1"))
	p.OnCacheMiss(ctx, "wall")
	p.OnCacheSet(ctx, "wall", 512)
	p.OnCacheHit(ctx, "wall")
	p.OnResponse(ctx, "GET", "/v1/wall", 200, 5*time.Millisecond)
	p.OnResponse(ctx, "GET", "/v1/wall", 200, 5*time.Millisecond)

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"fetch ok", p.fetches.WithLabelValues("*source.FileSource", "ok"), 1},
		{"fetch error", p.fetches.WithLabelValues("*source.MongoSource", "error"), 1},
		{"notes gauge keeps last success", p.notesFetched, 7},
		{"layouts ok", p.layouts.WithLabelValues("ok"), 1},
		{"layouts error", p.layouts.WithLabelValues("error"), 1},
		{"cache hit", p.cacheEvents.WithLabelValues("wall", "hit"), 1},
		{"cache miss", p.cacheEvents.WithLabelValues("wall", "miss"), 1},
		{"cache bytes", p.cacheBytes, 512},
		{"requests", p.requests.WithLabelValues("GET", "/v1/wall", "200"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.c); got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromHooksRegisterOnce(t *testing.T) {
	Reset()
	defer Reset()

	reg := prometheus.NewRegistry()
	p := NewPromHooks(reg, "")
	p.Register()
	p.Register()

	if Server() != ServerHooks(p) {
		t.Error("Register() should install the hooks")
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, f := range families {
		if got := f.GetName(); len(got) < 9 || got[:9] != "notewall_" {
			t.Errorf("metric %q lacks default namespace", got)
		}
	}
}

type countingHooks struct {
	NoopWallHooks
	NoopCacheHooks
	NoopServerHooks
	responses int
}

func (c *countingHooks) OnResponse(context.Context, string, string, int, time.Duration) {
	c.responses++
}

func TestMulti(t *testing.T) {
	Reset()
	defer Reset()

	a, b := &countingHooks{}, &countingHooks{}
	Multi{a, b}.Register()

	Server().OnResponse(context.Background(), "GET", "/healthz", 200, time.Millisecond)
	Wall().OnLayoutStart(context.Background(), 1, 1)

	if a.responses != 1 || b.responses != 1 {
		t.Errorf("responses = (%d, %d), want (1, 1)", a.responses, b.responses)
	}
}
