package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/httputil"
	"github.com/matzehuels/notewall/pkg/layout"
	"github.com/matzehuels/notewall/pkg/observability"
	"github.com/matzehuels/notewall/pkg/pipeline"
	"github.com/matzehuels/notewall/pkg/source"
)

func newTestServer(t *testing.T, notes ...source.Note) *httptest.Server {
	t.Helper()
	runner := pipeline.NewRunner(source.Static(notes), nil, nil, nil)
	ts := httptest.NewServer(New(runner, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func columnIDs(t *testing.T, body []byte) [][]string {
	t.Helper()
	var res struct {
		Wall layout.Wall[source.Note] `json:"wall"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode wall: %v\n%s", err, body)
	}
	out := make([][]string, len(res.Wall.Columns))
	for i, col := range res.Wall.Columns {
		out[i] = []string{}
		for _, p := range col.Placements {
			out[i] = append(out[i], p.Item.ID)
		}
	}
	return out
}

func errorCode(t *testing.T, body []byte) errors.Code {
	t.Helper()
	var eb httputil.ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		t.Fatalf("decode error body: %v\n%s", err, body)
	}
	return eb.Code
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, body := do(t, ts, http.MethodGet, "/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %s, want status ok", body)
	}
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		want   [][]string
		code   errors.Code
	}{
		{
			name:   "round robin",
			body:   `{"items":["a","b","c","d","e"],"columns":2}`,
			status: http.StatusOK,
			want:   [][]string{{"a", "c", "e"}, {"b", "d"}},
		},
		{
			name:   "more columns than items",
			body:   `{"items":["a","b"],"columns":3}`,
			status: http.StatusOK,
			want:   [][]string{{"a"}, {"b"}, {}},
		},
		{
			name:   "empty items",
			body:   `{"items":[],"columns":3}`,
			status: http.StatusOK,
			want:   [][]string{{}, {}, {}},
		},
		{
			name:   "note objects",
			body:   `{"items":[{"id":"x","content":"hi"},{"id":"y"}],"columns":1}`,
			status: http.StatusOK,
			want:   [][]string{{"x", "y"}},
		},
		{
			name:   "width resolves notes breakpoint",
			body:   `{"items":["a","b","c"],"width":700}`,
			status: http.StatusOK,
			want:   [][]string{{"a", "c"}, {"b"}},
		},
		{
			name:   "width resolves album breakpoint",
			body:   `{"items":["a","b","c"],"width":1000,"preset":"album"}`,
			status: http.StatusOK,
			want:   [][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			name:   "zero columns",
			body:   `{"items":["a"],"columns":0}`,
			status: http.StatusBadRequest,
			code:   errors.ErrCodeInvalidArgument,
		},
		{
			name:   "columns above bound",
			body:   `{"items":[],"columns":2000000}`,
			status: http.StatusBadRequest,
			code:   errors.ErrCodeInvalidArgument,
		},
		{
			name:   "negative columns",
			body:   `{"items":["a"],"columns":-2}`,
			status: http.StatusBadRequest,
			code:   errors.ErrCodeInvalidArgument,
		},
		{
			name:   "duplicate ids",
			body:   `{"items":["a","a"],"columns":2}`,
			status: http.StatusBadRequest,
			code:   errors.ErrCodeInvalidInput,
		},
		{
			name:   "malformed body",
			body:   `{"items":`,
			status: http.StatusBadRequest,
			code:   errors.ErrCodeInvalidInput,
		},
		{
			name:   "unknown preset",
			body:   `{"items":["a"],"width":300,"preset":"gallery"}`,
			status: http.StatusBadRequest,
			code:   errors.ErrCodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, ts, http.MethodPost, "/v1/layout", tt.body)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d\n%s", resp.StatusCode, tt.status, body)
			}
			if tt.code != "" {
				if got := errorCode(t, body); got != tt.code {
					t.Errorf("code = %q, want %q", got, tt.code)
				}
				return
			}
			if diff := cmp.Diff(tt.want, columnIDs(t, body)); diff != "" {
				t.Errorf("columns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWall(t *testing.T) {
	ts := newTestServer(t,
		source.Note{ID: "n1", Content: "first"},
		source.Note{ID: "n2", Content: "second"},
		source.Note{ID: "n3", Content: "third"},
		source.Note{ID: "n4", Content: "fourth"},
	)

	resp, body := do(t, ts, http.MethodGet, "/v1/wall?columns=3", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", resp.StatusCode, body)
	}
	want := [][]string{{"n1", "n4"}, {"n2"}, {"n3"}}
	if diff := cmp.Diff(want, columnIDs(t, body)); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	resp, body = do(t, ts, http.MethodGet, "/v1/wall?width=320", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", resp.StatusCode, body)
	}
	if got := columnIDs(t, body); len(got) != 1 {
		t.Errorf("width=320 gave %d columns, want 1", len(got))
	}

	for _, q := range []string{"columns=0", "columns=65", "columns=abc", "width=-1"} {
		resp, body = do(t, ts, http.MethodGet, "/v1/wall?"+q, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400\n%s", q, resp.StatusCode, body)
		}
	}
}

func TestBucket(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		query  string
		status int
		bucket int
	}{
		{"id=abc&n=6", http.StatusOK, 0},
		{"id=&n=6", http.StatusOK, 0},
		{"id=a&n=5", http.StatusOK, 2},
		{"id=abc&n=0", http.StatusBadRequest, 0},
		{"id=abc&n=-1", http.StatusBadRequest, 0},
		{"id=abc", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, body := do(t, ts, http.MethodGet, "/v1/bucket?"+tt.query, "")
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d\n%s", resp.StatusCode, tt.status, body)
			}
			if tt.status != http.StatusOK {
				return
			}
			var got struct {
				Bucket int `json:"bucket"`
			}
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Bucket != tt.bucket {
				t.Errorf("bucket = %d, want %d", got.Bucket, tt.bucket)
			}
		})
	}
}

func TestBreakpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := do(t, ts, http.MethodGet, "/v1/breakpoints/album?width=700", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", resp.StatusCode, body)
	}
	var tier layout.Tier
	if err := json.Unmarshal(body, &tier); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tier.Columns != 2 {
		t.Errorf("album@700 columns = %d, want 2", tier.Columns)
	}

	resp, body = do(t, ts, http.MethodGet, "/v1/breakpoints/notes", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", resp.StatusCode, body)
	}
	var bp layout.Breakpoints
	if err := json.Unmarshal(body, &bp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bp.Default.Columns != 3 {
		t.Errorf("notes default columns = %d, want 3", bp.Default.Columns)
	}

	resp, _ = do(t, ts, http.MethodGet, "/v1/breakpoints/nope", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown preset status = %d, want 404", resp.StatusCode)
	}
}

type recordingHooks struct {
	observability.NoopServerHooks
	routes []string
	status []int
}

func (h *recordingHooks) OnResponse(_ context.Context, _, route string, status int, _ time.Duration) {
	h.routes = append(h.routes, route)
	h.status = append(h.status, status)
}

func TestPhotoViewer(t *testing.T) {
	photos := []source.Photo{{ID: "p0", URL: "/p0.jpg"}, {ID: "p1", URL: "/p1.jpg"}, {ID: "p2", URL: "/p2.jpg"}}
	ts := newTestServer(t, source.Note{ID: "a", Photos: photos}, source.Note{ID: "b"})

	tests := []struct {
		path   string
		status int
		photo  string
		prev   int
		next   int
	}{
		{"/v1/notes/a/photos/0", http.StatusOK, "p0", 2, 1},
		{"/v1/notes/a/photos/2", http.StatusOK, "p2", 1, 0},
		{"/v1/notes/a/photos/3", http.StatusBadRequest, "", 0, 0},
		{"/v1/notes/a/photos/x", http.StatusBadRequest, "", 0, 0},
		{"/v1/notes/b/photos/0", http.StatusNotFound, "", 0, 0},
		{"/v1/notes/zz/photos/0", http.StatusNotFound, "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := do(t, ts, http.MethodGet, tt.path, "")
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d\n%s", resp.StatusCode, tt.status, body)
			}
			if tt.status != http.StatusOK {
				return
			}
			var got photoResponse
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Photo.ID != tt.photo || got.Prev != tt.prev || got.Next != tt.next {
				t.Errorf("photo = %s prev %d next %d, want %s prev %d next %d",
					got.Photo.ID, got.Prev, got.Next, tt.photo, tt.prev, tt.next)
			}
			if got.Count != 3 || len(got.Tiles.Tiles) != 3 {
				t.Errorf("count = %d, tiles = %d, want 3 and 3", got.Count, len(got.Tiles.Tiles))
			}
		})
	}
}

func TestRequestHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetServerHooks(hooks)
	t.Cleanup(observability.Reset)

	runner := pipeline.NewRunner(source.Static(nil), nil, nil, nil)
	h := New(runner, nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/breakpoints/album?width=10", nil))

	if diff := cmp.Diff([]string{"/v1/breakpoints/{preset}"}, hooks.routes); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{http.StatusOK}, hooks.status); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricsRoute(t *testing.T) {
	runner := pipeline.NewRunner(source.Static(nil), nil, nil, nil)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("notewall_layout_walls_total 1\n"))
	})

	h := New(runner, nil, WithMetrics(metrics)).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "walls_total") {
		t.Errorf("GET /metrics = %d %q", rec.Code, rec.Body.String())
	}

	h = New(runner, nil).Handler()
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /metrics without WithMetrics = %d, want 404", rec.Code)
	}
}
