package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/gallery"
	"github.com/matzehuels/notewall/pkg/httputil"
	"github.com/matzehuels/notewall/pkg/layout"
	"github.com/matzehuels/notewall/pkg/pipeline"
	"github.com/matzehuels/notewall/pkg/source"
)

const maxBodyBytes = 4 << 20

// layoutRequest is the body of POST /v1/layout. Items are note objects or
// bare id strings.
type layoutRequest struct {
	Items   json.RawMessage `json:"items"`
	Columns *int            `json:"columns"`
	Width   int             `json:"width"`
	Preset  string          `json:"preset"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		httputil.BadRequest(w, "decode request: %v", err)
		return
	}

	var notes []source.Note
	if len(req.Items) > 0 {
		var err error
		if notes, err = source.ReadNotes(bytes.NewReader(req.Items)); err != nil {
			httputil.WriteError(w, err)
			return
		}
	}

	opts := pipeline.Options{Width: req.Width, Preset: req.Preset}
	if req.Columns != nil {
		var err error
		if opts, err = opts.WithColumns(*req.Columns); err != nil {
			httputil.WriteError(w, err)
			return
		}
	}

	res, err := s.runner.Layout(r.Context(), notes, opts)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) handleWall(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := pipeline.Options{Preset: q.Get("preset"), Refresh: q.Has("refresh")}

	if q.Has("columns") {
		n, err := intParam(q.Get("columns"), "columns")
		if err == nil {
			opts, err = opts.WithColumns(n)
		}
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
	}
	if q.Has("width") {
		n, err := intParam(q.Get("width"), "width")
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		opts.Width = n
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) handleBucket(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("n") {
		httputil.BadRequest(w, "missing query parameter n")
		return
	}
	n, err := intParam(q.Get("n"), "n")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	id := q.Get("id")
	b, err := layout.Bucket(id, n)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "n": n, "bucket": b})
}

func (s *Server) handleBreakpoints(w http.ResponseWriter, r *http.Request) {
	bp, err := s.runner.Theme.Preset(chi.URLParam(r, "preset"))
	if err != nil {
		httputil.NotFound(w, "%s", errors.UserMessage(err))
		return
	}

	raw := r.URL.Query().Get("width")
	if raw == "" {
		httputil.WriteJSON(w, http.StatusOK, bp)
		return
	}
	width, err := intParam(raw, "width")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	tier, err := bp.Resolve(width)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tier)
}

// photoResponse is one step of the fullscreen viewer.
type photoResponse struct {
	Note  string       `json:"note"`
	Index int          `json:"index"`
	Count int          `json:"count"`
	Photo source.Photo `json:"photo"`
	Prev  int          `json:"prev"`
	Next  int          `json:"next"`
	Tiles gallery.Plan `json:"tiles"`
}

func (s *Server) handlePhoto(w http.ResponseWriter, r *http.Request) {
	index, err := intParam(chi.URLParam(r, "index"), "index")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	notes, err := s.runner.Fetch(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	note, ok := source.Find(notes, id)
	if !ok {
		httputil.NotFound(w, "note %q not found", id)
		return
	}
	if len(note.Photos) == 0 {
		httputil.NotFound(w, "note %q has no photos", id)
		return
	}

	v, err := gallery.NewViewer(index, len(note.Photos))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	prev, next := *v, *v
	httputil.WriteJSON(w, http.StatusOK, photoResponse{
		Note:  note.ID,
		Index: v.Index,
		Count: v.Count,
		Photo: note.Photos[v.Index],
		Prev:  prev.Prev(),
		Next:  next.Next(),
		Tiles: gallery.Tiles(v.Count),
	})
}

func intParam(raw, name string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be an integer, got %q", name, raw)
	}
	return n, nil
}
