package gallery

import (
	"unicode/utf8"

	"github.com/matzehuels/notewall/pkg/errors"
)

// Viewer tracks the photo shown fullscreen for one post.
type Viewer struct {
	Index int
	Count int
}

// NewViewer opens the viewer on photo index of a post with count photos.
func NewViewer(index, count int) (*Viewer, error) {
	if count < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "photo count must be >= 1, got %d", count)
	}
	if index < 0 || index >= count {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "photo index %d out of range [0, %d)", index, count)
	}
	return &Viewer{Index: index, Count: count}, nil
}

// Next advances to the following photo, wrapping to the first.
func (v *Viewer) Next() int {
	v.Index = (v.Index + 1) % v.Count
	return v.Index
}

// Prev steps back to the preceding photo, wrapping to the last.
func (v *Viewer) Prev() int {
	v.Index = (v.Index - 1 + v.Count) % v.Count
	return v.Index
}

// DefaultExcerpt is the number of characters shown before "read more".
const DefaultExcerpt = 150

// Excerpt shortens text to limit runes followed by "...".
// It reports whether anything was cut.
func Excerpt(text string, limit int) (string, bool) {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(text) <= limit {
		return text, false
	}
	var n, cut int
	for i := range text {
		if n == limit {
			cut = i
			break
		}
		n++
	}
	return text[:cut] + "...", true
}
