// Package source supplies the ordered notes a wall is built from.
//
// A [Source] returns notes newest first, the order the wall deals them in.
// Two implementations exist: [FileSource] reads a JSON export and
// [MongoSource] queries a collection. Both reject records without an id and
// records whose id repeats, since a wall places each note exactly once.
package source

import (
	"context"
	"time"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/gallery"
)

// Photo is an image attached to a note or post.
type Photo struct {
	ID  string `json:"id" bson:"id"`
	URL string `json:"url" bson:"url"`
}

// Note is a love note or post as stored by the backend.
type Note struct {
	ID        string    `json:"id" bson:"_id"`
	Content   string    `json:"content,omitempty" bson:"content,omitempty"`
	Author    string    `json:"author,omitempty" bson:"author,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero" bson:"created_at,omitempty"`
	Photos    []Photo   `json:"photos,omitempty" bson:"photos,omitempty"`
}

// ItemID implements layout.Item.
func (n Note) ItemID() string { return n.ID }

// Source supplies notes in display order.
type Source interface {
	Notes(ctx context.Context) ([]Note, error)
	Close() error
}

// Validate checks that every note has a non-empty, unique id and at most
// gallery.MaxPhotos photos.
func Validate(notes []Note) error {
	seen := make(map[string]int, len(notes))
	for i, n := range notes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "note %d has no id", i)
		}
		if j, dup := seen[n.ID]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "note id %q repeats at positions %d and %d", n.ID, j, i)
		}
		seen[n.ID] = i
		if len(n.Photos) > 0 {
			if err := gallery.ValidatePhotoCount(len(n.Photos)); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "note %q", n.ID)
			}
		}
	}
	return nil
}

// Find returns the note with the given id.
func Find(notes []Note, id string) (Note, bool) {
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// IDs returns the note ids in order.
func IDs(notes []Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}

// Static is an in-memory Source.
type Static []Note

// Notes implements Source.
func (s Static) Notes(ctx context.Context) ([]Note, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	out := make([]Note, len(s))
	copy(out, s)
	return out, nil
}

// Close implements Source.
func (Static) Close() error { return nil }
