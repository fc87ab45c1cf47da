package source

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/notewall/pkg/errors"
)

// FileSource reads notes from a JSON array on disk. The file is re-read on
// every call so edits show up on the next refresh.
type FileSource struct {
	Path string
}

// NewFileSource returns a source backed by path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Notes implements Source. Notes keep their order in the file.
func (s *FileSource) Notes(ctx context.Context) ([]Note, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", s.Path)
		}
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "open %s", s.Path)
	}
	defer f.Close()
	return ReadNotes(f)
}

// Close implements Source.
func (s *FileSource) Close() error { return nil }

// ReadNotes decodes a JSON array of notes and validates it.
// Bare strings are accepted as notes with only an id.
func ReadNotes(r io.Reader) ([]Note, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode notes")
	}

	notes := make([]Note, len(raw))
	for i, msg := range raw {
		var id string
		if json.Unmarshal(msg, &id) == nil {
			notes[i] = Note{ID: id}
			continue
		}
		if err := json.Unmarshal(msg, &notes[i]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode note %d", i)
		}
	}
	if err := Validate(notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// WriteNotes encodes notes as an indented JSON array.
func WriteNotes(w io.Writer, notes []Note) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(notes)
}
