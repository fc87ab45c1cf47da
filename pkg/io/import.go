package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/pipeline"
)

// ReadJSON decodes a wall from r and checks that it is consistent.
//
// ReadJSON returns an INVALID_INPUT error if:
//   - The JSON is malformed
//   - The number of columns differs from the recorded column count
//   - A column or placement carries coordinates that differ from its position
//   - A note id is empty or appears more than once
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*pipeline.Result, error) {
	var res pipeline.Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode wall")
	}
	if err := check(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ImportJSON reads the wall file at path.
func ImportJSON(path string) (*pipeline.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "wall %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open wall %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

func check(res *pipeline.Result) error {
	if res.Columns < 1 || len(res.Wall.Columns) != res.Columns {
		return errors.New(errors.ErrCodeInvalidInput, "wall has %d columns, header says %d", len(res.Wall.Columns), res.Columns)
	}

	seen := make(map[string]bool, res.Wall.Len())
	for ci, col := range res.Wall.Columns {
		if col.Index != ci {
			return errors.New(errors.ErrCodeInvalidInput, "column %d has index %d", ci, col.Index)
		}
		for ri, p := range col.Placements {
			if p.Column != ci || p.Row != ri {
				return errors.New(errors.ErrCodeInvalidInput, "placement at column %d row %d claims (%d, %d)", ci, ri, p.Column, p.Row)
			}
			id := p.Item.ID
			if id == "" {
				return errors.New(errors.ErrCodeInvalidInput, "placement at column %d row %d has no id", ci, ri)
			}
			if seen[id] {
				return errors.New(errors.ErrCodeInvalidInput, "note id %q is placed twice", id)
			}
			seen[id] = true
		}
	}
	return nil
}
