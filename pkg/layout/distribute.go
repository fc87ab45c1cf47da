package layout

import (
	"github.com/matzehuels/notewall/pkg/errors"
)

// Column is one of the ordered buckets that partition an item sequence.
type Column[T any] struct {
	Index int `json:"index"`
	Items []T `json:"items"`
}

// Len returns the number of items in the column.
func (c Column[T]) Len() int { return len(c.Items) }

// Distribute deals items into columnCount columns round-robin: the item at
// input position i is appended to column i mod columnCount.
//
// The result always has exactly columnCount columns, each with a non-nil
// (possibly empty) item slice, and preserves input order within every
// column. Item sizes are not considered.
//
// A columnCount below 1 fails with errors.ErrCodeInvalidArgument before any
// work is done.
func Distribute[T any](items []T, columnCount int) ([]Column[T], error) {
	if err := checkCount("column count", columnCount); err != nil {
		return nil, err
	}

	columns := make([]Column[T], columnCount)
	perColumn := (len(items) + columnCount - 1) / columnCount
	for i := range columns {
		columns[i] = Column[T]{Index: i, Items: make([]T, 0, perColumn)}
	}

	for i, item := range items {
		c := i % columnCount
		columns[c].Items = append(columns[c].Items, item)
	}
	return columns, nil
}

func checkCount(what string, n int) error {
	if n < 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "%s must be >= 1, got %d", what, n)
	}
	return nil
}
