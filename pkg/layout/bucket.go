package layout

import (
	"github.com/matzehuels/notewall/pkg/errors"
)

// Bucket maps id to an index in [0, bucketCount).
//
// The hash is the sum of the Unicode code points of id, taken modulo
// bucketCount. An empty id sums to zero and lands in bucket 0. Invalid UTF-8
// bytes count as U+FFFD, one per byte.
//
// A bucketCount below 1 fails with errors.ErrCodeInvalidArgument.
func Bucket(id string, bucketCount int) (int, error) {
	if err := checkCount("bucket count", bucketCount); err != nil {
		return 0, err
	}
	return int(codePointSum(id) % uint64(bucketCount)), nil
}

// codePointSum is the palette-independent part of Bucket.
func codePointSum(id string) uint64 {
	var sum uint64
	for _, r := range id {
		sum += uint64(r)
	}
	return sum
}

// Palette is an ordered, finite list of visual tokens (CSS classes, hex
// colours, rotation names). Order is significant: reordering a palette
// changes which token every id selects.
type Palette []string

// Default sticker palettes.
var (
	DefaultColors = Palette{
		"bg-rose-100",
		"bg-yellow-100",
		"bg-blue-100",
		"bg-green-100",
		"bg-purple-100",
		"bg-orange-100",
	}

	DefaultRotations = Palette{
		"rotate-1",
		"-rotate-1",
		"rotate-2",
		"-rotate-2",
		"rotate-0",
	}
)

// Pick returns the token of p selected by id.
// An empty palette fails with errors.ErrCodeInvalidArgument.
func (p Palette) Pick(id string) (string, error) {
	if len(p) == 0 {
		return "", errors.New(errors.ErrCodeInvalidArgument, "palette must not be empty")
	}
	return p[codePointSum(id)%uint64(len(p))], nil
}

// Validate reports an error if p has no tokens or contains an empty token.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "palette must not be empty")
	}
	for i, tok := range p {
		if tok == "" {
			return errors.New(errors.ErrCodeInvalidArgument, "palette token %d is empty", i)
		}
	}
	return nil
}
