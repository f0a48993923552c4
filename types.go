package rangemin

import (
	"cmp"
	"errors"
	"fmt"
)

// MaxBlockSize bounds the block length so that the push/pop action log of a
// block's Cartesian tree, at most two bits per element, fits the single
// uint64 canonical number.
const MaxBlockSize = 32

var (
	ErrEmptyInput       = errors.New("rangemin: input array is empty")
	ErrRangeInvalid     = errors.New("rangemin: invalid query range")
	ErrBlockSizeInvalid = errors.New("rangemin: block size out of range")
)

// Result identifies a minimum element: its position in the original array
// and the value found there. When several positions hold the minimal value
// the leftmost one is reported.
type Result[T cmp.Ordered] struct {
	Index uint64
	Value T
}

// checkRange validates the inclusive query range [i, j] against an array of
// n elements. Only the public Query surfaces call this; internal helpers
// assume validated input.
func checkRange(n, i, j uint64) error {
	if i > j || j >= n {
		return fmt.Errorf("%w: [%d, %d] over %d elements", ErrRangeInvalid, i, j, n)
	}
	return nil
}
