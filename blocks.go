package rangemin

import "cmp"

// blockCount returns the number of blocks of size b covering n elements,
// ceil(n/b). The final block may be shorter than b.
func blockCount(n, b uint64) uint64 {
	return (n + b - 1) / b
}

// blockBounds returns the inclusive [lo, hi] index range of block k within
// an array of n elements cut into blocks of size b. The caller carries the
// burden of knowledge: k < blockCount(n, b) is assumed.
func blockBounds(n, b, k uint64) (uint64, uint64) {
	lo := k * b
	hi := lo + b - 1
	if hi >= n {
		hi = n - 1
	}
	return lo, hi
}

// scanMin returns the leftmost argmin of values[i..j] by linear scan. This
// is the O(n) brute force every solver is tested against, and the in-block
// workhorse of the plain block decomposition solver.
func scanMin[T cmp.Ordered](values []T, i, j uint64) uint64 {
	best := i
	for k := i + 1; k <= j; k++ {
		if values[k] < values[best] {
			best = k
		}
	}
	return best
}

// macroEntry records one block's minimum: the value and its absolute
// position in the underlying array.
type macroEntry[T cmp.Ordered] struct {
	value T
	index uint64
}

// buildMacro scans each block for its leftmost minimum and aggregates the
// results into the macro array, one entry per block in block order. O(n)
// across all blocks.
func buildMacro[T cmp.Ordered](values []T, b uint64) []macroEntry[T] {
	n := uint64(len(values))
	count := blockCount(n, b)
	macro := make([]macroEntry[T], 0, count)
	for k := uint64(0); k < count; k++ {
		lo, hi := blockBounds(n, b, k)
		at := scanMin(values, lo, hi)
		macro = append(macro, macroEntry[T]{value: values[at], index: at})
	}
	return macro
}

// BlockIndex answers range minimum queries by fixed size block
// decomposition alone: O(n) preprocessing, O(b + n/b) per query. A query
// touches at most a suffix of its start block, a prefix of its end block,
// and the macro entries for the whole blocks in between.
//
// On its own this is a stepping stone; Index replaces the per query scans
// with O(1) table lookups. It is kept public because it is a useful solver
// when preprocessing memory is tighter than query latency, and because the
// composite solvers are cross checked against it.
type BlockIndex[T cmp.Ordered] struct {
	values []T
	b      uint64
	macro  []macroEntry[T]
}

// NewBlockIndex partitions values into blocks of size b and records each
// block's minimum. Any b >= 1 is accepted; there is no Cartesian numbering
// here, so blocks larger than MaxBlockSize are fine.
func NewBlockIndex[T cmp.Ordered](values []T, b uint64) (*BlockIndex[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if b == 0 {
		return nil, ErrBlockSizeInvalid
	}
	return &BlockIndex[T]{values: values, b: b, macro: buildMacro(values, b)}, nil
}

// Num returns the number of indexed elements.
func (x *BlockIndex[T]) Num() uint64 {
	return uint64(len(x.values))
}

// BlockSize returns the block size the index was built with.
func (x *BlockIndex[T]) BlockSize() uint64 {
	return x.b
}

// Query returns the leftmost minimum of the inclusive range [i, j].
//
// The three candidate pieces are considered left to right with strict
// comparisons, so among equal minima the leftmost index always survives.
func (x *BlockIndex[T]) Query(i, j uint64) (Result[T], error) {
	n := x.Num()
	if err := checkRange(n, i, j); err != nil {
		return Result[T]{}, err
	}

	startBlock := i / x.b
	endBlock := j / x.b

	if startBlock == endBlock {
		at := scanMin(x.values, i, j)
		return Result[T]{Index: at, Value: x.values[at]}, nil
	}

	// suffix of the start block
	_, hi := blockBounds(n, x.b, startBlock)
	best := scanMin(x.values, i, hi)

	// whole blocks strictly between, via the macro array
	for k := startBlock + 1; k < endBlock; k++ {
		if x.macro[k].value < x.values[best] {
			best = x.macro[k].index
		}
	}

	// prefix of the end block
	lo, _ := blockBounds(n, x.b, endBlock)
	if at := scanMin(x.values, lo, j); x.values[at] < x.values[best] {
		best = at
	}

	return Result[T]{Index: best, Value: x.values[best]}, nil
}
