package rangemin

import "cmp"

// Index is the hybrid range minimum index: O(n) preprocessing, O(1) per
// query. It composes the other solvers in this package:
//
//	values:  [.. block 0 ..][.. block 1 ..] ... [.. last, maybe short ..]
//	            |               |                    |
//	            v  leftmost minimum per block        v
//	macro:   [ (value, abs index) per block ] --> SparseIndex, O(1) between
//	blocks:  Cartesian number per block --> one shared denseTable per shape
//
// A query inside one block is a single dense table lookup. A query spanning
// blocks combines the suffix of its start block, the prefix of its end
// block (both dense table lookups) and the macro sparse table over the
// whole blocks in between.
//
// The shared dense tables are interned by canonical number and must never
// be copied per block: they are immutable and hold window relative offsets
// only, so any block with the same shape resolves answers against its own
// values. All state is read only once the constructor returns, so a
// published Index may be queried concurrently.
type Index[T cmp.Ordered] struct {
	values []T
	b      uint64

	// whole is the fallback for arrays no longer than one block: a single
	// dense table over everything, with no macro structure at all.
	whole *denseTable

	macro       []macroEntry[T]
	macroSparse *SparseIndex[T]

	// shapes interns one dense table per distinct Cartesian number;
	// blockTables maps each block to its (shared) table.
	shapes      map[uint64]*denseTable
	blockTables []*denseTable
}

// defaultBlockSize is the theoretical tuning 0.25*log4(n), which is
// log2(n)/8, floored and clamped to at least one element. It keeps the
// distinct shape count (at most 4^b) small enough that building every
// distinct dense table stays O(n) in total. See the package notes on why a
// larger hand picked size is often faster in practice.
func defaultBlockSize(n uint64) uint64 {
	b := sharedMSB().MSB(n) / 8
	if b == 0 {
		return 1
	}
	return b
}

// NewIndex builds the index over values with the theoretical default block
// size. The slice is borrowed, not copied, and must not be mutated for the
// lifetime of the index.
func NewIndex[T cmp.Ordered](values []T) (*Index[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	return NewIndexBlockSize(values, defaultBlockSize(uint64(len(values))))
}

// NewIndexBlockSize builds the index over values with an explicit block
// size b, 1 <= b <= MaxBlockSize. The upper bound is what lets a block's
// Cartesian action log fit the uint64 canonical number.
func NewIndexBlockSize[T cmp.Ordered](values []T, b uint64) (*Index[T], error) {
	n := uint64(len(values))
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if b == 0 || b > MaxBlockSize {
		return nil, ErrBlockSizeInvalid
	}

	x := &Index[T]{values: values, b: b}
	if n <= b {
		x.whole = newDenseTable(values)
		return x, nil
	}

	x.macro = buildMacro(values, b)
	macroValues := make([]T, len(x.macro))
	for k := range x.macro {
		macroValues[k] = x.macro[k].value
	}
	macroSparse, err := NewSparseIndex(macroValues)
	if err != nil {
		return nil, err
	}
	x.macroSparse = macroSparse

	x.shapes = make(map[uint64]*denseTable)
	x.blockTables = make([]*denseTable, len(x.macro))
	for k := range x.blockTables {
		lo, hi := blockBounds(n, b, uint64(k))
		window := values[lo : hi+1]
		number, err := CartesianNumber(window)
		if err != nil {
			return nil, err
		}
		table, ok := x.shapes[number]
		if !ok {
			table = newDenseTable(window)
			x.shapes[number] = table
		}
		x.blockTables[k] = table
	}
	return x, nil
}

// Num returns the number of indexed elements.
func (x *Index[T]) Num() uint64 {
	return uint64(len(x.values))
}

// BlockSize returns the block size the index was built with.
func (x *Index[T]) BlockSize() uint64 {
	return x.b
}

// DistinctShapes returns how many dense tables were actually built, which
// is the number of distinct Cartesian numbers across the blocks (one, for
// the tiny array fallback). Observability into the interning layer; blocks
// minus DistinctShapes tables were shared rather than rebuilt.
func (x *Index[T]) DistinctShapes() int {
	if x.whole != nil {
		return 1
	}
	return len(x.shapes)
}

// blockQuery answers [i, j] known to lie entirely inside block k, through
// the block's shared dense table. The table offset is relative to the block
// start; the absolute answer is recomputed against this block's own start
// and values, which is what keeps sharing sound across isomorphic blocks.
func (x *Index[T]) blockQuery(k, i, j uint64) Result[T] {
	lo, _ := blockBounds(x.Num(), x.b, k)
	at := lo + x.blockTables[k].rel(i-lo, j-lo)
	return Result[T]{Index: at, Value: x.values[at]}
}

// Query returns the leftmost minimum of the inclusive range [i, j] in O(1):
// one MSB lookup, at most two dense table lookups and one sparse table
// combine. The candidate pieces are considered left to right with strict
// comparisons, so among equal minima the leftmost index always survives.
func (x *Index[T]) Query(i, j uint64) (Result[T], error) {
	n := x.Num()
	if err := checkRange(n, i, j); err != nil {
		return Result[T]{}, err
	}

	if x.whole != nil {
		at := x.whole.rel(i, j)
		return Result[T]{Index: at, Value: x.values[at]}, nil
	}

	startBlock := i / x.b
	endBlock := j / x.b

	if startBlock == endBlock {
		return x.blockQuery(startBlock, i, j), nil
	}

	// suffix of the start block
	_, hi := blockBounds(n, x.b, startBlock)
	best := x.blockQuery(startBlock, i, hi)

	// whole blocks strictly between, via the macro sparse table
	if startBlock+1 <= endBlock-1 {
		m := x.macroSparse.argmin(startBlock+1, endBlock-1)
		if x.macro[m].value < best.Value {
			best = Result[T]{Index: x.macro[m].index, Value: x.macro[m].value}
		}
	}

	// prefix of the end block
	lo, _ := blockBounds(n, x.b, endBlock)
	if r := x.blockQuery(endBlock, lo, j); r.Value < best.Value {
		best = r
	}

	return best, nil
}
