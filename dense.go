package rangemin

import "cmp"

// denseTable holds the argmin of every sub range of a window of length L,
// filled by the dynamic program
//
//	rmq(i, i) = i
//	rmq(i, j) = argmin(rmq(i, j-1), j)
//
// in O(L^2) time and space. Comparisons are strict less than, so ties keep
// the earlier index.
//
// Offsets are stored relative to the window start. That is what allows one
// table to serve every block with the same Cartesian tree shape: such blocks
// have identical relative argmin positions for every sub range even though
// their values differ, and the querying block resolves the offset against
// its own start position and its own values.
type denseTable struct {
	length uint64
	argmin []uint32 // row i, column j, entries with j >= i are meaningful
}

func newDenseTable[T cmp.Ordered](window []T) *denseTable {
	length := uint64(len(window))
	t := &denseTable{length: length, argmin: make([]uint32, length*length)}
	for i := uint64(0); i < length; i++ {
		best := i
		t.argmin[i*length+i] = uint32(i)
		for j := i + 1; j < length; j++ {
			if window[j] < window[best] {
				best = j
			}
			t.argmin[i*length+j] = uint32(best)
		}
	}
	return t
}

// rel returns the window relative argmin for [i, j]. The caller carries the
// burden of knowledge: i <= j < length is assumed, not checked.
func (t *denseTable) rel(i, j uint64) uint64 {
	return uint64(t.argmin[i*t.length+j])
}

// DenseIndex answers range minimum queries with O(n^2) preprocessing and
// O(1) lookups. The quadratic table makes it sensible only for small inputs;
// it exists as the correctness baseline the composite solvers are checked
// against, as the fallback for arrays too small to decompose, and as the per
// shape block solver inside Index.
type DenseIndex[T cmp.Ordered] struct {
	values []T
	table  *denseTable
}

// NewDenseIndex builds the full quadratic table over values. The slice is
// borrowed, not copied, and must not be mutated afterwards.
func NewDenseIndex[T cmp.Ordered](values []T) (*DenseIndex[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	return &DenseIndex[T]{values: values, table: newDenseTable(values)}, nil
}

// Num returns the number of indexed elements.
func (d *DenseIndex[T]) Num() uint64 {
	return uint64(len(d.values))
}

// Query returns the leftmost minimum of the inclusive range [i, j].
func (d *DenseIndex[T]) Query(i, j uint64) (Result[T], error) {
	if err := checkRange(d.Num(), i, j); err != nil {
		return Result[T]{}, err
	}
	at := d.table.rel(i, j)
	return Result[T]{Index: at, Value: d.values[at]}, nil
}
