package rangemin

import "cmp"

// SparseIndex answers range minimum queries with O(n log n) preprocessing
// and O(1) lookups.
//
// rows[k][i] holds the argmin of the window of length 1<<k starting at i.
// Row zero is the identity and each following row combines two adjacent
// windows from the row below (doubling). A query range [i, j] is covered by
// the two windows of length 1<<MSB(j-i+1) anchored at i and at j, which may
// overlap; overlap is harmless for minima and the left window wins ties.
type SparseIndex[T cmp.Ordered] struct {
	values []T
	rows   [][]uint64
	msb    *MSBTable
}

// NewSparseIndex builds the doubling table over values. The slice is
// borrowed, not copied, and must not be mutated afterwards.
func NewSparseIndex[T cmp.Ordered](values []T) (*SparseIndex[T], error) {
	n := uint64(len(values))
	if n == 0 {
		return nil, ErrEmptyInput
	}
	s := &SparseIndex[T]{values: values, msb: sharedMSB()}

	row := make([]uint64, n)
	for i := range row {
		row[i] = uint64(i)
	}
	s.rows = append(s.rows, row)

	for width := uint64(2); width <= n; width <<= 1 {
		prev := s.rows[len(s.rows)-1]
		half := width >> 1
		row := make([]uint64, n-width+1)
		for i := range row {
			left := prev[i]
			right := prev[uint64(i)+half]
			if values[right] < values[left] {
				row[i] = right
			} else {
				row[i] = left
			}
		}
		s.rows = append(s.rows, row)
	}
	return s, nil
}

// argmin combines the two precomputed power of two windows covering [i, j].
// The caller carries the burden of knowledge: i <= j < n is assumed.
//
// If the strictly smaller minimum sits in the trailing window it cannot also
// occur in the leading one, and within each window the stored argmin is
// already leftmost, so the leftmost tie break holds globally.
func (s *SparseIndex[T]) argmin(i, j uint64) uint64 {
	k := s.msb.MSB(j - i + 1)
	left := s.rows[k][i]
	right := s.rows[k][j-(1<<k)+1]
	if s.values[right] < s.values[left] {
		return right
	}
	return left
}

// Num returns the number of indexed elements.
func (s *SparseIndex[T]) Num() uint64 {
	return uint64(len(s.values))
}

// Query returns the leftmost minimum of the inclusive range [i, j].
func (s *SparseIndex[T]) Query(i, j uint64) (Result[T], error) {
	if err := checkRange(s.Num(), i, j); err != nil {
		return Result[T]{}, err
	}
	at := s.argmin(i, j)
	return Result[T]{Index: at, Value: s.values[at]}, nil
}
