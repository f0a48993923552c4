package rangemin

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSparseIndexKnownRanges(t *testing.T) {
	//  index: 0  1  2  3  4  5  6  7  8
	values := []int{9, 3, 7, 1, 8, 12, 10, 20, 15}
	s, err := NewSparseIndex(values)
	if err != nil {
		t.Fatal(err)
	}
	type args struct {
		i, j uint64
	}
	tests := []struct {
		name string
		args args
		want Result[int]
	}{
		{"whole array", args{0, 8}, Result[int]{3, 1}},
		{"power of two length", args{4, 7}, Result[int]{4, 8}},
		{"length one", args{5, 5}, Result[int]{5, 12}},
		{"length two", args{0, 1}, Result[int]{1, 3}},
		{"overlapping windows cover odd length", args{2, 6}, Result[int]{3, 1}},
		{"suffix", args{4, 8}, Result[int]{4, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Query(tt.args.i, tt.args.j)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Query(%d, %d) = %v, want %v", tt.args.i, tt.args.j, got, tt.want)
			}
		})
	}
}

// The two power of two windows of a query overlap whenever the length is not
// itself a power of two. A repeated minimum falling inside the overlap must
// still resolve to its leftmost occurrence.
func TestSparseIndexTieBreakInOverlap(t *testing.T) {
	values := []int{4, 2, 2, 2, 4}
	s, err := NewSparseIndex(values)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Query(0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got.Index != 1 || got.Value != 2 {
		t.Fatalf("Query(0, 4) = %v, want (1, 2)", got)
	}
}

func TestSparseIndexAllEqual(t *testing.T) {
	values := []int{5, 5, 5, 5, 5, 5, 5}
	s, err := NewSparseIndex(values)
	if err != nil {
		t.Fatal(err)
	}
	for i := uint64(0); i < uint64(len(values)); i++ {
		for j := i; j < uint64(len(values)); j++ {
			got, err := s.Query(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if got.Index != i {
				t.Fatalf("Query(%d, %d) = %v, want leftmost %d", i, j, got, i)
			}
		}
	}
}

func TestSparseIndexErrors(t *testing.T) {
	if _, err := NewSparseIndex([]int{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("NewSparseIndex over nothing = %v, want ErrEmptyInput", err)
	}
	s, err := NewSparseIndex([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Query(2, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Fatalf("Query(2, 1) = %v, want ErrRangeInvalid", err)
	}
	if _, err := s.Query(0, 3); !errors.Is(err, ErrRangeInvalid) {
		t.Fatalf("Query(0, 3) = %v, want ErrRangeInvalid", err)
	}
}

func TestSparseIndexMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _n := 0; _n < 30; _n++ {
		n := 1 + rng.Intn(200)
		values := make([]int, n)
		for i := range values {
			values[i] = rng.Intn(20)
		}
		s, err := NewSparseIndex(values)
		if err != nil {
			t.Fatal(err)
		}
		for _n := 0; _n < 500; _n++ {
			i := uint64(rng.Intn(n))
			j := i + uint64(rng.Intn(n-int(i)))
			want := scanMin(values, i, j)
			got, err := s.Query(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if got.Index != want {
				t.Fatalf("n=%d Query(%d, %d) = %v, want index %d", n, i, j, got, want)
			}
		}
	}
}
