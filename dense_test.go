package rangemin

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDenseIndexKnownRanges(t *testing.T) {
	values := []int{3, 1, 4, 1, 5, 9, 2, 6}
	d, err := NewDenseIndex(values)
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
		{"whole array, leftmost of the two ones", args{0, 7}, Result[int]{1, 1}},
		{"single element", args{4, 4}, Result[int]{4, 5}},
		{"prefix", args{0, 2}, Result[int]{1, 1}},
		{"suffix", args{4, 7}, Result[int]{6, 2}},
		{"interior spanning both ones", args{1, 3}, Result[int]{1, 1}},
		{"right of both ones", args{4, 5}, Result[int]{4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Query(tt.args.i, tt.args.j)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Query(%d, %d) = %v, want %v", tt.args.i, tt.args.j, got, tt.want)
			}
		})
	}
}

func TestDenseIndexTieBreak(t *testing.T) {
	values := []int{5, 5, 5}
	d, err := NewDenseIndex(values)
	if err != nil {
		t.Fatal(err)
	}
	for i := uint64(0); i < 3; i++ {
		for j := i; j < 3; j++ {
			got, err := d.Query(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if got.Index != i || got.Value != 5 {
				t.Errorf("Query(%d, %d) = %v, want leftmost (%d, 5)", i, j, got, i)
			}
		}
	}
}

func TestDenseIndexEmptyInput(t *testing.T) {
	if _, err := NewDenseIndex([]int{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("NewDenseIndex over nothing = %v, want ErrEmptyInput", err)
	}
}

func TestDenseIndexInvalidRange(t *testing.T) {
	d, err := NewDenseIndex([]int{7, 3})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range [][2]uint64{{1, 0}, {0, 2}, {2, 2}, {5, 9}} {
		if _, err := d.Query(r[0], r[1]); !errors.Is(err, ErrRangeInvalid) {
			t.Errorf("Query(%d, %d) = %v, want ErrRangeInvalid", r[0], r[1], err)
		}
	}
}

func TestDenseIndexMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _n := 0; _n < 50; _n++ {
		n := 1 + rng.Intn(40)
		values := make([]int, n)
		for i := range values {
			values[i] = rng.Intn(10) // small alphabet to force ties
		}
		d, err := NewDenseIndex(values)
		if err != nil {
			t.Fatal(err)
		}
		for i := uint64(0); i < uint64(n); i++ {
			for j := i; j < uint64(n); j++ {
				want := scanMin(values, i, j)
				got, err := d.Query(i, j)
				if err != nil {
					t.Fatal(err)
				}
				if got.Index != want || got.Value != values[want] {
					t.Fatalf("values=%v Query(%d, %d) = %v, want (%d, %d)",
						values, i, j, got, want, values[want])
				}
			}
		}
	}
}
