package rangemin

import "sync"

// msbSegmentBits is the width of one lookup segment. The table answers
// 16 bit inputs directly; wider inputs are resolved one segment at a time
// from the most significant end.
const msbSegmentBits = 16

// MSBTable resolves the index of the most significant set bit of a strictly
// positive integer in constant time. The sparse table layer uses it to find
// the largest power of two window fitting a query range.
type MSBTable struct {
	floorLog2 []uint8
}

// NewMSBTable builds the 2^16 entry table. The entry for n is floor(log2 n),
// filled by a single scan that steps up at each power of two boundary. The
// entry for zero is never consulted, see MSB.
func NewMSBTable() *MSBTable {
	t := &MSBTable{floorLog2: make([]uint8, 1<<msbSegmentBits)}
	log := uint8(0)
	for n := uint64(2); n < 1<<msbSegmentBits; n++ {
		if n >= 1<<(log+1) {
			log++
		}
		t.floorLog2[n] = log
	}
	return t
}

// sharedMSB returns the process wide table, built once on first use. The
// table is read only after construction so sharing it between indexes and
// goroutines is safe.
var sharedMSB = sync.OnceValue(NewMSBTable)

// MSB returns the zero based index of the most significant set bit of x.
//
// MSB(0) is undefined and panics. Query paths only ever derive x from a
// range length, which is at least 1, so the guard is structural rather than
// a reachable error condition.
func (t *MSBTable) MSB(x uint64) uint64 {
	if x == 0 {
		panic("rangemin: MSB of zero is undefined")
	}
	for shift := uint64(48); shift > 0; shift -= msbSegmentBits {
		if seg := x >> shift; seg != 0 {
			return uint64(t.floorLog2[seg]) + shift
		}
	}
	return uint64(t.floorLog2[x])
}
