package rangemin

/*

# Static range minimum queries

Given an immutable array A, a range minimum query RMQ(i, j) asks for the
position (and value) of the smallest element in the inclusive range [i, j],
reporting the leftmost position when the minimum value occurs more than once.

This package preprocesses the array once and then answers any query in O(1).
The array is never mutated after construction and no solver is mutated after
build, so a published index may be queried concurrently without further
synchronization.

# Layering

The final structure is a composition of simpler solvers, each useful on its
own and each exposed for the layer above (and for cross checking in tests):

 1. A dense table: the answer for every sub range of a window of length L,
    filled by the dynamic program rmq(i,j) = argmin(rmq(i,j-1), j). O(L^2)
    space, O(1) lookup. Only sensible for small windows.

 2. A sparse table: the answer for every range whose length is an exact power
    of two. Any range [i, j] is covered by the two (possibly overlapping)
    power of two windows anchored at its ends, so one table lookup per end
    answers any query. O(n log n) space, O(1) lookup. Finding the right power
    is a most significant bit computation, answered by a precomputed table.

 3. Block decomposition: the array is cut into blocks of a fixed size b and
    the per block minima form a macro array of n/b entries. A query touches
    at most a suffix of its start block, a prefix of its end block, and a run
    of whole blocks in between, which is a query over the macro array.

 4. The hybrid: the macro array is solved by a sparse table, and the in-block
    pieces by dense tables. The trick that keeps preprocessing linear is that
    blocks do not get private dense tables. The relative argmin positions of
    a block are fixed entirely by the shape of its Cartesian tree, so blocks
    with the same shape can share one table. With b <= 32 the shape is
    captured by a single uint64, the canonical number, and a table is built
    only once per distinct number.

# Cartesian trees and shape sharing

The Cartesian tree of a window is the min heap ordered binary tree whose in
order traversal reproduces the window. For

	A = [9, 3, 7, 1, 8, 12, 10, 20, 15, 18, 5]

the tree is

	          1
	        /   \
	       3      5
	      / \    /
	     9   7  8
	             \
	              10
	             /  \
	           12    15
	                /  \
	              20    18

RMQ(i, j) over the window is the lowest common ancestor of the nodes for i
and j, and the LCA of two in order positions depends only on the tree shape,
never on the stored values. Two windows with isomorphic trees therefore have
identical relative argmin positions for every sub range, which licenses the
table sharing above. The sharing block resolves the relative offset against
its own start position and its own values; nothing from the representative
block leaks into an answer.

The tree is built incrementally, left to right, by maintaining its right
spine on a stack. Appending each push and pop to an action log and encoding
the log as a bitstring yields the canonical number. A window of length L
emits exactly L pushes, so the popcount of the number recovers L and numbers
of different length windows can never collide.

# Choosing the block size

The number of distinct tree shapes for blocks of size b is bounded by 4^b,
so b near 0.25*log4(n) keeps the total dense table cost linear and the whole
preprocessing O(n). That constant is asymptotically right and practically
timid: the plain O(n log n) sparse table often wins on real inputs. The
block size is therefore a tunable, see NewIndexBlockSize; NewIndex applies
the theoretical default.

# Errors

All failures are contract violations. Construction over an empty array fails
with ErrEmptyInput, a malformed query fails with ErrRangeInvalid, and an
unusable block size with ErrBlockSizeInvalid. There is no transient failure
mode anywhere: every operation is pure, total for valid input, and bounded.

The low level helpers place a burden of knowledge on the caller in the
interests of efficiency and do not re-validate; only the public Query and
constructor surfaces check their arguments.

*/
