package rangemin

import (
	"cmp"
	"fmt"
	"strings"
)

// nodeRef addresses a node in a CartesianTree arena. Nodes live in one flat
// slice and refer to each other by index rather than pointer; the distinct
// type keeps a handle from being misapplied to any other collection.
type nodeRef int32

// noRef marks an absent child or an empty tree.
const noRef = nodeRef(-1)

type ctNode struct {
	left  nodeRef
	right nodeRef
}

// CartesianTree is the min heap ordered binary tree of a window: every
// parent holds a value no greater than its children and the in order
// traversal reproduces the window's original order. Node i of the arena
// corresponds to window position i, so a nodeRef doubles as a window offset.
//
// The tree records shape only, never values. RMQ over the window is the
// lowest common ancestor of the endpoints' nodes, and an LCA of in order
// positions is fixed by shape alone, which is why two windows with
// isomorphic trees share their relative argmin positions for every sub
// range. The canonical Number is how that isomorphism is detected.
type CartesianTree struct {
	nodes  []ctNode
	root   nodeRef
	number uint64
}

// NewCartesianTree builds the tree for window incrementally, left to right,
// keeping the right spine on a stack. Inserting x pops the spine while the
// top's value is strictly greater than x; the last node popped, if any,
// becomes x's left child, x becomes the right child of the remaining top,
// if any, and x is pushed. Strict comparison sends equal values to the
// right, which makes the shape, and hence the number, deterministic.
//
// Every push and pop is appended to an action log as it happens; Number is
// that log read as a bitstring. The log has at most two bits per element,
// so the window length must not exceed MaxBlockSize.
func NewCartesianTree[T cmp.Ordered](window []T) (*CartesianTree, error) {
	length := len(window)
	if length == 0 {
		return nil, ErrEmptyInput
	}
	if length > MaxBlockSize {
		return nil, fmt.Errorf("%w: window of %d exceeds %d", ErrBlockSizeInvalid, length, MaxBlockSize)
	}

	t := &CartesianTree{nodes: make([]ctNode, 0, length), root: noRef}
	spine := make([]nodeRef, 0, length)
	for at, x := range window {
		node := nodeRef(at)
		t.nodes = append(t.nodes, ctNode{left: noRef, right: noRef})

		popped := noRef
		for len(spine) > 0 && window[spine[len(spine)-1]] > x {
			popped = spine[len(spine)-1]
			spine = spine[:len(spine)-1]
			t.number <<= 1 // pop = 0
		}
		t.nodes[node].left = popped
		if len(spine) > 0 {
			t.nodes[spine[len(spine)-1]].right = node
		} else {
			t.root = node
		}
		spine = append(spine, node)
		t.number = t.number<<1 | 1 // push = 1
	}
	return t, nil
}

// Number returns the canonical shape number: the push/pop action log of the
// construction, pushes as 1 bits and pops as 0 bits, most recent action in
// the least significant position. Two windows have equal numbers exactly
// when their trees are isomorphic.
//
// A window of length L emits exactly L pushes, so the popcount of a number
// recovers L and numbers of different length windows never collide. The
// first action is always a push, so no log is lost to leading zeros.
func (t *CartesianTree) Number() uint64 {
	return t.number
}

// Len returns the number of nodes, which is the window length.
func (t *CartesianTree) Len() uint64 {
	return uint64(len(t.nodes))
}

// InOrder returns the window offsets in an in order traversal. For a well
// formed tree this is 0..Len()-1, which is how tests verify construction.
func (t *CartesianTree) InOrder() []uint64 {
	out := make([]uint64, 0, len(t.nodes))
	stack := make([]nodeRef, 0, len(t.nodes))
	at := t.root
	for at != noRef || len(stack) > 0 {
		for at != noRef {
			stack = append(stack, at)
			at = t.nodes[at].left
		}
		at = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, uint64(at))
		at = t.nodes[at].right
	}
	return out
}

// String renders the tree as a nested (left root right) expression, a debug
// aid for test failures.
func (t *CartesianTree) String() string {
	var sb strings.Builder
	t.render(&sb, t.root)
	return sb.String()
}

func (t *CartesianTree) render(sb *strings.Builder, at nodeRef) {
	if at == noRef {
		sb.WriteByte('.')
		return
	}
	n := t.nodes[at]
	if n.left == noRef && n.right == noRef {
		fmt.Fprintf(sb, "%d", at)
		return
	}
	sb.WriteByte('(')
	t.render(sb, n.left)
	fmt.Fprintf(sb, " %d ", at)
	t.render(sb, n.right)
	sb.WriteByte(')')
}

// CartesianNumber computes the canonical shape number of window without
// materializing the node arena. It runs the same right spine stack as
// NewCartesianTree and emits the same action log, it just never records
// children. This is the path the index builder uses per block; the full
// tree is kept for verification and diagnostics.
func CartesianNumber[T cmp.Ordered](window []T) (uint64, error) {
	length := len(window)
	if length == 0 {
		return 0, ErrEmptyInput
	}
	if length > MaxBlockSize {
		return 0, fmt.Errorf("%w: window of %d exceeds %d", ErrBlockSizeInvalid, length, MaxBlockSize)
	}

	var number uint64
	spine := make([]T, 0, length)
	for _, x := range window {
		for len(spine) > 0 && spine[len(spine)-1] > x {
			spine = spine[:len(spine)-1]
			number <<= 1 // pop = 0
		}
		spine = append(spine, x)
		number = number<<1 | 1 // push = 1
	}
	return number, nil
}
