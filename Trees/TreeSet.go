package Trees

import (
	"cmp"
	"errors"
	"iter"

	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/go-treeset/Sets"
)

var (
	// ErrNoCurrent is returned by an iterator's Remove when there is no element to remove.
	ErrNoCurrent = errors.New("Trees: no current element")
	// ErrNotIntegral is returned by SumOfMaxBranch for trees over non-integer types.
	ErrNotIntegral = errors.New("Trees: element type is not integral")
)

// Comparator defines a strict total order: negative if a<b, 0 if a==b, positive if a>b.
// It must return 0 exactly when a==b, because Remove locates nodes with ==.
type Comparator[T any] func(a, b T) int

// FromGods adapts a gods comparator such as utils.IntComparator.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}

// TreeSet is an unbalanced binary search tree with no repeated values.
// Values less than a node go to its left subtree, the others to its right.
// There is no rebalancing, so D, the height of the tree, is O(n) in the worst
// case, e.g. when values are added in sorted order.
// Each node keeps a pointer to its parent, which lets iteration and
// successor lookups run without a stack.
// A TreeSet isn't safe for concurrent use.
type TreeSet[T comparable] struct {
	root *node[T]
	c    Comparator[T]
	sz   uint
}

// New TreeSet ordered by the natural order of T.
func New[T cmp.Ordered]() *TreeSet[T] {
	return NewWith[T](cmp.Compare[T])
}

// NewWith returns an empty TreeSet ordered by c. c mustn't be nil.
func NewWith[T comparable](c Comparator[T]) *TreeSet[T] {
	if c == nil {
		panic("Trees: nil Comparator")
	}
	return &TreeSet[T]{c: c}
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) Size() uint {
	return u.sz
}

// Clear removes all the values.
func (u *TreeSet[T]) Clear() {
	u.root, u.sz = nil, 0
}

// locate descends from the root comparing v against each node. It returns the node
// comparing equal to v with c==0, or the last node visited with c being the result of
// the last comparison. Returns (nil, 0) for an empty tree.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) locate(v T) (n *node[T], c int) {
	for cur := u.root; cur != nil; {
		n = cur
		if c = u.c(v, cur.v); c == 0 {
			return
		} else if c < 0 {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return
}

// find the node holding a value == v. The descent is guided by the Comparator.
func (u *TreeSet[T]) find(v T) *node[T] {
	cur := u.root
	for cur != nil && cur.v != v {
		if u.c(v, cur.v) > 0 {
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return cur
}

// Add v to the tree. Returns false without modifying the tree if an equal value exists.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Add(v T) bool {
	p, c := u.locate(v)
	switch {
	case p == nil:
		u.root = &node[T]{v: v}
	case c == 0:
		return false
	case c < 0:
		p.l = &node[T]{v: v, p: p}
	default:
		p.r = &node[T]{v: v, p: p}
	}
	u.sz++
	return true
}

// Contains a value equal to v.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Contains(v T) bool {
	n, c := u.locate(v)
	return n != nil && c == 0
}

// Remove the value == v. Returns the value that was stored and whether it was found.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Remove(v T) (T, bool) {
	n := u.find(v)
	if n == nil {
		return *new(T), false
	}
	r := n.v
	u.removeNode(n)
	return r, true
}

// removeNode n from the tree. A junction node stays in place and takes over the value of
// its in-order successor, which is then spliced out instead.
func (u *TreeSet[T]) removeNode(n *node[T]) {
	if n.junction() {
		s := leftmost(n.r)
		tracer().Debugf("remove junction %v, substitute %v", n.v, s.v)
		n.v = s.v
		u.splice(s)
	} else {
		u.splice(n)
	}
	u.sz--
}

// splice non-junction node n out of the tree, linking its only child, or nil,
// into n's place.
func (u *TreeSet[T]) splice(n *node[T]) {
	c := n.r
	if c == nil {
		c = n.l
	}
	if c != nil {
		c.p = n.p
	}
	if p := n.p; p == nil {
		u.root = c
	} else if p.r == n {
		p.r = c
	} else {
		p.l = c
	}
	n.l, n.r, n.p = nil, nil, nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.c(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.c(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Iterator over the values in ascending order. See [cursor] for removal.
func (u *TreeSet[T]) Iterator() Sets.Iterator[T] {
	it := &cursor[T]{u: u}
	if u.root != nil {
		it.cur = leftmost(u.root)
	}
	return it
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *TreeSet[T]) InOrder() func() (T, bool) {
	var cur *node[T]
	if u.root != nil {
		cur = leftmost(u.root)
	}
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		cur = next(cur)
		return
	}
}

// All values in ascending order, for use with range.
// The tree mustn't be modified during the iteration.
func (u *TreeSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for cur := leftmost(u.root); cur != nil; cur = next(cur) {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Corrupt [Tree.Corrupt]
// Checks that every child points back to its parent, that Size matches the number of
// nodes, and that the in-order sequence is strictly ascending under the Comparator.
// Recursive.
// Time: O(n)
func (u *TreeSet[T]) Corrupt() bool {
	if u.root != nil && u.root.p != nil {
		return true
	}
	cnt, ok := linked(u.root)
	if !ok || cnt != u.sz {
		return true
	}
	var prev *node[T]
	if u.root != nil {
		for cur := leftmost(u.root); cur != nil; prev, cur = cur, next(cur) {
			if prev != nil && u.c(prev.v, cur.v) >= 0 {
				return true
			}
		}
	}
	return false
}

// linked counts the nodes under n and checks their parent pointers.
func linked[T any](n *node[T]) (uint, bool) {
	if n == nil {
		return 0, true
	}
	if (n.l != nil && n.l.p != n) || (n.r != nil && n.r.p != n) {
		return 0, false
	}
	lc, lok := linked(n.l)
	rc, rok := linked(n.r)
	return lc + rc + 1, lok && rok
}
