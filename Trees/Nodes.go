package Trees

// A node in the TreeSet.
// l holds values less than v, r holds values greater than v.
// p is nil only for the root; otherwise p.l==n or p.r==n.
type node[T any] struct {
	v       T
	l, r, p *node[T]
}

// junction reports whether n has both children.
func (n *node[T]) junction() bool {
	return n.l != nil && n.r != nil
}

// leftmost descendant of n, n itself included.
// Time: O(D); Space: O(1)
func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost descendant of n, n itself included.
func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// firstLeftAncestor walks up from n and returns the first ancestor reached
// through a left child edge, which is n's in-order successor when n.r==nil.
// Returns nil if n is the maximum.
func firstLeftAncestor[T any](n *node[T]) *node[T] {
	for n.p != nil && n.p.l != n {
		n = n.p
	}
	return n.p
}

// next node in in-order.
func next[T any](n *node[T]) *node[T] {
	if n.r != nil {
		return leftmost(n.r)
	}
	return firstLeftAncestor(n)
}
