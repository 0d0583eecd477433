package Trees

// cursor walks a TreeSet in order using parent pointers only.
// cur is the node Next will yield, prev the node it yielded last, or nil if
// there is nothing Remove could act on.
// A cursor is invalidated by modifications of the tree not made through it.
type cursor[T comparable] struct {
	u         *TreeSet[T]
	cur, prev *node[T]
}

func (it *cursor[T]) HasNext() bool {
	return it.cur != nil
}

// Next value in ascending order.
// Time: amortized O(1)
func (it *cursor[T]) Next() (T, bool) {
	if it.cur == nil {
		return *new(T), false
	}
	r := it.cur.v
	it.prev = it.cur
	it.cur = next(it.cur)
	return r, true
}

// Remove the value last returned by Next. Returns ErrNoCurrent if Next hasn't
// yielded anything since the last Remove.
// Removing a junction node moves its successor's value into it, and the successor
// is what cur points at, so cur is redirected to the junction before the removal.
func (it *cursor[T]) Remove() (T, error) {
	n := it.prev
	if n == nil {
		return *new(T), ErrNoCurrent
	}
	it.prev = nil
	r := n.v
	if n.junction() {
		tracer().Debugf("iterator removes junction %v", r)
		it.cur = n
	}
	it.u.removeNode(n)
	return r, nil
}
