package Sets

// Set is a collection with no repeated elements.
// Whether two elements are the same is decided by the implementation.
type Set[E any] interface {
	//Add e to the Set. Returns false if e is already in it.
	Add(e E) bool
	//Remove the element matching e. Returns the removed element and true,
	//or false if nothing matched.
	Remove(e E) (E, bool)
	//Contains an element matching e.
	Contains(e E) bool
	//Size of the Set.
	Size() uint
	//Iterator over the elements. Each call returns a fresh Iterator.
	Iterator() Iterator[E]
}

// Iterator is a single pass cursor over a Set.
type Iterator[E any] interface {
	//HasNext reports whether Next would yield an element.
	HasNext() bool
	//Next element. The second return value is false once exhausted.
	Next() (E, bool)
	//Remove the element last returned by Next from the underlying Set.
	//It fails if Next hasn't been called, or if that element was already removed.
	Remove() (E, error)
}

// AddAll es to s, returning the number of elements actually added.
func AddAll[E any](s Set[E], es ...E) (n uint) {
	for _, e := range es {
		if s.Add(e) {
			n++
		}
	}
	return
}

// RemoveIf removes every element of s satisfying pred through the iterator.
// Returns the number of removed elements.
func RemoveIf[E any](s Set[E], pred func(E) bool) (n uint) {
	for it := s.Iterator(); it.HasNext(); {
		e, _ := it.Next()
		if pred(e) {
			if _, err := it.Remove(); err == nil {
				n++
			}
		}
	}
	return
}

// ToSlice in iteration order.
func ToSlice[E any](s Set[E]) []E {
	r := make([]E, 0, s.Size())
	for it := s.Iterator(); it.HasNext(); {
		e, _ := it.Next()
		r = append(r, e)
	}
	return r
}

// Eq reports whether a and b hold the same elements.
func Eq[E any](a, b Set[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for it := a.Iterator(); it.HasNext(); {
		if e, _ := it.Next(); !b.Contains(e) {
			return false
		}
	}
	return true
}
