package Sets

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets"
)

// GodsSet exposes a Set as a gods sets.Set, so it can be handed to code written
// against github.com/emirpasic/gods containers. Values of a type other than E
// are never stored and never contained.
type GodsSet[E any] struct {
	s Set[E]
}

var _ sets.Set = (*GodsSet[int])(nil)

// AsGods wraps s. Changes through the wrapper are visible in s and vice versa.
func AsGods[E any](s Set[E]) *GodsSet[E] {
	return &GodsSet[E]{s}
}

func (u *GodsSet[E]) Add(elements ...interface{}) {
	for _, x := range elements {
		if e, ok := x.(E); ok {
			u.s.Add(e)
		}
	}
}

func (u *GodsSet[E]) Remove(elements ...interface{}) {
	for _, x := range elements {
		if e, ok := x.(E); ok {
			u.s.Remove(e)
		}
	}
}

// Contains all elements. True when called without arguments, like gods' own sets.
func (u *GodsSet[E]) Contains(elements ...interface{}) bool {
	for _, x := range elements {
		if e, ok := x.(E); !ok || !u.s.Contains(e) {
			return false
		}
	}
	return true
}

func (u *GodsSet[E]) Empty() bool {
	return u.s.Size() == 0
}

func (u *GodsSet[E]) Size() int {
	return int(u.s.Size())
}

// Clear removes every element through the iterator of the wrapped Set.
func (u *GodsSet[E]) Clear() {
	RemoveIf(u.s, func(E) bool { return true })
}

func (u *GodsSet[E]) Values() []interface{} {
	vs := make([]interface{}, 0, u.s.Size())
	for it := u.s.Iterator(); it.HasNext(); {
		e, _ := it.Next()
		vs = append(vs, e)
	}
	return vs
}

func (u *GodsSet[E]) String() string {
	var sb strings.Builder
	sb.WriteString("Set\n")
	for i, v := range u.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
