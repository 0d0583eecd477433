package Trees

import (
	"github.com/g-m-twostay/go-treeset/Sets"
	"github.com/npillmayer/schuko/tracing"
)

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Tree[T any] interface {
	Sets.Set[T]
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//InOrder returns A closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f; use
	//Iterator for removal while iterating.
	InOrder() func() (T, bool)
	//Height is the number of nodes on the longest root-to-leaf path.
	Height() uint
	//Width is the number of leaves.
	Width() uint
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

var _ Tree[int] = (*TreeSet[int])(nil)

// tracer traces with key 'treeset'
func tracer() tracing.Trace {
	return tracing.Select("treeset")
}
