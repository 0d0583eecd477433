package Trees

import (
	"slices"

	"github.com/g-m-twostay/go-treeset/Queues"
	"golang.org/x/exp/constraints"
)

// Height [Tree.Height]. 0 for an empty tree. Recursive.
// Time: O(n); Space: O(D)
func (u *TreeSet[T]) Height() uint {
	return height(u.root)
}

func height[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.l), height(n.r))
}

// Width [Tree.Width] counts the leaves, nodes without children. This is not the
// largest number of nodes on one level; see MaxLevelWidth for that. Recursive.
// Time: O(n); Space: O(D)
func (u *TreeSet[T]) Width() uint {
	return width(u.root)
}

func width[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	if n.l == nil && n.r == nil {
		return 1
	}
	return width(n.l) + width(n.r)
}

// LevelWidths returns the number of nodes at each depth, root first.
// Time: O(n); Space: O(n)
func (u *TreeSet[T]) LevelWidths() []uint {
	var ws []uint
	if u.root == nil {
		return ws
	}
	q := Queues.MakeArrayQueue[*node[T]](16)
	q.Push(u.root)
	for !q.Empty() {
		n := q.Size()
		ws = append(ws, n)
		for ; n > 0; n-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return ws
}

// MaxLevelWidth is the largest number of nodes sharing one depth.
func (u *TreeSet[T]) MaxLevelWidth() uint {
	if ws := u.LevelWidths(); len(ws) > 0 {
		return slices.Max(ws)
	}
	return 0
}

// SumOfMaxBranch returns the largest sum of values along a path going down from the
// root, where a missing child ends the path with 0. 0 for an empty tree. Recursive.
// Time: O(n); Space: O(D)
func SumOfMaxBranch[T constraints.Integer](u *TreeSet[T]) T {
	return branchSum(u.root, func(v T) T { return v })
}

// SumOfMaxBranch is the same as the package level SumOfMaxBranch, for trees whose
// element type is only known at run time. Returns -1 and ErrNotIntegral if T isn't
// an integer type. Sums of unsigned values beyond math.MaxInt64 wrap around.
func (u *TreeSet[T]) SumOfMaxBranch() (int64, error) {
	if _, ok := asInt64(*new(T)); !ok {
		return -1, ErrNotIntegral
	}
	return branchSum(u.root, func(v T) int64 {
		i, _ := asInt64(v)
		return i
	}), nil
}

func branchSum[T any, N constraints.Integer](n *node[T], conv func(T) N) N {
	if n == nil {
		return 0
	}
	return conv(n.v) + max(branchSum(n.l, conv), branchSum(n.r, conv))
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	case uintptr:
		return int64(x), true
	}
	return 0, false
}
