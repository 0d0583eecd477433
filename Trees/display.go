package Trees

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// spaceLevel is the indentation per depth level of the display routines.
const spaceLevel = 5

// DisplayTree writes the tree turned sideways: the right subtree above its root and the
// left subtree below, each line indented by the depth of its node. Recursive.
func (u *TreeSet[T]) DisplayTree(w io.Writer) error {
	return displaySideways(w, u.root, 0)
}

func displaySideways[T any](w io.Writer, n *node[T], level int) error {
	if n == nil {
		return nil
	}
	if err := displaySideways(w, n.r, level+1); err != nil {
		return err
	}
	if err := displayRoot(w, n, level); err != nil {
		return err
	}
	return displaySideways(w, n.l, level+1)
}

// DisplayTreeFileSystem writes the tree top-down like a directory listing: every node
// followed by its right subtree, then its left subtree, one level deeper. Recursive.
func (u *TreeSet[T]) DisplayTreeFileSystem(w io.Writer) error {
	return displayFileSystem(w, u.root, 0)
}

func displayFileSystem[T any](w io.Writer, n *node[T], level int) error {
	if n == nil {
		return nil
	}
	if err := displayRoot(w, n, level); err != nil {
		return err
	}
	if err := displayFileSystem(w, n.r, level+1); err != nil {
		return err
	}
	return displayFileSystem(w, n.l, level+1)
}

func displayRoot[T any](w io.Writer, n *node[T], level int) error {
	_, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat(" ", level*spaceLevel), n.v)
	return err
}

// Render the tree with pterm's tree printer, lesser children first.
// Returns "" for an empty tree.
func (u *TreeSet[T]) Render() (string, error) {
	if u.root == nil {
		return "", nil
	}
	ll := leveled(u.root, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Srender()
}

func leveled[T any](n *node[T], ll pterm.LeveledList, level int) pterm.LeveledList {
	if n == nil {
		return ll
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprint(n.v)})
	ll = leveled(n.l, ll, level+1)
	return leveled(n.r, ll, level+1)
}
