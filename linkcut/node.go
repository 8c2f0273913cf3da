package linkcut

import "bbst/seqnode"

// node is the structural capability the splay/expose engine needs from
// a concrete link-cut node pointer type. Push carries lazily-deferred
// state (reversal, and for effNode a pending effect) one level down;
// Fix recomputes cached aggregates from the two children.
type node[N any] interface {
	comparable
	Push()
	Fix()
	Reverse()
	Child(d seqnode.Dir) N
	SetChild(d seqnode.Dir, c N)
	Parent() N
	SetParent(p N)
}

// isRoot reports whether t is the root of its auxiliary tree: either it
// has no parent, or the edge to its parent is a path-parent pointer
// rather than a child edge (neither of the parent's children is t).
func isRoot[N node[N]](t N) bool {
	var zero N
	p := t.Parent()
	if p == zero {
		return true
	}
	return p.Child(seqnode.Left) != t && p.Child(seqnode.Right) != t
}

// parentDir reports which child slot of parent holds child, if any.
func parentDir[N node[N]](parent, child N) (seqnode.Dir, bool) {
	var zero N
	if parent == zero {
		return 0, false
	}
	if parent.Child(seqnode.Left) == child {
		return seqnode.Left, true
	}
	if parent.Child(seqnode.Right) == child {
		return seqnode.Right, true
	}
	return 0, false
}
