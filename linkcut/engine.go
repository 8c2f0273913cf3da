package linkcut

import "bbst/seqnode"

// rotate rotates t up past its parent in direction dir (dir is the side
// opposite the slot t currently occupies under its parent, i.e. the side
// the old parent moves to; the caller computes it, this function never
// recomputes it internally). Ported from
// original_source/src/lctree/node_traits.rs: fn rotate.
func rotate[N node[N]](t N, dir seqnode.Dir) {
	var zero N
	x := t.Parent()
	y := x.Parent()

	tc := t.Child(dir)
	x.SetChild(dir.Other(), tc)
	if tc != zero {
		tc.SetParent(x)
	}
	t.SetChild(dir, x)
	x.SetParent(t)
	x.Fix()
	t.Fix()
	t.SetParent(y)
	if y != zero {
		if d, ok := parentDir[N](y, x); ok {
			y.SetChild(d, t)
			y.Fix()
		}
	}
}

// splay is the standard bottom-up zig/zig-zig/zig-zag splay, pushing
// lazy state down the rotation path before each rotation so it reaches
// the spinning nodes before they move. Ported from node_traits.rs:
// fn splay.
func splay[N node[N]](t N) {
	t.Push()
	for !isRoot[N](t) {
		q := t.Parent()
		if isRoot[N](q) {
			q.Push()
			t.Push()
			d, _ := parentDir[N](q, t)
			rotate[N](t, d.Other())
		} else {
			r := q.Parent()
			r.Push()
			q.Push()
			t.Push()
			rqDir, _ := parentDir[N](r, q)
			qtDir, _ := parentDir[N](q, t)
			if rqDir == qtDir {
				rotate[N](q, rqDir.Other())
				rotate[N](t, qtDir.Other())
			} else {
				rotate[N](t, qtDir.Other())
				rotate[N](t, rqDir.Other())
			}
		}
	}
}

// expose makes the root-to-t path the preferred path ending at t,
// splaying t to the root of its auxiliary tree, and returns the
// previous top of the topmost auxiliary tree visited (used by lca).
// Ported from node_traits.rs: fn expose.
func expose[N node[N]](t N) N {
	var zero, rp N
	cur := t
	for cur != zero {
		splay[N](cur)
		cur.SetChild(seqnode.Right, rp)
		cur.Fix()
		rp = cur
		cur = cur.Parent()
	}
	splay[N](t)
	return rp
}

// link attaches child as a new child of parent. child must currently be
// a tree root; parent must be in a different tree (an unchecked caller
// contract, matching the reference algorithm). Ported from
// node_traits.rs: fn lct_link.
func link[N node[N]](parent, child N) {
	var zero N
	expose[N](child)
	if child.Child(seqnode.Left) != zero {
		panic("linkcut: child is not a tree root")
	}
	expose[N](parent)
	child.SetParent(parent)
	parent.SetChild(seqnode.Right, child)
	child.Fix()
}

// cut removes the edge from child to its parent. Panics if child is
// already a forest root. Ported from node_traits.rs: fn lct_cut.
func cut[N node[N]](child N) {
	var zero N
	expose[N](child)
	parent := child.Child(seqnode.Left)
	if parent == zero {
		panic("linkcut: cut on a forest root")
	}
	child.SetChild(seqnode.Left, zero)
	parent.SetParent(zero)
	child.Fix()
}

// evert makes t the root of its tree by reversing the path from the
// old root to t. Ported from node_traits.rs: fn lct_evert.
func evert[N node[N]](t N) {
	expose[N](t)
	t.Reverse()
	t.Push()
}

// lca exposes u then v; if both lie in the same tree, the node
// returned by the second expose is their lowest common ancestor.
// Otherwise the second expose leaves u without a parent, and the zero
// node is returned. Ported from node_traits.rs: fn lct_lca.
func lca[N node[N]](u, v N) N {
	var zero N
	expose[N](u)
	l := expose[N](v)
	if u != v && u.Parent() == zero {
		return zero
	}
	return l
}
