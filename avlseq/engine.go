package avlseq

import "bbst/seqnode"

// avlNode is the structural capability the generic rotation/split/merge
// engine below needs from a concrete node pointer type: child access,
// cut/set with automatic fix, and cached size/height. Both elemNode and
// foldElemNode satisfy it, so the engine below is written once and
// instantiated twice.
type avlNode[N any] interface {
	comparable
	Size() int
	Height() int
	Child(d seqnode.Dir) N
	Cut(d seqnode.Dir) N
	Set(d seqnode.Dir, c N)
	Fix()
}

// valNode additionally exposes the stored value, needed only by the
// positional accessors (at / atSet).
type valNode[N any, V any] interface {
	avlNode[N]
	Val() V
	SetVal(V)
}

func diffOf[N avlNode[N]](n N) int {
	var zero N
	if n == zero {
		return 0
	}
	return seqnode.HeightOf[N](n.Child(seqnode.Left)) - seqnode.HeightOf[N](n.Child(seqnode.Right))
}

// rotate performs a single rotation: y = x's dir.Other() child takes x's
// place, x becomes y's dir child. Ported from
// original_source/src/bbstree/avl_tree_array.rs: fn rotate.
func rotate[N avlNode[N]](x N, dir seqnode.Dir) N {
	y := x.Cut(dir.Other())
	b := y.Cut(dir)
	x.Set(dir.Other(), b)
	y.Set(dir, x)
	return y
}

// balance restores the AVL invariant at node, performing a single or
// double rotation as needed. Ported from
// original_source/src/bbstree/avl_tree_array.rs: fn balance.
func balance[N avlNode[N]](node N) N {
	switch {
	case diffOf[N](node) == 2:
		if diffOf[N](node.Child(seqnode.Left)) == -1 {
			left := node.Cut(seqnode.Left)
			node.Set(seqnode.Left, rotate[N](left, seqnode.Left))
		}
		return rotate[N](node, seqnode.Right)
	case diffOf[N](node) == -2:
		if diffOf[N](node.Child(seqnode.Right)) == 1 {
			right := node.Cut(seqnode.Right)
			node.Set(seqnode.Right, rotate[N](right, seqnode.Right))
		}
		return rotate[N](node, seqnode.Left)
	default:
		return node
	}
}

// deepestNode removes and returns the deepest node in direction dir,
// rebalancing the remainder on the way back up. Ported from
// original_source/src/bbstree/avl_tree_array.rs: fn deepest_node.
func deepestNode[N avlNode[N]](node N, dir seqnode.Dir) (deepest N, rest N) {
	var zero N
	ch := node.Cut(dir)
	if ch == zero {
		return node, node.Cut(dir.Other())
	}
	deep, dirn := deepestNode[N](ch, dir)
	node.Set(dir, dirn)
	return deep, balance[N](node)
}

// mergeDir reattaches src (a subtree removed from the dir side) and dst
// (the opposite, taller tree) below root, rebalancing as needed. Ported
// from original_source/src/bbstree/avl_tree_array.rs: fn merge_dir.
func mergeDir[N avlNode[N]](dst, root, src N, dir seqnode.Dir) N {
	var zero N
	hdiff := dst.Height() - seqnode.HeightOf[N](src)
	if hdiff < 0 {
		hdiff = -hdiff
	}
	if hdiff <= 1 {
		root.Set(dir, src)
		root.Set(dir.Other(), dst)
		return root
	}
	ch := dst.Cut(dir)
	if ch != zero {
		merged := mergeDir[N](ch, root, src, dir)
		dst.Set(dir, merged)
		return balance[N](dst)
	}
	root.Set(dir, src)
	dst.Set(dir, balance[N](root))
	return balance[N](dst)
}

// merge concatenates left and right into a single balanced tree. Ported
// from original_source/src/bbstree/avl_tree_array.rs: fn merge.
func merge[N avlNode[N]](left, right N) N {
	var zero N
	if left == zero {
		return right
	}
	if right == zero {
		return left
	}
	if left.Height() >= right.Height() {
		deepLeft, src := deepestNode[N](right, seqnode.Left)
		return mergeDir[N](left, deepLeft, src, seqnode.Right)
	}
	deepRight, src := deepestNode[N](left, seqnode.Right)
	return mergeDir[N](right, deepRight, src, seqnode.Left)
}

// split partitions node into a left tree of i elements and a right tree
// of the remainder. Ported from
// original_source/src/bbstree/avl_tree_array/avl_tree_array.rs: fn split.
func split[N avlNode[N]](node N, i int) (N, N) {
	var zero N
	if i == node.Size() {
		return node, zero
	}
	left := node.Cut(seqnode.Left)
	right := node.Cut(seqnode.Right)
	leftSize := seqnode.SizeOf[N](left)

	switch {
	case i < leftSize:
		spLeft, spRight := split[N](left, i)
		var nright N
		if right != zero {
			nright = mergeDir[N](right, node, spRight, seqnode.Left)
		} else {
			nright = merge[N](spRight, node)
		}
		return spLeft, nright
	case i == leftSize:
		return left, merge[N](node, right)
	default:
		spLeft, spRight := split[N](right, i-leftSize-1)
		var nleft N
		if left != zero {
			nleft = mergeDir[N](left, node, spLeft, seqnode.Right)
		} else {
			nleft = merge[N](node, spLeft)
		}
		return nleft, spRight
	}
}

// at reads the i-th inorder value. Ported from
// original_source/src/bbstree/avl_tree_array/avl_tree_array.rs: fn at.
func at[N valNode[N, V], V any](n N, i int) V {
	leftSize := seqnode.SizeOf[N](n.Child(seqnode.Left))
	switch {
	case leftSize == i:
		return n.Val()
	case leftSize < i:
		return at[N, V](n.Child(seqnode.Right), i-leftSize-1)
	default:
		return at[N, V](n.Child(seqnode.Left), i)
	}
}

// atSet writes the i-th inorder value, refreshing caches on the way back
// up via Fix. Ported from the same source as at, generalised to writes
// per SPEC_FULL.md 4.D at_set.
func atSet[N valNode[N, V], V any](n N, i int, v V) {
	leftSize := seqnode.SizeOf[N](n.Child(seqnode.Left))
	switch {
	case leftSize == i:
		n.SetVal(v)
	case leftSize < i:
		atSet[N, V](n.Child(seqnode.Right), i-leftSize-1, v)
	default:
		atSet[N, V](n.Child(seqnode.Left), i, v)
	}
	n.Fix()
}
