package splayseq

import "bbst/algebra"

// splay restructures cur's subtree, top-down by rank, so that the
// element at inorder position n becomes the new root, and returns that
// root. Ported statement-for-statement from
// original_source/src/bbstree/splay_tree_array_safe.rs: fn splay,
// including the zig-zig optimisation (the nested size check inside
// each branch) and the two parking spines that accumulate skipped
// subtrees during descent.
func splay[V algebra.Monoid[V]](cur *node[V], n int) *node[V] {
	sz := n
	var subLeft, subRight *node[V]
	le := &subLeft
	ri := &subRight

outer:
	for {
		leftSize := sizeOf(cur.left)
		switch {
		case leftSize == sz:
			break outer
		case leftSize > sz:
			left := cur.cutLeft()
			if left == nil {
				break outer
			}
			if sizeOf(left.left) > sz {
				cur.setLeft(left.cutRight())
				cur, left = left, cur
				next := cur.cutLeft()
				cur.setRight(left)
				if next == nil {
					break outer
				}
				left = next
			}
			*ri = cur
			cur = left
			ri = &(*ri).left
		default:
			sz = sz - leftSize - 1
			right := cur.cutRight()
			if right == nil {
				break outer
			}
			if sizeOf(right.left) < sz {
				sz = sz - sizeOf(right.left) - 1
				cur.setRight(right.cutLeft())
				cur, right = right, cur
				next := cur.cutRight()
				cur.setLeft(right)
				if next == nil {
					break outer
				}
				right = next
			}
			*le = cur
			cur = right
			le = &(*le).right
		}
	}

	*le = cur.cutLeft()
	*ri = cur.cutRight()
	fixSubLeft(subLeft)
	fixSubRight(subRight)
	cur.setLeft(subLeft)
	cur.setRight(subRight)
	return cur
}

// fixSubLeft refreshes caches along a spine built by repeatedly
// attaching into a node's right child (the "parking" chain on the left
// side of the splay path). Ported from splay_tree_array_safe.rs:
// fn fix_sub_left.
func fixSubLeft[V algebra.Monoid[V]](n *node[V]) {
	if n == nil {
		return
	}
	fixSubLeft(n.right)
	n.fix()
}

// fixSubRight mirrors fixSubLeft for the right-side parking chain.
// Ported from splay_tree_array_safe.rs: fn fix_sub_right.
func fixSubRight[V algebra.Monoid[V]](n *node[V]) {
	if n == nil {
		return
	}
	fixSubRight(n.left)
	n.fix()
}

// split partitions root into a left tree of i elements and the
// remainder, splaying the (i-1)-th element to the root first so the
// cut is a single pointer detach. Ported from
// splay_tree_array_safe.rs: fn split.
func split[V algebra.Monoid[V]](root *node[V], i int) (*node[V], *node[V]) {
	if root == nil {
		return nil, nil
	}
	if i == 0 {
		return nil, root
	}
	if i == root.sz {
		return root, nil
	}
	root = splay(root, i-1)
	right := root.cutRight()
	return root, right
}

// merge concatenates left and right by splaying left's last element to
// its root, then attaching right as its right child. Ported from
// splay_tree_array_safe.rs: fn merge.
func merge[V algebra.Monoid[V]](left, right *node[V]) *node[V] {
	if left == nil {
		return right
	}
	left = splay(left, left.sz-1)
	left.setRight(right)
	return left
}
