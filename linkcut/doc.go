// Package linkcut implements a link/cut forest: a set of rooted trees
// whose topology can change (link, cut, evert) while still answering
// whole-path aggregate queries in amortised O(log n). Each real tree is
// encoded as a set of splay trees ("auxiliary trees") whose inorder
// traversal is a preferred root-to-node path; auxiliary tree roots carry
// a path-parent pointer up to the next preferred path.
package linkcut
