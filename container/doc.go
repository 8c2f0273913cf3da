// Package container holds auxiliary support data structures that sit
// beside the sequence and forest engines (none of the engines uses
// them): a geometric-growth dynamic
// array, a persistent (structure-sharing) stack, and an intrusive
// doubly-linked list. None of these require an algebraic value type;
// they are plain storage primitives.
package container
