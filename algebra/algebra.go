// Package algebra defines the capability contracts every sequence and
// forest engine in this module is parameterised over: a binary operation,
// an identity element, and an action (Effector) that can be deferred onto
// a folded value.
package algebra

// Magma is a set with a binary operation. No associativity is assumed or
// checked.
type Magma[V any] interface {
	Op(rhs V) V
}

// Associative marks a Magma whose Op the caller has verified is
// associative. Go cannot check algebraic laws at compile time; this is a
// naming convention, not an enforced property.
type Associative[V any] interface {
	Magma[V]
}

// Unital supplies a distinguished identity element for the magma. Go has
// no per-type static methods, so Identity is a value method: it must be
// callable on the zero value of V and must not depend on receiver state.
type Unital[V any] interface {
	Magma[V]
	Identity() V
}

// Monoid is the closure every engine in this module requires: an
// associative operation with an identity.
type Monoid[V any] interface {
	Associative[V]
	Unital[V]
}

// Reversible marks a Monoid whose fold is invariant under reversal of the
// element sequence it was built from. Because the interface would
// otherwise be structurally identical to Monoid, implementers must
// declare the marker method explicitly to opt in.
type Reversible[V any] interface {
	Monoid[V]
	AssertReversible()
}

// Effector is an action monoid E that can be deferred onto folded values
// of a target monoid T, covering a known number of elements. Effect is a
// method on E (the receiver carries the action, not the target).
//
// Composition law (required of implementations, not checked at runtime):
// for any e1, e2 and any fold t covering n elements,
//
//	e2.Effect(e1.Effect(t, n), n) == e1.Op(e2).Effect(t, n)
type Effector[E any, T any] interface {
	Monoid[E]
	Effect(t T, size int) T
}
