package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bbst/algebra"
)

// sum is a minimal additive Monoid used to exercise the contract.
type sum int

func (s sum) Op(rhs sum) sum  { return s + rhs }
func (s sum) Identity() sum   { return 0 }
func (s sum) AssertReversible() {}

var (
	_ algebra.Monoid[sum]     = sum(0)
	_ algebra.Reversible[sum] = sum(0)
)

// addBy is an Effector over sum: it adds a constant to every element a
// folded value represents.
type addBy int

func (a addBy) Op(rhs addBy) addBy { return a + rhs }
func (a addBy) Identity() addBy    { return 0 }
func (a addBy) Effect(t sum, size int) sum {
	return t + sum(int(a)*size)
}

var _ algebra.Effector[addBy, sum] = addBy(0)

func TestMonoidIdentity(t *testing.T) {
	var zero sum
	ident := zero.Identity()
	assert.Equal(t, sum(5), ident.Op(sum(5)))
	assert.Equal(t, sum(5), sum(5).Op(ident))
}

func TestEffectorComposition(t *testing.T) {
	e1, e2 := addBy(3), addBy(4)
	t0 := sum(10)
	const n = 2

	lhs := e2.Effect(e1.Effect(t0, n), n)
	rhs := e1.Op(e2).Effect(t0, n)

	assert.Equal(t, rhs, lhs)
	assert.Equal(t, sum(10+3*n+4*n), lhs)
}
