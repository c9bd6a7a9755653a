// Package field adapts the BN254 scalar field for use as the circuit's
// arithmetic domain. It does not reimplement modular arithmetic; it embeds
// signed 32-bit integers into gnark-crypto's field element type and exposes
// the handful of named constructors the rest of the toolchain needs.
package field

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a value in the BN254 scalar field.
type Element = fr.Element

// Zero returns the additive identity.
func Zero() Element {
	var e Element
	return e
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.SetOne()
	return e
}

// FromI32 embeds a signed 32-bit integer into the field:
// FromI32(-n) == -FromI32(n) for all n.
func FromI32(n int32) Element {
	var e Element
	if n < 0 {
		e.SetUint64(uint64(-int64(n)))
		e.Neg(&e)
		return e
	}
	e.SetUint64(uint64(n))
	return e
}

// Add returns a + b.
func Add(a, b Element) Element {
	var out Element
	out.Add(&a, &b)
	return out
}

// Sub returns a - b.
func Sub(a, b Element) Element {
	var out Element
	out.Sub(&a, &b)
	return out
}

// Mul returns a * b.
func Mul(a, b Element) Element {
	var out Element
	out.Mul(&a, &b)
	return out
}

// Neg returns -a.
func Neg(a Element) Element {
	var out Element
	out.Neg(&a)
	return out
}

// Equal reports whether a and b represent the same field element.
func Equal(a, b Element) bool {
	return a.Equal(&b)
}

// IsZero reports whether a is the additive identity.
func IsZero(a Element) bool {
	return a.IsZero()
}

// IsBoolean reports whether a is 0 or 1.
func IsBoolean(a Element) bool {
	return Equal(a, Zero()) || Equal(a, One())
}
