// Package xreal defines the contract any value must satisfy to be fed
// into the rounding kernel in package rfloat.
//
// Computer number systems share certain characteristics. Many can be
// represented by a finite-precision number in scientific notation:
// (-1)^s * c * 2^exp, where s is the sign, c is the non-negative integer
// significand, and exp is the exponent. Number systems may additionally
// encode non-real values, notably infinity or NaN.
package xreal

import "math/big"

// Real is the extended-real (ER) contract. Accessors that are only
// meaningful for finite, non-zero values return the zero value of their
// result type when called on a value for which they are undefined;
// callers must gate on IsFinite/IsZero/IsNaR as appropriate.
type Real interface {
	// Radix of the number system. Fixed to 2 for every implementation
	// in this module.
	Radix() int

	// Sign returns the sign bit. Not always well-defined (NaN has none),
	// so the second result reports whether it is.
	Sign() (negative bool, ok bool)

	// Exp returns the exponent in (-1)^s * c * 2^exp. Only defined for
	// finite, non-zero values.
	Exp() (exp int, ok bool)

	// E returns the exponent in (-1)^s * f * 2^e where f is a fraction
	// between 1 and 2 — the position of the most significant bit,
	// Exp() + Prec() - 1. Only defined for finite, non-zero values.
	E() (e int, ok bool)

	// N returns the absolute digit position one below the least
	// significant digit of the significand: Exp() - 1. Only defined for
	// finite, non-zero values.
	N() (n int, ok bool)

	// C returns the unsigned integer significand. Only defined for
	// finite, non-zero values.
	C() (c *big.Int, ok bool)

	// Prec returns bitlen(C()). Only defined for finite, non-zero
	// values.
	Prec() (prec uint, ok bool)

	// IsNaR reports whether this value is not a real number (e.g. NaN).
	IsNaR() bool

	// IsFinite reports whether this value is a finite number (including
	// zero).
	IsFinite() bool

	// IsInfinite reports whether this value is +/- infinity.
	IsInfinite() bool

	// IsZero reports whether this value is zero.
	IsZero() bool

	// IsNegative reports whether this value is negative. Not always
	// well-defined (zero has a sign but is not "negative"; NaN has
	// neither), so the second result reports whether it is.
	IsNegative() (negative bool, ok bool)

	// IsNumerical reports whether this value represents a numerical
	// value: a finite number or an infinity, as opposed to NaR.
	IsNumerical() bool
}
