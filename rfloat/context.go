package rfloat

import (
	"math/big"

	"github.com/trippwill/go-numform/imath"
	"github.com/trippwill/go-numform/xflags"
)

// RoundingMode selects how a value that falls between two
// representable results is resolved.
type RoundingMode uint8

const (
	NearestTiesToEven RoundingMode = iota
	NearestTiesToAway
	NearestTiesToOdd
	ToZero
	AwayZero
	ToPositive
	ToNegative
	ToEven
	ToOdd
)

// RoundingDirection is the sign-independent direction a rounding mode
// resolves to once the value's sign has been taken into account.
type RoundingDirection uint8

const (
	DirToZero RoundingDirection = iota
	DirAwayZero
	DirToEven
	DirToOdd
)

// ToDirection resolves mode to (isNearest, direction) given the sign of
// the value being rounded. Sign-aware modes (ToPositive, ToNegative)
// collapse to the sign-independent ToZero/AwayZero direction once sign
// is folded in.
func (m RoundingMode) ToDirection(negative bool) (isNearest bool, direction RoundingDirection) {
	switch m {
	case NearestTiesToEven:
		return true, DirToEven
	case NearestTiesToAway:
		return true, DirAwayZero
	case NearestTiesToOdd:
		return true, DirToOdd
	case ToZero:
		return false, DirToZero
	case AwayZero:
		return false, DirAwayZero
	case ToPositive:
		if negative {
			return false, DirToZero
		}
		return false, DirAwayZero
	case ToNegative:
		if negative {
			return false, DirAwayZero
		}
		return false, DirToZero
	case ToEven:
		return false, DirToEven
	case ToOdd:
		return false, DirToOdd
	default:
		return true, DirToEven
	}
}

// Context carries the rounding parameters shared by every format
// wrapper: an optional maximum precision (bit width of the significand)
// and/or an optional minimum digit position n (a result retains no
// digit at or below 2^n), plus a rounding mode. At least one of
// MaxPrecision or MinN must be set; a context with neither is a
// programmer error.
//
// Context is a plain value type, built up with chainable With*/Without*
// methods in the style of an immutable builder — each call returns a
// modified copy, leaving the receiver untouched.
type Context struct {
	maxP    uint
	hasMaxP bool
	minN    int
	hasMinN bool
	mode    RoundingMode
}

// NewContext returns a context with no precision or exponent bound and
// round-to-nearest-ties-to-even, ready to be narrowed with With*
// methods.
func NewContext() Context {
	return Context{mode: NearestTiesToEven}
}

// WithMaxPrecision returns a copy of c with a maximum significand
// bit-width of p.
func (c Context) WithMaxPrecision(p uint) Context {
	c.maxP, c.hasMaxP = p, true
	return c
}

// WithoutMaxPrecision returns a copy of c with no precision bound.
func (c Context) WithoutMaxPrecision() Context {
	c.maxP, c.hasMaxP = 0, false
	return c
}

// WithMinN returns a copy of c with a minimum digit position of n: the
// result never retains a digit at or below 2^n, so its smallest place
// value is at least 2^(n+1).
func (c Context) WithMinN(n int) Context {
	c.minN, c.hasMinN = n, true
	return c
}

// WithoutMinN returns a copy of c with no minimum exponent bound.
func (c Context) WithoutMinN() Context {
	c.minN, c.hasMinN = 0, false
	return c
}

// WithRoundingMode returns a copy of c using mode.
func (c Context) WithRoundingMode(mode RoundingMode) Context {
	c.mode = mode
	return c
}

// MaxPrecision returns the configured maximum precision, if any.
func (c Context) MaxPrecision() (uint, bool) { return c.maxP, c.hasMaxP }

// MinN returns the configured minimum exponent, if any.
func (c Context) MinN() (int, bool) { return c.minN, c.hasMinN }

// RoundingMode returns the configured rounding mode.
func (c Context) RoundingMode() RoundingMode { return c.mode }

// RoundParams computes the split position n for value r under this
// context: the absolute bit position at and below which digits are
// truncated. It combines the precision bound (relative to r's MSB
// position e) and the absolute exponent bound, taking whichever
// truncates more (the larger n), since both bounds must be honored
// simultaneously.
//
// Panics if neither MaxPrecision nor MinN is set: that is a programmer
// error, not a numerical exception.
func (c Context) RoundParams(r RFloat) int {
	if !c.hasMaxP && !c.hasMinN {
		panic("rfloat: Context.RoundParams: neither MaxPrecision nor MinN is set")
	}
	if !r.IsFinite() || r.IsZero() {
		if c.hasMinN {
			return c.minN
		}
		return 0
	}
	e, _ := r.E()
	n := e - int(c.maxP)
	if !c.hasMaxP {
		n = c.minN
	} else if c.hasMinN {
		n = imath.Max(n, c.minN)
	}
	return n
}

// RoundFinalize rounds the exact split of r at position n according to
// this context's rounding mode, returning the rounded RFloat and the
// exception flags raised in doing so (Inexact and Carry; Overflow,
// Underflow*, Denorm are format-specific and set by the caller's
// wrapper, not here).
func (c Context) RoundFinalize(r RFloat, split Split) (RFloat, xflags.Exceptions) {
	if !r.IsFinite() {
		return r, xflags.Exceptions{}
	}

	negative, _ := r.IsNegative()
	high := split.High
	hc, ok := high.C()
	if !ok {
		hc = big.NewInt(0)
	}

	inexact := split.Half || split.Sticky
	if !inexact {
		return r, xflags.Exceptions{}
	}

	isNearest, direction := c.mode.ToDirection(negative)
	incr := decideIncrement(isNearest, direction, split, hc)

	resultC := new(big.Int).Set(hc)
	carry := false
	if incr {
		resultC.Add(resultC, big.NewInt(1))
		// Only a format with a precision bound can overflow its retained
		// bit width; a MinN-only context (unbounded precision) has
		// nothing to overflow, so the shift-and-bump-exponent step and
		// the Carry flag never apply there.
		if c.hasMaxP && imath.BitLen(resultC) > imath.BitLen(hc) && !imath.IsZero(hc) {
			carry = true
		}
	}

	resultExp := high.exp
	if carry {
		// Incrementing overflowed the retained bit width: the new
		// coefficient is a power of two one bit wider than before;
		// shifting right by one and bumping the exponent restores the
		// retained width, and NewReal below canonicalizes the result.
		resultC = imath.Shr(resultC, 1)
		resultExp++
	}

	result := NewReal(negative, resultExp, resultC)
	return result, xflags.Exceptions{Inexact: true, Carry: carry}
}

// decideIncrement applies the rounding decision table: given whether
// the mode rounds to nearest, the resolved direction, the split's
// half/sticky classification, and the truncated high-part coefficient
// (to test its parity for to-even/to-odd), decide whether to increment
// the truncated coefficient by one unit in the last retained place.
func decideIncrement(isNearest bool, direction RoundingDirection, split Split, hc *big.Int) bool {
	if !isNearest {
		switch direction {
		case DirToZero:
			return false
		case DirAwayZero:
			return true
		case DirToEven:
			return imath.IsOdd(hc)
		case DirToOdd:
			return imath.IsEven(hc)
		}
		return false
	}

	// Nearest modes: below the halfway point (half bit clear), always
	// truncate, regardless of anything below it. Above the halfway point
	// (half bit set and something nonzero below it), always round up.
	// Exactly halfway (half bit set, nothing below it), break the tie
	// per direction.
	switch {
	case !split.Half:
		return false
	case split.Half && split.Sticky:
		return true
	default: // split.Half && !split.Sticky: exactly halfway
		switch direction {
		case DirToEven:
			return imath.IsOdd(hc)
		case DirToOdd:
			return imath.IsEven(hc)
		case DirAwayZero:
			return true
		default:
			return false
		}
	}
}

// Round is a convenience wrapper combining RoundParams, NewSplit, and
// RoundFinalize for the common case of rounding a value end to end.
func (c Context) Round(r RFloat) (RFloat, xflags.Exceptions) {
	if !r.IsFinite() {
		return r, xflags.Exceptions{}
	}
	n := c.RoundParams(r)
	split := NewSplit(r, n)
	return c.RoundFinalize(r, split)
}
