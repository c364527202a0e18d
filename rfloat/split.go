package rfloat

import (
	"math/big"

	"github.com/trippwill/go-numform/imath"
)

// Split is the result of cutting a finite value's exact expansion at
// absolute bit position n: the part strictly above n (High, exact), and
// a summary of everything at and below n sufficient to round correctly
// without retaining the full low-order bits.
type Split struct {
	// High is the exact high part: what remains after truncating at n,
	// expressed with exp == n+1 (so High.C() holds the retained digits
	// with no further bits below it). Not canonicalized: its exponent is
	// pinned to n+1 even if that leaves trailing zero bits in C().
	High RFloat

	// Half reports whether bit n of the original value (worth half a
	// unit in the last retained place) is set.
	Half bool

	// Sticky reports whether any bit strictly below n is set, i.e.
	// whether the truncated part is something other than an exact
	// multiple of half a unit in the last retained place. This is the
	// single "is there anything below the halfway bit" signal the
	// decision table needs; it does not distinguish a quarter unit from
	// any other non-zero remainder below it.
	Sticky bool

	// Lost is the exact value of the part truncated at n: the original
	// value minus High. Retained for diagnostics only; the rounding
	// kernel itself only consults Half/Sticky.
	Lost RFloat
}

// splitAt cuts r's exact expansion at absolute bit position n, returning
// the exact high part (exponent pinned to n+1) and the exact low part
// (keeping its original absolute bit positions, exponent pinned to r's
// own exponent).
//
// r must be finite. Returns high, low such that r == high + low exactly,
// high's bits are strictly above n, and low's bits are at or below n.
func splitAt(r RFloat, n int) (high, low RFloat) {
	exp, ok := r.Exp()
	if !ok {
		// zero
		return Zero(), Zero()
	}
	e, _ := r.E()
	c, _ := r.C()

	if n < exp {
		// nothing to truncate: everything is above n
		return rawReal(r.sign, n+1, imath.Shl(c, uint(exp-n-1))), Zero()
	}
	if n >= e {
		// everything is at or below n: the high part is zero, still
		// pinned at n+1 so that a rounding increment lands at 2^(n+1)
		return rawReal(r.sign, n+1, big.NewInt(0)), rawReal(r.sign, exp, c)
	}

	shift := uint(n - exp + 1)
	highC := imath.Shr(c, shift)
	lowC := imath.And(c, imath.BitMask(shift))

	high = rawReal(r.sign, n+1, highC)
	if imath.IsZero(lowC) {
		low = Zero()
	} else {
		low = rawReal(r.sign, exp, lowC)
	}
	return high, low
}

// NewSplit cuts r at absolute bit position n, following the two-level
// procedure used by the rounding kernel: the low part produced by the
// first cut is classified by its halfway bit (bit n of the original
// value) and a single sticky bit summarizing everything strictly below
// it (found by cutting the original value again one place lower). The
// two signals are kept independent, not folded into mutually exclusive
// categories: "half set, sticky set" (more than halfway) and "half
// clear, sticky set" (inexact but less than halfway) are
// both real, distinct states the decision table must tell apart.
//
// r must be finite.
func NewSplit(r RFloat, n int) Split {
	high, low := splitAt(r, n)

	if low.IsZero() {
		return Split{High: high, Half: false, Sticky: false, Lost: Zero()}
	}

	halfBit := r.Bit(n)
	_, rest := splitAt(r, n-1)
	sticky := !rest.IsZero()

	return Split{
		High:   high,
		Half:   halfBit,
		Sticky: sticky,
		Lost:   low,
	}
}
