// Package rfloat implements RFloat, the canonical extended-real value
// type, and the shared rounding kernel every format wrapper (bfloat,
// ieee754, fixedp) builds on.
//
// An RFloat is either a finite real (-1)^s * c * 2^exp with a
// non-negative big.Int significand c, or one of +Inf, -Inf, NaN.
// Non-zero finite values are canonical: c is always odd, so trailing
// zero bits have been absorbed into exp. Zero is always Real(false, 0,
// 0) — there is no signed zero at this layer (IEEE-754 reintroduces one
// in package ieee754, which has its own encoding for it).
package rfloat

import (
	"math/big"

	"github.com/trippwill/go-numform/imath"
	"github.com/trippwill/go-numform/xreal"
)

type kind uint8

const (
	kindReal kind = iota
	kindPosInf
	kindNegInf
	kindNaN
)

// RFloat is the canonical extended-real value used by every rounding
// context in this module.
type RFloat struct {
	kind kind
	sign bool
	exp  int
	c    *big.Int
}

var _ xreal.Real = RFloat{}

// Zero returns the canonical zero value.
func Zero() RFloat {
	return RFloat{kind: kindReal, sign: false, exp: 0, c: big.NewInt(0)}
}

// One returns the canonical value 1.
func One() RFloat {
	return RFloat{kind: kindReal, sign: false, exp: 0, c: big.NewInt(1)}
}

// PosInfinity returns +Inf.
func PosInfinity() RFloat {
	return RFloat{kind: kindPosInf}
}

// NegInfinity returns -Inf.
func NegInfinity() RFloat {
	return RFloat{kind: kindNegInf}
}

// NaN returns the canonical not-a-real value.
func NaN() RFloat {
	return RFloat{kind: kindNaN}
}

// NewReal constructs (-1)^sign * c * 2^exp, canonicalizing the result:
// trailing zero bits of c are absorbed into exp, and a zero c always
// yields the canonical zero regardless of sign or exp.
func NewReal(sign bool, exp int, c *big.Int) RFloat {
	cc := new(big.Int).Set(c)
	if cc.Sign() == 0 {
		return Zero()
	}
	if tz := imath.TrailingZeroBits(cc); tz > 0 {
		cc = imath.Shr(cc, tz)
		exp += int(tz)
	}
	return RFloat{kind: kindReal, sign: sign, exp: exp, c: cc}
}

// rawReal constructs (-1)^sign * c * 2^exp without canonicalizing.
// Used internally by Split, where the exponent must land exactly at a
// requested cut point even if the resulting significand happens to have
// trailing zero bits.
func rawReal(sign bool, exp int, c *big.Int) RFloat {
	return RFloat{kind: kindReal, sign: sign, exp: exp, c: new(big.Int).Set(c)}
}

// Radix implements xreal.Real.
func (RFloat) Radix() int { return 2 }

// Sign implements xreal.Real. Defined for zero, finite non-zero, and
// infinite values; undefined for NaN.
func (r RFloat) Sign() (bool, bool) {
	switch r.kind {
	case kindReal:
		return r.sign, true
	case kindPosInf:
		return false, true
	case kindNegInf:
		return true, true
	default:
		return false, false
	}
}

// Exp implements xreal.Real. Only defined for finite, non-zero values.
func (r RFloat) Exp() (int, bool) {
	if r.kind != kindReal || r.c.Sign() == 0 {
		return 0, false
	}
	return r.exp, true
}

// E implements xreal.Real. Only defined for finite, non-zero values.
func (r RFloat) E() (int, bool) {
	if r.kind != kindReal || r.c.Sign() == 0 {
		return 0, false
	}
	return r.exp + r.c.BitLen() - 1, true
}

// N implements xreal.Real. Only defined for finite, non-zero values.
func (r RFloat) N() (int, bool) {
	exp, ok := r.Exp()
	if !ok {
		return 0, false
	}
	return exp - 1, true
}

// C implements xreal.Real. Defined for zero and finite non-zero values
// (returns 0 for zero); undefined for infinities and NaN.
func (r RFloat) C() (*big.Int, bool) {
	if r.kind != kindReal {
		return nil, false
	}
	return new(big.Int).Set(r.c), true
}

// M returns the signed integer significand: C() negated when the value
// is negative. Same domain as C.
func (r RFloat) M() (*big.Int, bool) {
	c, ok := r.C()
	if !ok {
		return nil, false
	}
	if r.sign {
		c.Neg(c)
	}
	return c, true
}

// Prec implements xreal.Real. Defined for zero and finite non-zero
// values (0 for zero); undefined for infinities and NaN.
func (r RFloat) Prec() (uint, bool) {
	if r.kind != kindReal {
		return 0, false
	}
	return uint(r.c.BitLen()), true
}

// IsNaR implements xreal.Real.
func (r RFloat) IsNaR() bool { return r.kind == kindNaN }

// IsFinite implements xreal.Real.
func (r RFloat) IsFinite() bool { return r.kind == kindReal }

// IsInfinite implements xreal.Real.
func (r RFloat) IsInfinite() bool { return r.kind == kindPosInf || r.kind == kindNegInf }

// IsZero implements xreal.Real.
func (r RFloat) IsZero() bool { return r.kind == kindReal && r.c.Sign() == 0 }

// IsNegative implements xreal.Real. Zero is never negative regardless of
// its internal sign bit (there is no negative zero at this layer).
func (r RFloat) IsNegative() (bool, bool) {
	switch r.kind {
	case kindReal:
		if r.c.Sign() == 0 {
			return false, true
		}
		return r.sign, true
	case kindPosInf:
		return false, true
	case kindNegInf:
		return true, true
	default:
		return false, false
	}
}

// IsNumerical implements xreal.Real.
func (r RFloat) IsNumerical() bool { return r.kind != kindNaN }

// signBit returns the raw sign bit for values where Sign() is defined,
// including zero's stored (always-false) bit; false for NaN.
func (r RFloat) signBit() bool {
	switch r.kind {
	case kindReal:
		return r.sign
	case kindPosInf:
		return false
	case kindNegInf:
		return true
	default:
		return false
	}
}

// Bit reports whether the binary digit at absolute position pos is set
// in this value's exact expansion. Always false outside the
// significant-digit range, for zero, and for non-finite values.
func (r RFloat) Bit(pos int) bool {
	if r.kind != kindReal || r.c.Sign() == 0 {
		return false
	}
	e := r.exp + r.c.BitLen() - 1
	if pos < r.exp || pos > e {
		return false
	}
	return r.c.Bit(pos-r.exp) == 1
}
