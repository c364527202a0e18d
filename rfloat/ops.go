package rfloat

import "math/big"

// toRat converts a finite RFloat to an exact big.Rat for comparison and
// decimal rendering. r must be finite.
func (r RFloat) toRat() *big.Rat {
	c, _ := r.C()
	rat := new(big.Rat).SetInt(c)
	if r.exp >= 0 {
		scale := new(big.Int).Lsh(big.NewInt(1), uint(r.exp))
		rat.Mul(rat, new(big.Rat).SetInt(scale))
	} else {
		scale := new(big.Int).Lsh(big.NewInt(1), uint(-r.exp))
		rat.Quo(rat, new(big.Rat).SetInt(scale))
	}
	if r.sign {
		rat.Neg(rat)
	}
	return rat
}

// Cmp totally orders two RFloat values: NaN sorts as incomparable and
// reports 0 from Cmp while ok is false. -Inf < finite < +Inf, with
// finite values compared exactly via big.Rat.
func (r RFloat) Cmp(other RFloat) (result int, ok bool) {
	if r.IsNaR() || other.IsNaR() {
		return 0, false
	}

	rank := func(v RFloat) int {
		switch v.kind {
		case kindNegInf:
			return 0
		case kindReal:
			return 1
		case kindPosInf:
			return 2
		}
		return 1
	}
	rr, or := rank(r), rank(other)
	if rr != or {
		if rr < or {
			return -1, true
		}
		return 1, true
	}
	if r.kind != kindReal {
		// both infinities of the same sign
		return 0, true
	}
	return r.toRat().Cmp(other.toRat()), true
}

// Equal reports whether r and other denote the same numerical value.
// NaN is never equal to anything, including another NaN.
func (r RFloat) Equal(other RFloat) bool {
	c, ok := r.Cmp(other)
	return ok && c == 0
}

// StructEqual reports whether r and other have identical internal
// representations (same kind, sign, exponent, and significand bits),
// as opposed to Equal's numerical equivalence. Useful for asserting
// canonical form in tests.
func (r RFloat) StructEqual(other RFloat) bool {
	if r.kind != other.kind {
		return false
	}
	if r.kind != kindReal {
		return true
	}
	if r.sign != other.sign || r.exp != other.exp {
		return false
	}
	return r.c.Cmp(other.c) == 0
}

// Neg returns the exact negation of r. Infinities swap sign; NaN and
// zero are returned unchanged (zero has no sign at this layer).
func (r RFloat) Neg() RFloat {
	switch r.kind {
	case kindReal:
		if r.c.Sign() == 0 {
			return r
		}
		return rawReal(!r.sign, r.exp, r.c)
	case kindPosInf:
		return NegInfinity()
	case kindNegInf:
		return PosInfinity()
	default:
		return r
	}
}

// Add returns the exact sum of r and other. Exact because RFloat
// arithmetic here is not rounded to any format; callers round the
// result through a Context afterward. Inf + -Inf and any operation
// involving NaN yield NaN.
func (r RFloat) Add(other RFloat) RFloat {
	if r.IsNaR() || other.IsNaR() {
		return NaN()
	}
	if r.IsInfinite() || other.IsInfinite() {
		if r.IsInfinite() && other.IsInfinite() {
			rs, _ := r.Sign()
			os, _ := other.Sign()
			if rs != os {
				return NaN()
			}
			return r
		}
		if r.IsInfinite() {
			return r
		}
		return other
	}
	if r.IsZero() {
		return other
	}
	if other.IsZero() {
		return r
	}

	rc, _ := r.C()
	oc, _ := other.C()
	if r.sign {
		rc = new(big.Int).Neg(rc)
	}
	if other.sign {
		oc = new(big.Int).Neg(oc)
	}

	minExp := r.exp
	if other.exp < minExp {
		minExp = other.exp
	}
	rc = new(big.Int).Lsh(rc, uint(r.exp-minExp))
	oc = new(big.Int).Lsh(oc, uint(other.exp-minExp))

	sum := new(big.Int).Add(rc, oc)
	if sum.Sign() == 0 {
		return Zero()
	}
	neg := sum.Sign() < 0
	sum.Abs(sum)
	return NewReal(neg, minExp, sum)
}

// Mul returns the exact product of r and other. 0 * Inf yields NaN, as
// does any operation involving NaN; otherwise infinities propagate with
// the product-of-signs rule.
func (r RFloat) Mul(other RFloat) RFloat {
	if r.IsNaR() || other.IsNaR() {
		return NaN()
	}
	if r.IsInfinite() || other.IsInfinite() {
		if (r.IsInfinite() && other.IsZero()) || (other.IsInfinite() && r.IsZero()) {
			return NaN()
		}
		rneg, _ := r.IsNegative()
		oneg, _ := other.IsNegative()
		if rneg != oneg {
			return NegInfinity()
		}
		return PosInfinity()
	}
	if r.IsZero() || other.IsZero() {
		return Zero()
	}

	rc, _ := r.C()
	oc, _ := other.C()
	c := new(big.Int).Mul(rc, oc)
	sign := r.sign != other.sign
	return NewReal(sign, r.exp+other.exp, c)
}
