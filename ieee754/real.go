package ieee754

import (
	"math/big"

	"github.com/trippwill/go-numform/xreal"
)

var _ xreal.Real = Value{}

func (Value) Radix() int { return 2 }

func (v Value) Sign() (bool, bool) {
	switch v.kind {
	case valNaN:
		return false, false
	default:
		return v.sign, true
	}
}

func (v Value) Exp() (int, bool) {
	switch v.kind {
	case valSubnormal:
		return v.ctx.expMin, true
	case valNormal:
		return v.exp, true
	default:
		return 0, false
	}
}

func (v Value) E() (int, bool) {
	switch v.kind {
	case valSubnormal:
		return v.ctx.expMin - 1 + v.c.BitLen(), true
	case valNormal:
		return v.exp - 1 + v.c.BitLen(), true
	default:
		return 0, false
	}
}

func (v Value) N() (int, bool) {
	switch v.kind {
	case valSubnormal:
		return v.ctx.expMin - 1, true
	case valNormal:
		return v.exp - 1, true
	default:
		return 0, false
	}
}

func (v Value) C() (*big.Int, bool) {
	switch v.kind {
	case valSubnormal, valNormal:
		return new(big.Int).Set(v.c), true
	default:
		return nil, false
	}
}

func (v Value) M() (*big.Int, bool) {
	c, ok := v.C()
	if !ok {
		return nil, false
	}
	if v.sign {
		c.Neg(c)
	}
	return c, true
}

func (v Value) Prec() (uint, bool) {
	switch v.kind {
	case valSubnormal, valNormal:
		return uint(v.c.BitLen()), true
	default:
		return 0, false
	}
}

func (v Value) IsNaR() bool { return v.kind == valNaN }

func (v Value) IsFinite() bool {
	switch v.kind {
	case valPosZero, valNegZero, valSubnormal, valNormal:
		return true
	default:
		return false
	}
}

// IsInfinite reports whether v is +Inf or -Inf. Deliberately distinct
// from !IsFinite(): NaN is neither finite nor infinite.
func (v Value) IsInfinite() bool { return v.kind == valPosInf || v.kind == valNegInf }

func (v Value) IsZero() bool { return v.kind == valPosZero || v.kind == valNegZero }

func (v Value) IsNegative() (bool, bool) {
	switch v.kind {
	case valPosZero, valNegZero, valNaN:
		return false, false
	default:
		return v.sign, true
	}
}

func (v Value) IsNumerical() bool { return v.kind != valNaN }
