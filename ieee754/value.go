package ieee754

import (
	"math/big"

	"github.com/trippwill/go-numform/rfloat"
	"github.com/trippwill/go-numform/xflags"
)

type valKind uint8

const (
	valPosZero valKind = iota
	valNegZero
	valSubnormal
	valNormal
	valPosInf
	valNegInf
	valNaN
)

// Value is an IEEE-754 binary floating-point value: the classified
// result of rounding some extended-real value into a fixed (es, nbits)
// format, together with the exception flags raised and a reference to
// the context that produced it.
type Value struct {
	ctx     Context
	kind    valKind
	sign    bool
	exp     int
	c       *big.Int
	quiet   bool
	payload *big.Int
	flags   xflags.Exceptions
}

// Context returns the format context that produced v.
func (v Value) Context() Context { return v.ctx }

// Flags returns the exceptions raised while rounding v.
func (v Value) Flags() xflags.Exceptions { return v.flags }

// IsSubnormal reports whether v is a subnormal (denormalized) value.
func (v Value) IsSubnormal() bool { return v.kind == valSubnormal }

// IsNormal reports whether v is a normal (non-subnormal, finite,
// non-zero) value.
func (v Value) IsNormal() bool { return v.kind == valNormal }

// IsNaN reports whether v is NaN.
func (v Value) IsNaN() bool { return v.kind == valNaN }

// NaNQuiet reports whether v is a quiet NaN, and whether v is a NaN at
// all.
func (v Value) NaNQuiet() (quiet, ok bool) {
	if v.kind != valNaN {
		return false, false
	}
	return v.quiet, true
}

// NaNPayload returns v's NaN payload, and whether v is a NaN at all.
func (v Value) NaNPayload() (*big.Int, bool) {
	if v.kind != valNaN {
		return nil, false
	}
	return new(big.Int).Set(v.payload), true
}

// NewNaN constructs a NaN value under ctx with the given quiet bit and
// payload. At least one of quiet or a non-zero payload must hold; this
// is a well-formedness requirement on the bit pattern, not a numerical
// exception, so it panics rather than returning an error.
func NewNaN(ctx Context, quiet bool, sign bool, payload *big.Int) Value {
	if !quiet && payload.Sign() == 0 {
		panic("ieee754: NaN requires quiet=true or a non-zero payload")
	}
	return Value{ctx: ctx, kind: valNaN, sign: sign, quiet: quiet, payload: new(big.Int).Set(payload)}
}

// RFloat converts v to its canonical extended-real equivalent. Signed
// zeros both map to the unsigned canonical zero; NaN maps to NaN.
func (v Value) RFloat() rfloat.RFloat {
	switch v.kind {
	case valPosZero, valNegZero:
		return rfloat.Zero()
	case valSubnormal:
		return rfloat.NewReal(v.sign, v.ctx.expMin, v.c)
	case valNormal:
		return rfloat.NewReal(v.sign, v.exp, v.c)
	case valPosInf:
		return rfloat.PosInfinity()
	case valNegInf:
		return rfloat.NegInfinity()
	default:
		return rfloat.NaN()
	}
}
