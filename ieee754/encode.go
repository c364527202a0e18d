package ieee754

import (
	"math/big"

	"github.com/trippwill/go-numform/imath"
)

// IntoBits packs v into an nbits-wide unsigned integer following the
// IEEE-754 layout [sign | exp_field (es bits) | trailing (max_m bits)].
func (v Value) IntoBits() *big.Int {
	m := v.ctx.maxM
	var sign bool
	var unsigned *big.Int

	switch v.kind {
	case valPosZero:
		sign, unsigned = false, big.NewInt(0)
	case valNegZero:
		sign, unsigned = true, big.NewInt(0)
	case valSubnormal:
		sign, unsigned = v.sign, new(big.Int).Set(v.c)
	case valNormal:
		efield := imath.Shl(big.NewInt(int64(v.exp+int(m)+v.ctx.emax)), m)
		mfield := imath.And(v.c, imath.BitMask(m))
		sign, unsigned = v.sign, new(big.Int).Or(mfield, efield)
	case valPosInf:
		sign, unsigned = false, imath.Shl(imath.BitMask(v.ctx.es), m)
	case valNegInf:
		sign, unsigned = true, imath.Shl(imath.BitMask(v.ctx.es), m)
	case valNaN:
		efield := imath.Shl(imath.BitMask(v.ctx.es), m)
		var qfield *big.Int
		if v.quiet {
			qfield = imath.Shl(big.NewInt(1), m-1)
		} else {
			qfield = big.NewInt(0)
		}
		unsigned = new(big.Int).Or(v.payload, qfield)
		unsigned.Or(unsigned, efield)
		sign = v.sign
	}

	if sign {
		sfield := imath.Shl(big.NewInt(1), v.ctx.nbits-1)
		return new(big.Int).Or(unsigned, sfield)
	}
	return unsigned
}

// Decode unpacks an nbits-wide unsigned bit pattern into a Value under
// ctx. No flags are raised: decoding a bit pattern is not a rounding
// operation, only a classification.
func (ctx Context) Decode(bits *big.Int) Value {
	m := ctx.maxM
	sign := imath.TestBit(bits, ctx.nbits-1)
	unsigned := imath.And(bits, imath.BitMask(ctx.nbits-1))

	efield := imath.Shr(unsigned, m)
	mfield := imath.And(unsigned, imath.BitMask(m))
	allOnes := imath.BitMask(ctx.es)

	switch {
	case efield.Sign() == 0:
		if mfield.Sign() == 0 {
			if sign {
				return Value{ctx: ctx, kind: valNegZero}
			}
			return Value{ctx: ctx, kind: valPosZero}
		}
		return Value{ctx: ctx, kind: valSubnormal, sign: sign, c: mfield}
	case efield.Cmp(allOnes) == 0:
		if mfield.Sign() == 0 {
			if sign {
				return Value{ctx: ctx, kind: valNegInf}
			}
			return Value{ctx: ctx, kind: valPosInf}
		}
		quiet := imath.TestBit(mfield, m-1)
		payload := imath.And(mfield, imath.BitMask(m-1))
		return Value{ctx: ctx, kind: valNaN, sign: sign, quiet: quiet, payload: payload}
	default:
		exp := int(efield.Int64()) - ctx.emax - int(m)
		c := new(big.Int).Or(mfield, imath.Shl(big.NewInt(1), m))
		return Value{ctx: ctx, kind: valNormal, sign: sign, exp: exp, c: c}
	}
}
