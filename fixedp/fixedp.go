// Package fixedp implements the fixed-point wrapper: a fixed scale and
// bit width, signed or unsigned, with a configurable overflow policy
// (wrap or saturate). Unlike the floating formats, fixed-point numbers
// have no concept of underflow — a magnitude below the smallest nonzero
// quantum rounds to a multiple of the quantum under the context's
// rounding mode, same as any other value.
package fixedp

import (
	"math/big"

	"github.com/trippwill/go-numform/imath"
	"github.com/trippwill/go-numform/rfloat"
	"github.com/trippwill/go-numform/xerrors"
	"github.com/trippwill/go-numform/xflags"
)

// Overflow selects how an out-of-range rounded result is brought back
// into range.
type Overflow uint8

const (
	// Wrap reduces the result modulo 2^nbits, matching two's-complement
	// integer overflow for signed formats.
	Wrap Overflow = iota
	// Saturate clamps the result to MaxVal or MinVal.
	Saturate
)

// Context describes one fixed-point format: signed or unsigned, a
// power-of-two scale (the place value of the least significant bit),
// a total bit width, a rounding mode, and an overflow policy.
type Context struct {
	signed    bool
	scale     int
	nbits     uint
	mode      rfloat.RoundingMode
	overflow  Overflow
}

// NewContext validates nbits (>=1, >=2 if signed) and returns a ready
// Context.
func NewContext(signed bool, scale int, nbits uint, mode rfloat.RoundingMode, overflow Overflow) (Context, error) {
	if nbits < 1 {
		return Context{}, xerrors.New("fixedp.NewContext", "nbits must be >= 1")
	}
	if signed && nbits < 2 {
		return Context{}, xerrors.New("fixedp.NewContext", "signed formats require nbits >= 2")
	}
	return Context{signed: signed, scale: scale, nbits: nbits, mode: mode, overflow: overflow}, nil
}

// MustNewContext is NewContext but panics on error.
func MustNewContext(signed bool, scale int, nbits uint, mode rfloat.RoundingMode, overflow Overflow) Context {
	return xerrors.Must(NewContext(signed, scale, nbits, mode, overflow))
}

func (c Context) Signed() bool                     { return c.signed }
func (c Context) Scale() int                       { return c.scale }
func (c Context) NBits() uint                      { return c.nbits }
func (c Context) RoundingMode() rfloat.RoundingMode { return c.mode }
func (c Context) OverflowPolicy() Overflow          { return c.overflow }

// MaxVal returns the largest representable value as an exact RFloat.
func (c Context) MaxVal() rfloat.RFloat {
	var bound *big.Int
	if c.signed {
		bound = imath.BitMask(c.nbits - 1)
	} else {
		bound = imath.BitMask(c.nbits)
	}
	return rfloat.NewReal(false, c.scale, bound)
}

// MinVal returns the smallest representable value as an exact RFloat.
func (c Context) MinVal() rfloat.RFloat {
	if !c.signed {
		return rfloat.Zero()
	}
	bound := imath.Shl(big.NewInt(1), c.nbits-1)
	return rfloat.NewReal(true, c.scale, bound)
}

// Quantum returns 2^scale, the smallest representable nonzero magnitude
// step.
func (c Context) Quantum() rfloat.RFloat {
	return rfloat.NewReal(false, c.scale, big.NewInt(1))
}

func (c Context) toKernel() rfloat.Context {
	return rfloat.NewContext().WithMinN(c.scale - 1).WithRoundingMode(c.mode)
}

// Value is a fixed-point value: the result of rounding and
// range-adjusting some extended-real value into this context's format.
type Value struct {
	ctx   Context
	val   rfloat.RFloat
	flags xflags.Exceptions
}

// RFloat returns the underlying canonical value.
func (v Value) RFloat() rfloat.RFloat { return v.val }

// Flags returns the exceptions raised while rounding this value.
func (v Value) Flags() xflags.Exceptions { return v.flags }

// Context returns the context that produced this value.
func (v Value) Context() Context { return v.ctx }

// String renders v using RFloat's decimal rendering.
func (v Value) String() string { return v.val.String() }

// Round rounds r into this fixed-point context: rounds to a multiple of
// 2^scale using the context's rounding mode, then brings an
// out-of-range result back in range
// per the overflow policy. NaN and infinite inputs are invalid in a
// fixed-point format (there is no representable encoding for them);
// they are reported via the Invalid flag and pass through as zero.
//
// Rounding a fixed-point value below minval never sets any underflow
// flag: fixed-point has no underflow concept, only overflow at the top
// and bottom of its range. The below-minval case still rounds to a
// multiple of the quantum like any other value; it is the
// overflow policy (wrap/saturate), not an underflow classification,
// that decides the final result.
func (c Context) Round(r rfloat.RFloat) Value {
	if r.IsNaR() || r.IsInfinite() {
		return Value{ctx: c, val: rfloat.Zero(), flags: xflags.Exceptions{Invalid: true}}
	}

	rounded, kflags := c.toKernel().Round(r)
	flags := xflags.Exceptions{Inexact: kflags.Inexact}

	maxVal, minVal := c.MaxVal(), c.MinVal()
	if cmp, ok := rounded.Cmp(maxVal); ok && cmp > 0 {
		flags.Overflow = true
		return c.overflowResult(rounded, maxVal, minVal, flags)
	}
	if cmp, ok := rounded.Cmp(minVal); ok && cmp < 0 {
		flags.Overflow = true
		return c.overflowResult(rounded, maxVal, minVal, flags)
	}

	return Value{ctx: c, val: rounded, flags: flags}
}

func (c Context) overflowResult(rounded, maxVal, minVal rfloat.RFloat, flags xflags.Exceptions) Value {
	if c.overflow == Saturate {
		if cmp, _ := rounded.Cmp(maxVal); cmp > 0 {
			return Value{ctx: c, val: maxVal, flags: flags}
		}
		return Value{ctx: c, val: minVal, flags: flags}
	}
	return Value{ctx: c, val: c.wrap(rounded), flags: flags}
}

// wrap reduces rounded's integer representation (in units of the
// quantum) modulo 2^nbits, following two's-complement wraparound for
// signed formats.
func (c Context) wrap(rounded rfloat.RFloat) rfloat.RFloat {
	m, _ := rounded.M() // signed integer significand
	exp, ok := rounded.Exp()
	if !ok {
		exp = c.scale
	}
	raw := new(big.Int).Lsh(m, uint(exp-c.scale)) // signed integer in units of quantum
	modulus := imath.Shl(big.NewInt(1), c.nbits)

	if !c.signed {
		wrapped := new(big.Int).Mod(raw, modulus)
		return rfloat.NewReal(false, c.scale, wrapped)
	}

	half := imath.Shl(big.NewInt(1), c.nbits-1)
	wrapped := new(big.Int).Add(raw, half)
	wrapped.Mod(wrapped, modulus)
	wrapped.Sub(wrapped, half)
	if wrapped.Sign() < 0 {
		return rfloat.NewReal(true, c.scale, new(big.Int).Neg(wrapped))
	}
	return rfloat.NewReal(false, c.scale, wrapped)
}
