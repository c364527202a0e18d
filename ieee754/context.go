// Package ieee754 implements the binary IEEE-754 floating-point
// format: a fixed exponent field width (es) and total bit width
// (nbits), with subnormals, signed zeros, infinities, and NaN payloads,
// wrapping the rfloat rounding kernel and adding bit-pattern
// encoding/decoding.
package ieee754

import (
	"math/big"

	"github.com/trippwill/go-numform/imath"
	"github.com/trippwill/go-numform/rfloat"
	"github.com/trippwill/go-numform/xerrors"
	"github.com/trippwill/go-numform/xflags"
)

// Context describes one IEEE-754 binary format: es exponent bits,
// nbits total bits. Derived quantities (MaxM, Emax, Emin, ExpMin) are
// computed once at construction.
type Context struct {
	es, nbits  uint
	maxM       uint
	emax, emin int
	expMin     int
	mode       rfloat.RoundingMode
}

// NewContext validates es and nbits (es >= 2, nbits >= es+2, per the
// standard's minimum viable format) and returns a ready-to-use Context.
// Returns an error rather than panicking: unlike a missing rounding
// bound, a malformed format shape is something a caller may need to
// recover from (e.g. when deriving contexts from untrusted configuration).
func NewContext(es, nbits uint, mode rfloat.RoundingMode) (Context, error) {
	if es < 2 {
		return Context{}, xerrors.New("ieee754.NewContext", "es must be >= 2")
	}
	if nbits < es+2 {
		return Context{}, xerrors.New("ieee754.NewContext", "nbits must be >= es+2")
	}

	maxM := nbits - es - 1
	emax := int(1)<<(es-1) - 1
	emin := 1 - emax
	expMin := emin - int(maxM)

	return Context{
		es: es, nbits: nbits,
		maxM: maxM, emax: emax, emin: emin, expMin: expMin,
		mode: mode,
	}, nil
}

// MustNewContext is NewContext but panics on error; for call sites that
// construct contexts from compile-time-known constants (e.g. the
// standard binary16/32/64 formats) where an error would indicate a
// coding mistake, not a runtime condition.
func MustNewContext(es, nbits uint, mode rfloat.RoundingMode) Context {
	return xerrors.Must(NewContext(es, nbits, mode))
}

// Binary16 returns the IEEE-754 half-precision format (es=5, nbits=16).
func Binary16(mode rfloat.RoundingMode) Context { return MustNewContext(5, 16, mode) }

// Binary32 returns the IEEE-754 single-precision format (es=8, nbits=32).
func Binary32(mode rfloat.RoundingMode) Context { return MustNewContext(8, 32, mode) }

// Binary64 returns the IEEE-754 double-precision format (es=11, nbits=64).
func Binary64(mode rfloat.RoundingMode) Context { return MustNewContext(11, 64, mode) }

func (c Context) ES() uint                          { return c.es }
func (c Context) NBits() uint                       { return c.nbits }
func (c Context) MaxM() uint                        { return c.maxM }
func (c Context) Emax() int                         { return c.emax }
func (c Context) Emin() int                         { return c.emin }
func (c Context) ExpMin() int                       { return c.expMin }
func (c Context) RoundingMode() rfloat.RoundingMode { return c.mode }

func (c Context) toKernel() rfloat.Context {
	return rfloat.NewContext().
		WithMaxPrecision(c.maxM + 1).
		WithMinN(c.expMin - 1).
		WithRoundingMode(c.mode)
}

// Round rounds r into this context's format, classifying the result
// into a Value and setting the IEEE exception flags described in
// package ieee754's wrapper responsibilities: overflow to infinity or
// finite max, subnormalization with tiny_pre/tiny_post, and carry
// suppression for subnormal results.
func (c Context) Round(r rfloat.RFloat) Value {
	if r.IsNaR() {
		return Value{ctx: c, kind: valNaN, quiet: true, payload: big.NewInt(0), flags: xflags.Exceptions{Invalid: true}}
	}
	if r.IsInfinite() {
		sign, _ := r.Sign()
		if sign {
			return Value{ctx: c, kind: valNegInf}
		}
		return Value{ctx: c, kind: valPosInf}
	}
	if r.IsZero() {
		sign, _ := r.IsNegative()
		if sign {
			return Value{ctx: c, kind: valNegZero}
		}
		return Value{ctx: c, kind: valPosZero}
	}

	negative, _ := r.IsNegative()
	preE, _ := r.E()
	preTiny := preE < c.emin

	rounded, kflags := c.toKernel().Round(r)

	if rounded.IsZero() {
		if negative {
			return Value{ctx: c, kind: valNegZero, flags: xflags.Exceptions{
				Inexact: kflags.Inexact, TinyPre: true, TinyPost: true,
				UnderflowPre: true && kflags.Inexact, UnderflowPost: true && kflags.Inexact,
			}}
		}
		return Value{ctx: c, kind: valPosZero, flags: xflags.Exceptions{
			Inexact: kflags.Inexact, TinyPre: true, TinyPost: true,
			UnderflowPre: true && kflags.Inexact, UnderflowPost: true && kflags.Inexact,
		}}
	}

	e, _ := rounded.E()
	c2, _ := rounded.C()

	if e > c.emax {
		isNearest, direction := c.mode.ToDirection(negative)
		goesInfinite := isNearest || direction == rfloat.DirAwayZero
		if goesInfinite {
			if negative {
				return Value{ctx: c, kind: valNegInf, flags: xflags.Exceptions{Overflow: true, Inexact: true}}
			}
			return Value{ctx: c, kind: valPosInf, flags: xflags.Exceptions{Overflow: true, Inexact: true}}
		}
		// direction rounds toward zero: clamp to the largest finite
		// magnitude representable, preserving sign.
		maxC := imath.BitMask(c.maxM + 1)
		return Value{ctx: c, kind: valNormal, sign: negative, exp: c.emax - int(c.maxM), c: maxC,
			flags: xflags.Exceptions{Overflow: true, Inexact: true}}
	}

	if e < c.emin {
		tinyPost := true
		tinyPre := preTiny
		// A subnormal's significand is always expressed at the fixed
		// place value 2^expMin, regardless of how far canonicalization
		// shifted the kernel's rounded exponent.
		exp2, _ := rounded.Exp()
		if exp2 > c.expMin {
			c2 = imath.Shl(c2, uint(exp2-c.expMin))
		}
		return Value{ctx: c, kind: valSubnormal, sign: negative, c: c2, flags: xflags.Exceptions{
			Inexact:       kflags.Inexact,
			Carry:         false,
			TinyPre:       tinyPre,
			TinyPost:      tinyPost,
			UnderflowPre:  tinyPre && kflags.Inexact,
			UnderflowPost: tinyPost && kflags.Inexact,
		}}
	}

	exp, _ := rounded.Exp()
	// A normal significand carries all maxM+1 bits, including the
	// implicit leading one, as IntoBits and Decode expect.
	if shift := int(c.maxM) + 1 - c2.BitLen(); shift > 0 {
		c2 = imath.Shl(c2, uint(shift))
		exp -= shift
	}
	return Value{ctx: c, kind: valNormal, sign: negative, exp: exp, c: c2, flags: xflags.Exceptions{
		Inexact: kflags.Inexact,
		Carry:   kflags.Carry,
	}}
}
