// Package bfloat implements a bounded-precision floating-point format:
// a fixed maximum significand width with an unbounded exponent range.
// It is the thinnest possible wrapper around the rfloat rounding
// kernel — no overflow or subnormal behavior exists because the
// exponent is never clamped.
package bfloat

import (
	"github.com/trippwill/go-numform/rfloat"
	"github.com/trippwill/go-numform/xflags"
)

// Context configures bounded-precision rounding: a maximum significand
// bit width and a rounding mode. There is no minimum exponent — values
// round purely on precision, never on magnitude.
type Context struct {
	precision uint
	mode      rfloat.RoundingMode
}

// NewContext returns a context rounding to precision significant bits
// using mode.
func NewContext(precision uint, mode rfloat.RoundingMode) Context {
	return Context{precision: precision, mode: mode}
}

// Precision returns the configured significand bit width.
func (c Context) Precision() uint { return c.precision }

// RoundingMode returns the configured rounding mode.
func (c Context) RoundingMode() rfloat.RoundingMode { return c.mode }

func (c Context) toKernel() rfloat.Context {
	return rfloat.NewContext().WithMaxPrecision(c.precision).WithRoundingMode(c.mode)
}

// Value is a bounded-precision float: a canonical RFloat with the
// exception flags raised while producing it and a reference to the
// context that produced it.
type Value struct {
	ctx   Context
	val   rfloat.RFloat
	flags xflags.Exceptions
}

// Round rounds r to this context's precision, returning the resulting
// Value. NaN and infinite inputs pass through unrounded with no flags
// raised other than Invalid for NaN.
func (c Context) Round(r rfloat.RFloat) Value {
	if r.IsNaR() {
		return Value{ctx: c, val: rfloat.NaN(), flags: xflags.Exceptions{Invalid: true}}
	}
	if r.IsInfinite() {
		return Value{ctx: c, val: r}
	}

	rounded, flags := c.toKernel().Round(r)
	return Value{ctx: c, val: rounded, flags: flags}
}

// RFloat returns the underlying canonical value.
func (v Value) RFloat() rfloat.RFloat { return v.val }

// Flags returns the exceptions raised while rounding this value.
func (v Value) Flags() xflags.Exceptions { return v.flags }

// Context returns the rounding context that produced this value.
func (v Value) Context() Context { return v.ctx }

// IsFinite reports whether v holds a finite (non-infinite, non-NaN)
// value.
func (v Value) IsFinite() bool { return v.val.IsFinite() }

// IsInfinite reports whether v holds +Inf or -Inf.
//
// This must NOT simply mirror IsFinite's negation: a NaN value is
// neither finite nor infinite, and conflating the two causes NaN to be
// misreported as infinite.
func (v Value) IsInfinite() bool { return v.val.IsInfinite() }

// IsNaN reports whether v holds NaN.
func (v Value) IsNaN() bool { return v.val.IsNaR() }

// IsZero reports whether v holds zero.
func (v Value) IsZero() bool { return v.val.IsZero() }

// String renders v using RFloat's decimal rendering.
func (v Value) String() string { return v.val.String() }
