// Package xflags defines the exception-flag record shared by every
// rounding wrapper (bfloat, ieee754, fixedp). Each wrapper only ever
// sets the subset of fields its format defines; the rest stay false.
package xflags

// Exceptions records independently-settable numerical exceptions raised
// while rounding or encoding a value. Never halts an operation — it is
// returned alongside the value so the caller can inspect the arithmetic
// outcome.
type Exceptions struct {
	// Invalid reports an operation with no useful definable result
	// (e.g. rounding NaN, or 0 * Inf upstream of the kernel).
	Invalid bool

	// DivZero reports an infinite result produced from finite
	// arguments, e.g. a finite value divided by zero. The kernel itself
	// never sets this — it is a signal the caller supplies when the
	// value it hands to a wrapper already represents such a result.
	DivZero bool

	// Overflow reports that the result exceeded in magnitude what the
	// rounded result would have been had the exponent range been
	// unbounded.
	Overflow bool

	// UnderflowPre reports a non-zero result that would lie strictly
	// between -2^emin and +2^emin had the exponent range been unbounded
	// (computed before rounding to the target precision), and the
	// result is also inexact.
	UnderflowPre bool

	// UnderflowPost is like UnderflowPre, but computed after rounding to
	// the target precision, and the result is also inexact.
	UnderflowPost bool

	// Inexact reports that the result would differ had both the
	// exponent range and precision been unbounded.
	Inexact bool

	// Carry reports that incrementing the mantissa during rounding
	// overflowed its bit width, bumping the exponent by one. Not raised
	// if the final result is subnormal.
	Carry bool

	// Denorm reports that at least one input argument was subnormal.
	Denorm bool

	// TinyPre is like UnderflowPre but raised regardless of Inexact:
	// UnderflowPre == TinyPre && Inexact.
	TinyPre bool

	// TinyPost is like UnderflowPost but raised regardless of Inexact:
	// UnderflowPost == TinyPost && Inexact.
	TinyPost bool
}

// Any reports whether any flag is set.
func (e Exceptions) Any() bool {
	return e.Invalid || e.DivZero || e.Overflow || e.UnderflowPre ||
		e.UnderflowPost || e.Inexact || e.Carry || e.Denorm ||
		e.TinyPre || e.TinyPost
}

// Merge returns the flag-wise OR of e and other.
func (e Exceptions) Merge(other Exceptions) Exceptions {
	return Exceptions{
		Invalid:       e.Invalid || other.Invalid,
		DivZero:       e.DivZero || other.DivZero,
		Overflow:      e.Overflow || other.Overflow,
		UnderflowPre:  e.UnderflowPre || other.UnderflowPre,
		UnderflowPost: e.UnderflowPost || other.UnderflowPost,
		Inexact:       e.Inexact || other.Inexact,
		Carry:         e.Carry || other.Carry,
		Denorm:        e.Denorm || other.Denorm,
		TinyPre:       e.TinyPre || other.TinyPre,
		TinyPost:      e.TinyPost || other.TinyPost,
	}
}
