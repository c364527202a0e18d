package rfloat

import (
	"math/big"
	"testing"
)

func real(sign bool, exp int, c int64) RFloat {
	return NewReal(sign, exp, big.NewInt(c))
}

func TestRoundTrivial(t *testing.T) {
	ctx := NewContext().WithMaxPrecision(1)

	rounded, _ := ctx.Round(Zero())
	if !rounded.IsZero() {
		t.Errorf("round(0) should be 0")
	}

	if r, _ := ctx.Round(PosInfinity()); !r.IsInfinite() {
		t.Errorf("round(+Inf) should be +Inf")
	}
	if r, _ := ctx.Round(NegInfinity()); !r.IsInfinite() {
		t.Errorf("round(-Inf) should be -Inf")
	}
	if r, _ := ctx.Round(NaN()); !r.IsNaR() {
		t.Errorf("round(NaN) should be NaN")
	}
}

// round1 mirrors the teacher/original test helper: compute the split at
// the context's chosen n and the final rounded value together.
func round1(ctx Context, num RFloat) (rounded, lost RFloat) {
	n := ctx.RoundParams(num)
	split := NewSplit(num, n)
	rounded, _ = ctx.RoundFinalize(num, split)
	return rounded, split.Lost
}

func TestRoundFixed(t *testing.T) {
	one37 := real(false, -2, 7) // 1.75
	one12 := real(false, -1, 3) // 1.5
	one := One()
	three4 := real(false, -2, 3)
	one4 := real(false, -2, 1)
	zero := Zero()
	negOne := real(true, 0, 1)

	// 1 (min_n == -1) => 1
	ctx := NewContext().WithMinN(-1).WithRoundingMode(ToZero)
	rounded, lost := round1(ctx, one)
	if !rounded.Equal(One()) || !lost.IsZero() {
		t.Errorf("round(1, min_n=-1) = %v lost=%v; want 1, 0", rounded, lost)
	}

	// 1 (min_n == 0) => 0
	ctx = NewContext().WithMinN(0).WithRoundingMode(ToZero)
	rounded, lost = round1(ctx, one)
	if !rounded.Equal(zero) || !lost.Equal(one) {
		t.Errorf("round(1, min_n=0) = %v lost=%v; want 0, 1", rounded, lost)
	}

	// -1 (min_n == 0) => 0
	rounded, lost = round1(ctx, negOne)
	if !rounded.Equal(zero) || !lost.Equal(negOne) {
		t.Errorf("round(-1, min_n=0) = %v lost=%v; want 0, -1", rounded, lost)
	}

	// 1.75 (min_n == -1) => 1, lost 3/4
	ctx = NewContext().WithMinN(-1).WithRoundingMode(ToZero)
	rounded, lost = round1(ctx, one37)
	if !rounded.Equal(one) || !lost.Equal(three4) {
		t.Errorf("round(1.75, min_n=-1) = %v lost=%v; want 1, 3/4", rounded, lost)
	}

	// 1.75 (min_n == -2) => 1.5, lost 1/4
	ctx = NewContext().WithMinN(-2).WithRoundingMode(ToZero)
	rounded, lost = round1(ctx, one37)
	if !rounded.Equal(one12) || !lost.Equal(one4) {
		t.Errorf("round(1.75, min_n=-2) = %v lost=%v; want 1.5, 1/4", rounded, lost)
	}

	// 1 (min_n == 10) => 0
	ctx = NewContext().WithMinN(10).WithRoundingMode(ToZero)
	rounded, lost = round1(ctx, one)
	if !rounded.Equal(zero) || !lost.Equal(one) {
		t.Errorf("round(1, min_n=10) = %v lost=%v; want 0, 1", rounded, lost)
	}
}

func TestRoundFloat(t *testing.T) {
	one12 := real(false, -1, 3) // 3/2
	one14 := real(false, -2, 5) // 5/4
	one := One()
	one4 := real(false, -2, 1)

	// rounding 1.25 with 3 bits: exact
	ctx := NewContext().WithMaxPrecision(3)
	rounded, lost := round1(ctx, one14)
	if !rounded.Equal(one14) || !lost.IsZero() {
		t.Errorf("round(1.25, p=3) = %v lost=%v; want 1.25, 0", rounded, lost)
	}

	// rounding 1.25 with 2 bits, round-to-nearest: goes to 1
	ctx = NewContext().WithMaxPrecision(2)
	rounded, lost = round1(ctx, one14)
	if !rounded.Equal(one) || !lost.Equal(one4) {
		t.Errorf("round(1.25, p=2, nearest) = %v lost=%v; want 1, 1/4", rounded, lost)
	}

	// round-to-positive: goes to 3/2
	ctx = ctx.WithRoundingMode(ToPositive)
	rounded, _ = round1(ctx, one14)
	if !rounded.Equal(one12) {
		t.Errorf("round(1.25, p=2, ToPositive) = %v; want 3/2", rounded)
	}

	// round-to-negative: goes to 1
	ctx = ctx.WithRoundingMode(ToNegative)
	rounded, _ = round1(ctx, one14)
	if !rounded.Equal(one) {
		t.Errorf("round(1.25, p=2, ToNegative) = %v; want 1", rounded)
	}

	// round-to-even: goes to 1 (truncated coefficient 2 at 2^-1 is even, so it is kept)
	ctx = ctx.WithRoundingMode(ToEven)
	rounded, _ = round1(ctx, one14)
	if !rounded.Equal(one) {
		t.Errorf("round(1.25, p=2, ToEven) = %v; want 1", rounded)
	}

	// round-to-odd: goes to 3/2 (coefficient 3 is odd)
	ctx = ctx.WithRoundingMode(ToOdd)
	rounded, _ = round1(ctx, one14)
	if !rounded.Equal(one12) {
		t.Errorf("round(1.25, p=2, ToOdd) = %v; want 3/2", rounded)
	}
}

// TestRoundFloatBelowHalfNeverIncrements guards against a regression
// where a zero half bit with a nonzero bit further below it (here even
// below the quarter position) was misclassified as "more than halfway" and
// incorrectly rounded up. 33 * 2^-5 = 1.03125 is well below the halfway
// point between 1 and 1.25 (the nearest 3-bit-precision neighbors), so
// it must round down to 1, not up to 1.25.
func TestRoundFloatBelowHalfNeverIncrements(t *testing.T) {
	ctx := NewContext().WithMaxPrecision(3).WithRoundingMode(NearestTiesToEven)
	v := real(false, -5, 33) // 33/32 = 1.03125
	rounded, _ := round1(ctx, v)
	if !rounded.Equal(One()) {
		t.Errorf("round(1.03125, p=3) = %v; want 1", rounded)
	}
}

// TestCarryNeverSetWithoutMaxPrecision guards against a regression
// where a MinN-only context (unbounded precision) reported Carry when
// an exact-halfway tie rounded an all-ones coefficient up to the next
// power of two. With no precision bound there is nothing to overflow.
func TestCarryNeverSetWithoutMaxPrecision(t *testing.T) {
	ctx := NewContext().WithMinN(-1).WithRoundingMode(NearestTiesToAway)
	v := real(false, -1, 15) // 15/2 = 7.5, exactly halfway between 7 and 8
	rounded, flags := ctx.Round(v)
	if flags.Carry {
		t.Errorf("MinN-only context should never set Carry; flags = %+v", flags)
	}
	if !rounded.Equal(real(false, 0, 8)) {
		t.Errorf("round(7.5, min_n=-1, TiesToAway) = %v; want 8", rounded)
	}
}

func TestRoundParamsPanicsWithoutBound(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("RoundParams should panic when neither MaxPrecision nor MinN is set")
		}
	}()
	NewContext().RoundParams(One())
}
