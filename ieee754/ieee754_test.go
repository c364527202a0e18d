package ieee754

import (
	"math/big"
	"testing"

	"github.com/trippwill/go-numform/rfloat"
)

func TestOverflowToInfinity(t *testing.T) {
	ctx := Binary16(rfloat.NearestTiesToEven)
	v := ctx.Round(rfloat.NewReal(false, 0, big.NewInt(65520)))
	if !v.IsInfinite() {
		t.Fatalf("rounding 65520 under binary16 should overflow to infinity, got %v", v.RFloat())
	}
	if !v.Flags().Overflow || !v.Flags().Inexact {
		t.Errorf("overflow flags = %+v; want Overflow and Inexact set", v.Flags())
	}
}

func TestSmallestSubnormal(t *testing.T) {
	ctx := Binary16(rfloat.NearestTiesToEven)
	// 2^-24 is binary16's smallest subnormal.
	v := ctx.Round(rfloat.NewReal(false, -24, big.NewInt(1)))
	if !v.IsSubnormal() {
		t.Fatalf("2^-24 should round to a subnormal under binary16")
	}
	c, ok := v.C()
	if !ok || c.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("subnormal significand = %v; want 1", c)
	}
	if !v.Flags().TinyPost {
		t.Errorf("expected TinyPost set")
	}
	if v.Flags().UnderflowPost {
		t.Errorf("exact subnormal should not set UnderflowPost")
	}
}

func TestBitRoundTrip(t *testing.T) {
	ctx := Binary16(rfloat.NearestTiesToEven)
	for n := int64(0); n < (1 << 16); n++ {
		bits := big.NewInt(n)
		v := ctx.Decode(bits)
		got := v.IntoBits()
		if got.Cmp(bits) != 0 {
			t.Errorf("round-trip mismatch for bits=%v: got %v", bits, got)
		}
	}
}

func TestNaNWellFormedness(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewNaN with quiet=false and zero payload should panic")
		}
	}()
	ctx := Binary16(rfloat.NearestTiesToEven)
	NewNaN(ctx, false, false, big.NewInt(0))
}

func TestIsInfiniteDistinctFromIsFinite(t *testing.T) {
	ctx := Binary16(rfloat.NearestTiesToEven)
	nan := ctx.Round(rfloat.NaN())
	if nan.IsInfinite() {
		t.Errorf("NaN should not be infinite")
	}
	if nan.IsFinite() {
		t.Errorf("NaN should not be finite")
	}
}
