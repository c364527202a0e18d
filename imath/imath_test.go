package imath

import (
	"math/big"
	"testing"
)

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 {
		t.Errorf("Abs(-5) = %d; want 5", Abs(-5))
	}
	if Abs(5) != 5 {
		t.Errorf("Abs(5) = %d; want 5", Abs(5))
	}
}

func TestPow(t *testing.T) {
	if Pow[int, uint](2, 3) != 8 {
		t.Errorf("Pow(2, 3) = %d; want 8", Pow[int, uint](2, 3))
	}
	if Pow[int, uint](5, 0) != 1 {
		t.Errorf("Pow(5, 0) = %d; want 1", Pow[int, uint](5, 0))
	}
}

func TestGCD(t *testing.T) {
	if GCD(48, 18) != 6 {
		t.Errorf("GCD(48, 18) = %d; want 6", GCD(48, 18))
	}
	if GCD(7, 1) != 1 {
		t.Errorf("GCD(7, 1) = %d; want 1", GCD(7, 1))
	}
}

func TestLCM(t *testing.T) {
	if LCM(4, 6) != 12 {
		t.Errorf("LCM(4, 6) = %d; want 12", LCM(4, 6))
	}
	if LCM(0, 5) != 0 {
		t.Errorf("LCM(0, 5) = %d; want 0", LCM(0, 5))
	}
}

func TestBitMask(t *testing.T) {
	if BitMask(0).Sign() != 0 {
		t.Errorf("BitMask(0) = %v; want 0", BitMask(0))
	}
	if BitMask(3).Cmp(big.NewInt(7)) != 0 {
		t.Errorf("BitMask(3) = %v; want 7", BitMask(3))
	}
}

func TestTestBit(t *testing.T) {
	c := big.NewInt(0b1010)
	if TestBit(c, 0) {
		t.Errorf("bit 0 of 0b1010 should be clear")
	}
	if !TestBit(c, 1) {
		t.Errorf("bit 1 of 0b1010 should be set")
	}
}

func TestParity(t *testing.T) {
	if !IsOdd(big.NewInt(7)) || IsEven(big.NewInt(7)) {
		t.Errorf("7 should be odd")
	}
	if !IsEven(big.NewInt(8)) || IsOdd(big.NewInt(8)) {
		t.Errorf("8 should be even")
	}
}
