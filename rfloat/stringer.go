package rfloat

import "strings"

// String implements fmt.Stringer. Finite values render as a decimal
// literal derived from the exact big.Rat value (trimmed of trailing
// zeros); infinities and NaN render as "Infinity", "-Infinity", "NaN".
func (r RFloat) String() string {
	switch r.kind {
	case kindPosInf:
		return "Infinity"
	case kindNegInf:
		return "-Infinity"
	case kindNaN:
		return "NaN"
	}

	if r.c.Sign() == 0 {
		if r.sign {
			return "-0"
		}
		return "0"
	}

	signStr := ""
	if r.sign {
		signStr = "-"
	}
	return signStr + r.decimalString()
}

// decimalString renders |r| as a decimal literal by expanding its exact
// big.Rat value to a generous number of fractional digits and trimming
// trailing zeros. r must be finite and non-zero.
func (r RFloat) decimalString() string {
	rat := r.toRat()
	if rat.Sign() < 0 {
		rat.Neg(rat)
	}
	const prec = 40
	s := rat.FloatString(prec)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" {
		s = "0"
	}
	return s
}
