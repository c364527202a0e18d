package rfloat

import (
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatLocale renders r as a locale-appropriate decimal string using
// tag (grouping separators, decimal marks, and sign placement follow
// the locale's conventions). Infinities and NaN render the same as
// String regardless of locale.
func (r RFloat) FormatLocale(tag language.Tag) string {
	switch r.kind {
	case kindPosInf:
		return "Infinity"
	case kindNegInf:
		return "-Infinity"
	case kindNaN:
		return "NaN"
	}

	p := message.NewPrinter(tag)
	if r.c.Sign() == 0 {
		return p.Sprintf("%v", number.Decimal(0))
	}

	rat := r.toRat()
	f, _ := new(big.Float).SetPrec(256).SetRat(rat).Float64()
	return p.Sprintf("%v", number.Decimal(f))
}
