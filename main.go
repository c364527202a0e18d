package main

import (
	"fmt"
	"math/big"
	"unsafe"

	"github.com/trippwill/go-numform/bfloat"
	"github.com/trippwill/go-numform/fixedp"
	"github.com/trippwill/go-numform/ieee754"
	"github.com/trippwill/go-numform/rfloat"
)

func main() {
	println("RFloat:", unsafe.Sizeof(rfloat.RFloat{}))
	println("bfloat.Value:", unsafe.Sizeof(bfloat.Value{}))
	println("ieee754.Value:", unsafe.Sizeof(ieee754.Value{}))
	println("fixedp.Value:", unsafe.Sizeof(fixedp.Value{}))
	println("--------------------")

	format := "%-9s\t%16s\t%s\n"
	sep := "-------------------------------------"

	one14 := rfloat.NewReal(false, -2, big.NewInt(5)) // 1.25

	bctx := bfloat.NewContext(2, rfloat.NearestTiesToEven)
	bval := bctx.Round(one14)
	fmt.Printf(format, "bfloat", bval.String(), flagSummary(bval.Flags()))
	println(sep)

	ieeeCtx := ieee754.Binary16(rfloat.NearestTiesToEven)
	big65520 := rfloat.NewReal(false, 0, big.NewInt(65520))
	ival := ieeeCtx.Round(big65520)
	fmt.Printf(format, "ieee754", ival.RFloat().String(), flagSummary(ival.Flags()))
	fmt.Println("bits:", ival.IntoBits())
	println(sep)

	smallest := rfloat.NewReal(false, -24, big.NewInt(1))
	sub := ieeeCtx.Round(smallest)
	fmt.Printf(format, "subnorm", sub.RFloat().String(), flagSummary(sub.Flags()))
	println(sep)

	fpCtx := fixedp.MustNewContext(true, 0, 4, rfloat.NearestTiesToEven, fixedp.Wrap)
	nine := rfloat.NewReal(false, 0, big.NewInt(9))
	fval := fpCtx.Round(nine)
	fmt.Printf(format, "fixedp", fval.String(), flagSummary(fval.Flags()))
	println(sep)

	satCtx := fixedp.MustNewContext(true, 0, 4, rfloat.NearestTiesToEven, fixedp.Saturate)
	satVal := satCtx.Round(nine)
	fmt.Printf(format, "saturate", satVal.String(), flagSummary(satVal.Flags()))
}

func flagSummary(f interface{ Any() bool }) string {
	if !f.Any() {
		return "exact"
	}
	return fmt.Sprintf("%+v", f)
}
