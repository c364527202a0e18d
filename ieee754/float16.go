package ieee754

import (
	"math/big"

	"github.com/x448/float16"
)

// FromFloat16 decodes a float16 bit pattern into a Value, reusing this
// package's general bit-pattern decoder rather than duplicating
// float16's own classification logic. ctx must describe the binary16
// format (es=5, nbits=16).
func FromFloat16(ctx Context, f float16.Float16) Value {
	return ctx.Decode(big.NewInt(int64(f.Bits())))
}

// ToFloat16 encodes v as a float16 bit pattern. v's context must
// describe the binary16 format (es=5, nbits=16); the caller is
// responsible for having rounded into that context first.
func (v Value) ToFloat16() float16.Float16 {
	return float16.Float16(v.IntoBits().Uint64())
}
