package m // import "vector3d/m"

import (
	"math"

	"github.com/chewxy/math32"
)

// Exported name
type Float = float32

const MaxFloat = math.MaxFloat32

// From Chris Lomont, "Fast Inverse Square Root" (2003).
const invSqrtMagic = 0x5f375a86

func Abs(x Float) Float {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func Sqrt(x Float) Float {
	return math32.Sqrt(x)
}

// InvSqrt approximates 1/Sqrt(x) with the bit-level initial guess followed
// by a single Newton-Raphson step. The relative error is at most about
// 0.175% for positive normal x; other inputs give meaningless results.
// InvSqrt(0) is a large finite number and InvSqrt(+Inf) is -Inf.
func InvSqrt(x Float) Float {
	y := math.Float32frombits(invSqrtMagic - math.Float32bits(x)>>1)
	// Round the product before subtracting so it is never fused.
	return y * (1.5 - Float(0.5*x*y*y))
}
