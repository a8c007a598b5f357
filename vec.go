// Package vector3d implements a three component float32 vector value type.
//
// Vector3D is a plain value: assignment copies it and no two instances ever
// share storage. Methods with a value receiver return a new vector and leave
// the receiver untouched; the ...Assign methods mutate the receiver in place.
//
// Nothing is validated. Dividing by zero or normalizing a zero vector
// produces IEEE-754 infinities or NaNs, and indexing outside {0, 1, 2}
// panics.
package vector3d

import (
	"fmt"

	"vector3d/m"
)

type float = m.Float

var (
	Zeros = Vector3D{0, 0, 0}
	Ones  = Vector3D{1, 1, 1}
)

// Vector3D compares with == componentwise and exactly.
type Vector3D struct {
	X, Y, Z float
}

func New(x, y, z float) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Get returns component i, where 0, 1 and 2 name X, Y and Z. Any other i
// panics.
func (v Vector3D) Get(i int) float {
	return *v.Elem(i)
}

// Set stores s in component i. Any i outside {0, 1, 2} panics.
func (v *Vector3D) Set(i int, s float) {
	*v.Elem(i) = s
}

// Elem returns a pointer to component i of v. Any i outside {0, 1, 2}
// panics.
func (v *Vector3D) Elem(i int) *float {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	}
	panic("vector3d: index out of range")
}

func (v *Vector3D) ScaleAssign(s float) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

func (v *Vector3D) DivideAssign(s float) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

func (v *Vector3D) AddAssign(u Vector3D) {
	v.X += u.X
	v.Y += u.Y
	v.Z += u.Z
}

func (v *Vector3D) SubtractAssign(u Vector3D) {
	v.X -= u.X
	v.Y -= u.Y
	v.Z -= u.Z
}

func (v Vector3D) Scale(s float) Vector3D {
	return Vector3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3D) Divide(s float) Vector3D {
	return Vector3D{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

func (v Vector3D) Negate() Vector3D {
	return Vector3D{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3D) Add(u Vector3D) Vector3D {
	return Vector3D{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

func (v Vector3D) Subtract(u Vector3D) Vector3D {
	return Vector3D{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// squaredNorm rounds every product to float32 before summing, so the result
// does not depend on whether the platform fuses multiply-adds.
func (v Vector3D) squaredNorm() float {
	return float(v.X*v.X) + float(v.Y*v.Y) + float(v.Z*v.Z)
}

// Magnitude returns the Euclidean length of v.
func (v Vector3D) Magnitude() float {
	return m.Sqrt(v.squaredNorm())
}

// NormalizePrecise divides v by its exact magnitude. The zero vector gives
// NaN components.
func (v Vector3D) NormalizePrecise() Vector3D {
	return v.Divide(v.Magnitude())
}

// Normalize scales v by the fast inverse square root of its squared length.
// Components differ from NormalizePrecise by up to about 0.175% relative
// as long as the squared length is a positive normal float32. Otherwise the
// result is meaningless: the zero vector maps to itself, a squared length
// that underflows to zero gives a vector far shorter than unit length, and
// one that overflows gives infinities and NaNs.
func (v Vector3D) Normalize() Vector3D {
	return v.Scale(m.InvSqrt(v.squaredNorm()))
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
