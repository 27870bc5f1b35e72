package roomview

import (
	"fmt"
	"math"
)

// Vector2 represents a 2D point or translation in UI space (screen points / pixels).
// Any Vector2 functions that modify the calling Vector2 return copies of the modified Vector2,
// meaning you can do method-chaining easily.
type Vector2 struct {
	X float64 // The X (1st) component of the Vector2
	Y float64 // The Y (2nd) component of the Vector2
}

// NewVector2 creates a new Vector2 with the specified x and y components.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns a copy of the calling Vector2, added together with the other Vector2 provided.
func (vec Vector2) Add(other Vector2) Vector2 {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling Vector2, with the other Vector2 subtracted from it.
func (vec Vector2) Sub(other Vector2) Vector2 {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Scale returns a copy of the calling Vector2, scaled by the scalar provided.
func (vec Vector2) Scale(scalar float64) Vector2 {
	vec.X *= scalar
	vec.Y *= scalar
	return vec
}

// Magnitude returns the length of the Vector2.
func (vec Vector2) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y)
}

// IsZero returns true if both components of the Vector2 are exactly zero.
func (vec Vector2) IsZero() bool {
	return vec.X == 0 && vec.Y == 0
}

// IsFinite returns true if neither component of the Vector2 is NaN or an infinity.
func (vec Vector2) IsFinite() bool {
	return !math.IsNaN(vec.X) && !math.IsNaN(vec.Y) && !math.IsInf(vec.X, 0) && !math.IsInf(vec.Y, 0)
}

// String returns a string representation of the Vector2, limited to two decimal places.
func (vec Vector2) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", vec.X, vec.Y)
}

// Vector3 represents a 3D position or direction in world space.
// Like Vector2, modifying functions return copies for method-chaining.
type Vector3 struct {
	X float64 // The X (1st) component of the Vector3
	Y float64 // The Y (2nd) component of the Vector3
	Z float64 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector3, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the calling Vector3, scaled by the scalar provided.
func (vec Vector3) Scale(scalar float64) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// Unit returns a copy of the Vector3, normalized to a length of 1. A zero-length Vector3 is returned unchanged.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 || l == 1 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Dot returns the dot product of the Vector3 and the other Vector3 provided.
func (vec Vector3) Dot(other Vector3) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns the cross product of the Vector3 and the other Vector3 provided.
func (vec Vector3) Cross(other Vector3) Vector3 {
	ogVec := vec
	vec.X = ogVec.Y*other.Z - ogVec.Z*other.Y
	vec.Y = ogVec.Z*other.X - ogVec.X*other.Z
	vec.Z = ogVec.X*other.Y - ogVec.Y*other.X
	return vec
}

// IsFinite returns true if no component of the Vector3 is NaN or an infinity.
func (vec Vector3) IsFinite() bool {
	return !math.IsNaN(vec.X) && !math.IsNaN(vec.Y) && !math.IsNaN(vec.Z) &&
		!math.IsInf(vec.X, 0) && !math.IsInf(vec.Y, 0) && !math.IsInf(vec.Z, 0)
}

// String returns a string representation of the Vector3, limited to two decimal places.
func (vec Vector3) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z)
}
