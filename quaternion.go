package roomview

import (
	"fmt"
	"math"
)

// Quaternion represents a rotation in 3D space as a unit quaternion, with W as the scalar part.
// Quaternions are value types; functions that modify one return a modified copy.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion with the given components. No normalization is performed;
// use Normalized if the components don't already describe a unit quaternion.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionIdentity returns the identity Quaternion (no rotation).
func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionFromAxisAngle creates a Quaternion rotating by the given angle in radians around the
// given axis. The axis does not need to be normalized beforehand.
func NewQuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	axis = axis.Unit()
	s := math.Sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(angle / 2),
	}
}

// NewQuaternionFromEuler creates a Quaternion from pitch, yaw, and roll angles in radians -
// pitch rotating around the X axis, yaw around the Y axis, and roll around the Z axis,
// composed in yaw * pitch * roll order (so when rotating a vector, roll is applied first,
// then pitch, then yaw).
func NewQuaternionFromEuler(pitch, yaw, roll float64) Quaternion {
	qy := NewQuaternionFromAxisAngle(NewVector3(0, 1, 0), yaw)
	qx := NewQuaternionFromAxisAngle(NewVector3(1, 0, 0), pitch)
	if roll == 0 {
		return qy.Mult(qx).Normalized()
	}
	qz := NewQuaternionFromAxisAngle(NewVector3(0, 0, 1), roll)
	return qy.Mult(qx).Mult(qz).Normalized()
}

// Mult multiplies the Quaternion by the other Quaternion provided, combining the two rotations
// (the other rotation is applied first when rotating a vector).
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y - quat.X*other.Z + quat.Y*other.W + quat.Z*other.X,
		Z: quat.W*other.Z + quat.X*other.Y - quat.Y*other.X + quat.Z*other.W,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Dot returns the dot product of the Quaternion and the other Quaternion provided.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math.Sqrt(quat.Dot(quat))
}

// Normalized returns a copy of the Quaternion normalized to unit length. A degenerate (zero-length
// or non-finite) Quaternion normalizes to the identity rather than propagating NaNs.
func (quat Quaternion) Normalized() Quaternion {
	l := quat.Magnitude()
	if l < 1e-12 || math.IsNaN(l) || math.IsInf(l, 0) {
		return NewQuaternionIdentity()
	}
	quat.X /= l
	quat.Y /= l
	quat.Z /= l
	quat.W /= l
	return quat
}

// IsIdentity returns true if the Quaternion describes no rotation (within floating-point tolerance).
func (quat Quaternion) IsIdentity() bool {
	return quat.ApproxEquals(NewQuaternionIdentity(), 1e-9)
}

// ApproxEquals returns true if the Quaternion describes the same rotation as the other Quaternion,
// within the given per-component tolerance. q and -q describe the same rotation and compare equal.
func (quat Quaternion) ApproxEquals(other Quaternion, tolerance float64) bool {
	if quat.Dot(other) < 0 {
		other.X, other.Y, other.Z, other.W = -other.X, -other.Y, -other.Z, -other.W
	}
	return math.Abs(quat.X-other.X) <= tolerance &&
		math.Abs(quat.Y-other.Y) <= tolerance &&
		math.Abs(quat.Z-other.Z) <= tolerance &&
		math.Abs(quat.W-other.W) <= tolerance
}

// ToAxisAngle returns the rotation axis and the angle in radians that the Quaternion describes.
// The identity rotation returns the +Y axis with an angle of 0.
func (quat Quaternion) ToAxisAngle() (Vector3, float64) {

	quat = quat.Normalized()

	// Clamp against acos domain errors from accumulated float drift.
	w := math.Max(-1, math.Min(1, quat.W))

	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)

	if s < 1e-8 {
		return NewVector3(0, 1, 0), 0
	}

	return NewVector3(quat.X/s, quat.Y/s, quat.Z/s), angle

}

// RotateVector rotates the given Vector3 by the rotation the Quaternion describes, returning a rotated copy.
func (quat Quaternion) RotateVector(vec Vector3) Vector3 {
	qv := NewVector3(quat.X, quat.Y, quat.Z)
	t := qv.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.W)).Add(qv.Cross(t))
}

// Slerp spherically interpolates from the Quaternion to the other Quaternion provided by the given
// percentage, taking the shorter path around the rotation sphere.
func (quat Quaternion) Slerp(other Quaternion, percent float64) Quaternion {

	if percent <= 0 {
		return quat
	} else if percent >= 1 {
		return other
	}

	dot := quat.Dot(other)

	if dot < 0 {
		other.X, other.Y, other.Z, other.W = -other.X, -other.Y, -other.Z, -other.W
		dot = -dot
	}

	// Nearly parallel; lerp to dodge the vanishing sine denominator.
	if dot > 0.9995 {
		return Quaternion{
			X: quat.X + percent*(other.X-quat.X),
			Y: quat.Y + percent*(other.Y-quat.Y),
			Z: quat.Z + percent*(other.Z-quat.Z),
			W: quat.W + percent*(other.W-quat.W),
		}.Normalized()
	}

	theta0 := math.Acos(dot)
	theta := theta0 * percent
	sinTheta := math.Sin(theta)
	sinTheta0 := math.Sin(theta0)

	s0 := math.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quaternion{
		X: quat.X*s0 + other.X*s1,
		Y: quat.Y*s0 + other.Y*s1,
		Z: quat.Z*s0 + other.Z*s1,
		W: quat.W*s0 + other.W*s1,
	}

}

// IsFinite returns true if no component of the Quaternion is NaN or an infinity.
func (quat Quaternion) IsFinite() bool {
	return !math.IsNaN(quat.X) && !math.IsNaN(quat.Y) && !math.IsNaN(quat.Z) && !math.IsNaN(quat.W) &&
		!math.IsInf(quat.X, 0) && !math.IsInf(quat.Y, 0) && !math.IsInf(quat.Z, 0) && !math.IsInf(quat.W, 0)
}

// String returns a string representation of the Quaternion, limited to two decimal places.
func (quat Quaternion) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f, %.2f}", quat.X, quat.Y, quat.Z, quat.W)
}
