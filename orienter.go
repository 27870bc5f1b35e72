package roomview

import (
	"math"
)

// ToRadians converts an angle in degrees to radians.
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees converts an angle in radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

// Orienter accumulates 2D drag deltas into a running 3D orientation for a single interactive
// object - vertical motion tilts the object (pitch, around X), horizontal motion turns it
// (yaw, around Y), and roll is never touched. This gives a "virtual trackball" feel without
// arcball axis re-projection, which suits reorienting a room-scale model rather than a free camera.
//
// An Orienter belongs to exactly one object and one event source; it is not safe for concurrent
// use, matching the single UI-thread delivery it's designed for.
type Orienter struct {
	pitch float64 // accumulated pitch in radians
	yaw   float64 // accumulated yaw in radians
}

// NewOrienter returns a new Orienter at the identity orientation.
func NewOrienter() *Orienter {
	return &Orienter{}
}

// Update adds one incremental drag delta to the accumulated orientation and returns the resulting
// rotation. delta is the pointer movement since the previous Update (not since gesture start), in
// UI distance units; sensitivity is in degrees of rotation per unit of translation and must be > 0.
//
// The horizontal component of delta becomes a yaw increment and the vertical component a pitch
// increment. Angles accumulate without clamping, so the object can wrap around freely.
//
// A non-finite delta, or a sensitivity that is zero, negative, or non-finite, makes Update a no-op
// that returns the current rotation unchanged - a single malformed UI event shouldn't interrupt
// an ongoing interaction.
func (o *Orienter) Update(delta Vector2, sensitivity float64) Quaternion {

	if !delta.IsFinite() || sensitivity <= 0 || math.IsNaN(sensitivity) || math.IsInf(sensitivity, 0) {
		return o.Rotation()
	}

	o.yaw += ToRadians(delta.X * sensitivity)
	o.pitch += ToRadians(delta.Y * sensitivity)

	return o.Rotation()

}

// Rotation returns the rotation the accumulated angles describe, as a normalized Quaternion
// (yaw around Y composed with pitch around X, roll 0). It is a pure read; calling it repeatedly
// without an intervening Update returns identical values.
func (o *Orienter) Rotation() Quaternion {
	return NewQuaternionFromEuler(o.pitch, o.yaw, 0)
}

// Pitch returns the accumulated pitch in radians.
func (o *Orienter) Pitch() float64 {
	return o.pitch
}

// Yaw returns the accumulated yaw in radians.
func (o *Orienter) Yaw() float64 {
	return o.yaw
}

// Reset zeroes both accumulated angles, returning the Orienter to the identity orientation.
// Use it when starting a fresh interaction session on a new object.
func (o *Orienter) Reset() {
	o.pitch = 0
	o.yaw = 0
}

// setAngles overwrites the accumulated angles directly; used by Glide to animate them.
func (o *Orienter) setAngles(pitch, yaw float64) {
	o.pitch = pitch
	o.yaw = yaw
}
