package roomview

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuaternionFromAxisAngle(t *testing.T) {

	// A quarter turn around +Y carries +X to -Z (right-handed).
	q := NewQuaternionFromAxisAngle(NewVector3(0, 1, 0), math.Pi/2)
	rotated := q.RotateVector(NewVector3(1, 0, 0))

	require.InDelta(t, 0, rotated.X, 1e-9)
	require.InDelta(t, 0, rotated.Y, 1e-9)
	require.InDelta(t, -1, rotated.Z, 1e-9)

}

func TestQuaternionFromEulerMatchesAxisAngleComposition(t *testing.T) {

	pitch, yaw := ToRadians(30), ToRadians(75)

	byEuler := NewQuaternionFromEuler(pitch, yaw, 0)
	byHand := NewQuaternionFromAxisAngle(NewVector3(0, 1, 0), yaw).
		Mult(NewQuaternionFromAxisAngle(NewVector3(1, 0, 0), pitch))

	require.True(t, byEuler.ApproxEquals(byHand, 1e-9))

	// The composition order matters: pitch-then-yaw (reading right to left) is not
	// the same rotation as yaw-then-pitch.
	swapped := NewQuaternionFromAxisAngle(NewVector3(1, 0, 0), pitch).
		Mult(NewQuaternionFromAxisAngle(NewVector3(0, 1, 0), yaw))
	require.False(t, byEuler.ApproxEquals(swapped, 1e-9))

}

func TestQuaternionNormalizedDegenerate(t *testing.T) {

	require.True(t, NewQuaternion(0, 0, 0, 0).Normalized().IsIdentity())
	require.True(t, NewQuaternion(math.NaN(), 0, 0, 1).Normalized().IsIdentity())

	q := NewQuaternion(2, 0, 0, 2).Normalized()
	require.InDelta(t, 1, q.Magnitude(), 1e-12)

}

func TestQuaternionToAxisAngleRoundTrip(t *testing.T) {

	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {

		axis := NewVector3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1).Unit()
		angle := rng.Float64() * math.Pi

		q := NewQuaternionFromAxisAngle(axis, angle)
		gotAxis, gotAngle := q.ToAxisAngle()

		require.True(t, q.ApproxEquals(NewQuaternionFromAxisAngle(gotAxis, gotAngle), 1e-9))

	}

	axis, angle := NewQuaternionIdentity().ToAxisAngle()
	require.Zero(t, angle)
	require.Equal(t, NewVector3(0, 1, 0), axis)

}

func TestQuaternionApproxEqualsDoubleCover(t *testing.T) {

	q := NewQuaternionFromEuler(ToRadians(10), ToRadians(20), 0)
	negated := NewQuaternion(-q.X, -q.Y, -q.Z, -q.W)

	// q and -q describe the same rotation.
	require.True(t, q.ApproxEquals(negated, 1e-12))

}

func TestQuaternionSlerp(t *testing.T) {

	from := NewQuaternionIdentity()
	to := NewQuaternionFromAxisAngle(NewVector3(0, 1, 0), math.Pi/2)

	require.Equal(t, from, from.Slerp(to, 0))
	require.Equal(t, to, from.Slerp(to, 1))

	half := from.Slerp(to, 0.5)
	want := NewQuaternionFromAxisAngle(NewVector3(0, 1, 0), math.Pi/4)

	require.True(t, half.ApproxEquals(want, 1e-9))
	require.InDelta(t, 1, half.Magnitude(), 1e-9)

}
