package roomview

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector2Arithmetic(t *testing.T) {

	v := NewVector2(3, 4)

	require.Equal(t, NewVector2(5, 2), v.Add(NewVector2(2, -2)))
	require.Equal(t, NewVector2(1, 6), v.Sub(NewVector2(2, -2)))
	require.Equal(t, NewVector2(6, 8), v.Scale(2))
	require.InDelta(t, 5, v.Magnitude(), 1e-12)

	// Methods return copies; the original is untouched.
	require.Equal(t, NewVector2(3, 4), v)

}

func TestVector2Finiteness(t *testing.T) {

	require.True(t, NewVector2(0, 0).IsZero())
	require.False(t, NewVector2(0, 1e-300).IsZero())

	require.True(t, NewVector2(1, -1).IsFinite())
	require.False(t, NewVector2(math.NaN(), 0).IsFinite())
	require.False(t, NewVector2(0, math.Inf(-1)).IsFinite())

}

func TestVector3UnitAndCross(t *testing.T) {

	require.InDelta(t, 1, NewVector3(3, -4, 12).Unit().Magnitude(), 1e-12)

	// Zero vectors stay put instead of dividing by zero.
	require.Equal(t, Vector3{}, Vector3{}.Unit())

	cross := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))
	require.Equal(t, NewVector3(0, 0, 1), cross)

}

func BenchmarkVector3Ops(b *testing.B) {

	b.ReportAllocs()

	rng := rand.New(rand.NewSource(7))
	a := NewVector3(rng.Float64(), rng.Float64(), rng.Float64())
	c := NewVector3(rng.Float64(), rng.Float64(), rng.Float64())

	for i := 0; i < b.N; i++ {
		a = a.Add(c).Cross(c).Unit()
	}

	_ = a

}
