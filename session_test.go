package roomview

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionDragToTransform(t *testing.T) {

	session := NewSession("room", NewFixedPlacement(NewVector3(0, 0, -2)),
		WithSensitivity(1), WithLogger(zap.NewNop()))

	session.HandleDrag(DragSample{Translation: NewVector2(90, 0)})
	session.HandleDrag(DragSample{Translation: NewVector2(90, 0), Ended: true})

	transform := session.Transform()

	require.Equal(t, NewVector3(0, 0, -2), transform.Position)
	want := NewQuaternionFromEuler(0, ToRadians(90), 0)
	require.True(t, transform.Rotation.ApproxEquals(want, 1e-9))

}

func TestSessionComposesAcrossGestures(t *testing.T) {

	session := NewSession("room", NewFixedPlacement(Vector3{}), WithSensitivity(1))

	session.HandleDrag(DragSample{Translation: NewVector2(30, 0), Ended: true})
	session.HandleDrag(DragSample{Translation: NewVector2(30, 0), Ended: true})

	require.InDelta(t, ToRadians(60), session.Orienter().Yaw(), 1e-12)

}

func TestSessionDefaultsAndIdentity(t *testing.T) {

	a := NewSession("sofa", NewFixedPlacement(Vector3{}))
	b := NewSession("sofa", NewFixedPlacement(Vector3{}))

	require.NotEqual(t, a.ID(), b.ID())
	require.Equal(t, "sofa", a.Object())
	require.True(t, a.Transform().Rotation.IsIdentity())

	// Bogus sensitivity option keeps the default.
	c := NewSession("room", NewFixedPlacement(Vector3{}), WithSensitivity(-2))
	c.HandleDrag(DragSample{Translation: NewVector2(10, 0)})
	require.InDelta(t, ToRadians(10*DefaultSensitivity), c.Orienter().Yaw(), 1e-12)

}

func TestSessionSetPlacement(t *testing.T) {

	session := NewSession("room", NewFixedPlacement(NewVector3(0, 0, -2)), WithSensitivity(1))
	session.HandleDrag(DragSample{Translation: NewVector2(45, 0)})

	rotationBefore := session.Transform().Rotation

	session.SetPlacement(NewTrackedPlacement(NewVector3(1, 0, -1)))

	// Switching presentation moves the object but never disturbs its orientation.
	require.Equal(t, NewVector3(1, 0, -1), session.Transform().Position)
	require.Equal(t, rotationBefore, session.Transform().Rotation)

}

func TestSessionAbortGestureKeepsComposition(t *testing.T) {

	session := NewSession("room", NewFixedPlacement(Vector3{}), WithSensitivity(1))

	// A drag is interrupted mid-gesture - no Ended sample ever arrives.
	session.HandleDrag(DragSample{Translation: NewVector2(100, 0)})
	session.AbortGesture()

	// The host glides the room back to rest while the drag is interrupted.
	glide := NewGlideToIdentity(session.Orienter(), 0.1)
	for !glide.Update(1.0 / 60.0) {
	}
	require.InDelta(t, 0, session.Orienter().Yaw(), 1e-9)

	// The next gesture's first sample carries ~zero translation; it must not be
	// diffed against the aborted gesture's reference and replay its rotation.
	session.HandleDrag(DragSample{Translation: NewVector2(0, 0)})
	require.InDelta(t, 0, session.Orienter().Yaw(), 1e-9)

	session.HandleDrag(DragSample{Translation: NewVector2(15, 0), Ended: true})
	require.InDelta(t, ToRadians(15), session.Orienter().Yaw(), 1e-9)

}

func TestSessionReset(t *testing.T) {

	session := NewSession("room", NewFixedPlacement(Vector3{}), WithSensitivity(1))
	session.HandleDrag(DragSample{Translation: NewVector2(500, 250)})

	session.Reset()

	require.True(t, session.Transform().Rotation.IsIdentity())

	// The abandoned gesture's reference is gone too; a new gesture starts clean.
	session.HandleDrag(DragSample{Translation: NewVector2(10, 0)})
	require.InDelta(t, ToRadians(10), session.Orienter().Yaw(), 1e-12)

}
