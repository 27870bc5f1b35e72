package roomview

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// A Session binds one interactive object to its own Orienter, DragStream, and Placement, and is
// the call surface a host UI layer drives: push DragSamples in, read Transforms out. A host with
// several interactive objects owns one Session per object; Sessions share no state and each one
// expects a single event producer, so no locking happens here.
type Session struct {
	id          string
	object      string
	sensitivity float64
	orienter    *Orienter
	stream      *DragStream
	placement   Placement
	logger      *zap.Logger
}

// SessionOption configures a Session on creation.
type SessionOption func(*Session)

// WithLogger routes the Session's debug logging to the given zap logger. Without it the
// Session stays silent (a no-op logger).
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSensitivity overrides the default rotation sensitivity (degrees of rotation per unit of
// drag translation). Non-positive values are ignored, keeping the default.
func WithSensitivity(degreesPerUnit float64) SessionOption {
	return func(s *Session) {
		if degreesPerUnit > 0 {
			s.sensitivity = degreesPerUnit
		}
	}
}

// DefaultSensitivity is the rotation applied per unit of drag translation when a Session is
// created without WithSensitivity, in degrees.
const DefaultSensitivity = 0.5

// NewSession creates a Session for the named object under the given Placement. The object name
// is only a label for logging and diagnostics; the Session never looks anything up by it.
func NewSession(object string, placement Placement, options ...SessionOption) *Session {

	session := &Session{
		id:          uuid.NewString(),
		object:      object,
		sensitivity: DefaultSensitivity,
		orienter:    NewOrienter(),
		stream:      NewDragStream(),
		placement:   placement,
		logger:      zap.NewNop(),
	}

	for _, option := range options {
		option(session)
	}

	session.logger.Debug("session started",
		zap.String("session", session.id),
		zap.String("object", session.object),
		zap.Stringer("placement", placement.Mode),
		zap.Float64("sensitivity", session.sensitivity),
	)

	return session

}

// ID returns the Session's unique identifier.
func (session *Session) ID() string {
	return session.id
}

// Object returns the label of the object the Session drives.
func (session *Session) Object() string {
	return session.object
}

// HandleDrag consumes one DragSample, advances the accumulated orientation by the movement it
// represents, and returns the resulting rotation. Samples with no new movement (or malformed
// ones) leave the orientation unchanged.
func (session *Session) HandleDrag(sample DragSample) Quaternion {

	delta := session.stream.Feed(sample)

	rotation := session.orienter.Update(delta, session.sensitivity)

	if sample.Ended {
		session.logger.Debug("gesture ended",
			zap.String("session", session.id),
			zap.Float64("pitchDeg", ToDegrees(session.orienter.Pitch())),
			zap.Float64("yawDeg", ToDegrees(session.orienter.Yaw())),
		)
	}

	return rotation

}

// Transform returns the placed orientation to hand to the rendering layer: the Placement's
// resolved position plus the current accumulated rotation.
func (session *Session) Transform() Transform {
	return Transform{
		Position: session.placement.Position(),
		Rotation: session.orienter.Rotation(),
	}
}

// Orienter exposes the Session's accumulator, for hosts that drive rotation matrices from the
// raw angles or animate them with a Glide.
func (session *Session) Orienter() *Orienter {
	return session.orienter
}

// Placement returns the Session's current Placement.
func (session *Session) Placement() Placement {
	return session.placement
}

// SetPlacement swaps the Session's Placement (switching between tracked and fixed presentation,
// or following a refined anchor). Orientation state is untouched.
func (session *Session) SetPlacement(placement Placement) {
	session.placement = placement
	session.logger.Debug("placement changed",
		zap.String("session", session.id),
		zap.Stringer("placement", placement.Mode),
	)
}

// AbortGesture abandons any in-progress gesture without disturbing the accumulated orientation.
// Hosts that interrupt a drag (to hand the angles to a Glide, say) must close the gesture this
// way; otherwise the next gesture's samples would be diffed against the aborted gesture's
// cumulative translation, and the object would jump.
func (session *Session) AbortGesture() {
	session.stream.Reset()
}

// Reset abandons any in-progress gesture and returns the object to the identity orientation.
func (session *Session) Reset() {
	session.stream.Reset()
	session.orienter.Reset()
	session.logger.Debug("session reset", zap.String("session", session.id))
}
