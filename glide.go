package roomview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// A Glide animates an Orienter's accumulated angles toward target angles over a duration,
// for snap-back and settle effects (returning a room model to rest after the user lets go,
// say). The host ticks it once per frame with the elapsed time; drag input should be paused
// while a Glide runs, since both write the same angles.
type Glide struct {
	orienter *Orienter
	pitch    *gween.Tween
	yaw      *gween.Tween
	done     bool
}

// NewGlide starts a glide on the given Orienter from its current angles to the target pitch
// and yaw (radians) over the given duration in seconds, easing out cubically.
func NewGlide(orienter *Orienter, targetPitch, targetYaw, duration float64) *Glide {
	return &Glide{
		orienter: orienter,
		pitch:    gween.New(float32(orienter.Pitch()), float32(targetPitch), float32(duration), ease.OutCubic),
		yaw:      gween.New(float32(orienter.Yaw()), float32(targetYaw), float32(duration), ease.OutCubic),
	}
}

// NewGlideToIdentity starts a glide returning the Orienter to the identity orientation.
func NewGlideToIdentity(orienter *Orienter, duration float64) *Glide {
	return NewGlide(orienter, 0, 0, duration)
}

// Update advances the glide by dt seconds, writing the interpolated angles into the Orienter,
// and returns true once the glide has finished. Updates after completion are no-ops.
func (glide *Glide) Update(dt float64) bool {

	if glide.done {
		return true
	}

	pitch, pitchDone := glide.pitch.Update(float32(dt))
	yaw, yawDone := glide.yaw.Update(float32(dt))

	glide.orienter.setAngles(float64(pitch), float64(yaw))

	glide.done = pitchDone && yawDone

	return glide.done

}

// Done returns true once the glide has reached its target.
func (glide *Glide) Done() bool {
	return glide.done
}
