package roomview

// PlacementMode selects how the interactive object is positioned in the world. It is chosen
// once at session start and injected into the rendering layer; orientation accumulation is
// invariant to the choice.
type PlacementMode int

const (
	// PlacementTracked places the object at an anchor supplied by a tracking runtime
	// (an AR anchor on a detected surface, for example).
	PlacementTracked PlacementMode = iota
	// PlacementFixed places the object at a fixed world offset - the non-tracked preview
	// path for hosts without a tracking runtime.
	PlacementFixed
)

// String returns the name of the PlacementMode.
func (mode PlacementMode) String() string {
	switch mode {
	case PlacementTracked:
		return "tracked"
	case PlacementFixed:
		return "fixed"
	}
	return "unknown"
}

// Placement describes where the interactive object sits: either at a tracked Anchor position
// or at a fixed world Offset, depending on Mode.
type Placement struct {
	Mode   PlacementMode
	Anchor Vector3 // world position of the tracked anchor; used in PlacementTracked mode
	Offset Vector3 // fixed world offset; used in PlacementFixed mode
}

// NewTrackedPlacement returns a Placement pinned to the given anchor position.
func NewTrackedPlacement(anchor Vector3) Placement {
	return Placement{Mode: PlacementTracked, Anchor: anchor}
}

// NewFixedPlacement returns a Placement at the given fixed world offset.
func NewFixedPlacement(offset Vector3) Placement {
	return Placement{Mode: PlacementFixed, Offset: offset}
}

// Position returns the world position the Placement resolves to under its Mode.
func (placement Placement) Position() Vector3 {
	if placement.Mode == PlacementTracked {
		return placement.Anchor
	}
	return placement.Offset
}

// MoveAnchor updates the tracked anchor position (tracking runtimes refine anchors over time)
// and returns the modified copy. The fixed offset is untouched.
func (placement Placement) MoveAnchor(anchor Vector3) Placement {
	placement.Anchor = anchor
	return placement
}

// Transform is a placed orientation - the value the external rendering layer applies to the
// object's node. Position comes from the Placement, Rotation from the Orienter.
type Transform struct {
	Position Vector3
	Rotation Quaternion
}
