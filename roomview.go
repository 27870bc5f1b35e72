package roomview

// roomview turns 2D pointer drags into 3D orientation for a single placeable object (a room-scale model).
// The Orienter is the heart of the package - a pitch/yaw accumulator fed by drag deltas - while Session,
// Placement, and Config wrap it with the plumbing an interactive viewer needs. Rendering, input capture,
// and tracking are left to whatever runtime hosts the package (see examples/roomviewer for an
// Ebitengine + Tetra3D host).
