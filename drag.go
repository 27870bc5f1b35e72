package roomview

// DragSample is one snapshot of an in-progress or completed pointer gesture, as UI toolkits
// report them: Start is where the pointer went down, Translation is the cumulative movement
// since Start (not since the previous sample), and End holds the lift position once Ended is set.
// Samples are plain values; the producer owns them and nothing here retains references.
type DragSample struct {
	Start       Vector2
	Translation Vector2
	End         Vector2
	Ended       bool
}

// DragStream converts a stream of cumulative-translation DragSamples into true incremental
// deltas suitable for Orienter.Update. UI toolkits report pan translation measured from the
// start of the current gesture, which restarts at every touch-down; feeding that to an
// accumulator directly double-counts movement within a gesture. DragStream instead diffs each
// sample against the previous one of the same gesture, and drops its reference when a sample
// arrives with Ended set, so consecutive gestures compose cleanly on the accumulator.
//
// Like Orienter, a DragStream serves a single gesture producer and is not safe for concurrent use.
type DragStream struct {
	active   bool
	previous Vector2 // cumulative translation at the previous sample of this gesture
}

// NewDragStream returns a new DragStream awaiting the first gesture.
func NewDragStream() *DragStream {
	return &DragStream{}
}

// Feed consumes one DragSample and returns the incremental movement it represents over the
// previous sample of the same gesture. The first sample of a gesture yields its full translation
// (previous reference is zero). A non-finite sample is ignored and yields a zero delta, but an
// Ended flag on it still closes the gesture.
func (stream *DragStream) Feed(sample DragSample) Vector2 {

	delta := Vector2{}

	if sample.Translation.IsFinite() {
		if !stream.active {
			stream.active = true
			stream.previous = Vector2{}
		}
		delta = sample.Translation.Sub(stream.previous)
		stream.previous = sample.Translation
	}

	if sample.Ended {
		stream.active = false
		stream.previous = Vector2{}
	}

	return delta

}

// Active returns true while a gesture is in progress (a sample has been fed and no Ended
// sample has closed it yet).
func (stream *DragStream) Active() bool {
	return stream.active
}

// Reset abandons any in-progress gesture, returning the DragStream to its initial state.
func (stream *DragStream) Reset() {
	stream.active = false
	stream.previous = Vector2{}
}
