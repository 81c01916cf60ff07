package behaviour

// DefaultDeltaTime is used until the engine reports a real frame time.
const DefaultDeltaTime float32 = 1.0 / 60.0

var deltaTime = DefaultDeltaTime

// SetDeltaTime records the duration of the current frame in seconds. The
// engine calls it once per frame before UpdateAll.
func SetDeltaTime(dt float32) {
	if dt <= 0 {
		dt = DefaultDeltaTime
	}
	deltaTime = dt
}

// DeltaTime returns the duration of the current frame in seconds.
func DeltaTime() float32 {
	return deltaTime
}
