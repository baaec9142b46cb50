package droplist

// scrollEndDetector turns the level "scroll offset is at the end of the
// content" into an edge that fires at most once per item-set generation.
// Scrolling back up does not re-arm it; only a generation change does.
type scrollEndDetector struct {
	fired bool
}

// rearm resets the detector for a new generation.
func (s *scrollEndDetector) rearm() {
	s.fired = false
}

// check reports whether the end-of-content event should fire now. It returns
// true exactly once per generation.
func (s *scrollEndDetector) check(scrollTop, viewHeight, contentExtent int) bool {
	if s.fired || contentExtent <= 0 {
		return false
	}
	if scrollTop+viewHeight < contentExtent {
		return false
	}
	s.fired = true
	return true
}
