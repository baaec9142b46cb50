package droplist

// probe reads the geometry a windowing pass needs from the measured surface.
// It samples a single representative row; the windowing engine assumes
// uniform row heights, so mixed-height content renders imprecisely but never
// out of bounds.
type probe struct {
	viewport Viewport
}

// measure samples the viewport for the given item count. windowStart is the
// absolute index of the first materialized row. When targetIndex is
// non-negative and its row is materialized, the height sample comes from
// that row instead of the first one, so scrolling to a row whose height
// differs from the first row lands correctly.
func (p probe) measure(itemCount, windowStart, targetIndex int) Dimensions {
	d := Dimensions{
		ItemCount:  itemCount,
		ViewHeight: p.viewport.ClientHeight(),
	}
	count := p.viewport.ChildCount()
	if count == 0 {
		return d
	}
	sample := 0
	if targetIndex >= 0 {
		if i := targetIndex - windowStart; i >= 0 && i < count {
			sample = i
		}
	}
	d.ChildHeight = p.viewport.ChildHeight(sample)
	return d
}
