package droplist

// DefaultBuffer is the number of extra rows materialized on each side of the
// visible range.
const DefaultBuffer = 4

// Dimensions is the measured geometry one windowing pass works from. It is
// derived fresh on every pass and never cached across generations, since the
// sampled row height may change once real rows mount.
type Dimensions struct {
	// ItemCount is the number of records in the current item set.
	ItemCount int
	// ChildHeight is the sampled pixel height of one row. Zero means no row
	// has been measured yet.
	ChildHeight int
	// ViewHeight is the scroll container's inner pixel height.
	ViewHeight int
}

// Window is the materialized slice [Start, End) of the item set, along with
// the paddings that keep the scroll bar proportional to the full set.
// Invariant: 0 <= Start <= End <= ItemCount.
type Window struct {
	Start        int
	End          int
	TopPadding   int
	ScrollHeight int
}

// ComputeWindow returns the window for the given geometry, scroll offset and
// buffer. It is pure and idempotent: identical inputs yield identical
// windows, which is what lets the startup loop detect its fixed point.
func ComputeWindow(d Dimensions, scrollTop, buffer int) Window {
	if d.ItemCount <= 0 {
		return Window{}
	}
	if buffer < 0 {
		buffer = 0
	}
	if d.ChildHeight <= 0 {
		// No measurable row yet. Materialize everything so a row can mount
		// and provide a height for the next pass.
		return Window{End: d.ItemCount}
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	visible := d.ViewHeight / d.ChildHeight
	scrollHeight := d.ItemCount * d.ChildHeight

	start := scrollTop/d.ChildHeight - buffer
	if scrollTop > scrollHeight {
		// Overscrolled past the content, pin the window to the last page.
		start = d.ItemCount - visible
	}
	if start < 0 {
		start = 0
	}

	end := start + visible + 2*buffer
	if end > d.ItemCount {
		end = d.ItemCount
	}

	return Window{
		Start:        start,
		End:          end,
		TopPadding:   start * d.ChildHeight,
		ScrollHeight: scrollHeight,
	}
}
