package droplist

import "time"

// Placement selects where the panel opens relative to its anchor.
type Placement int

const (
	// PlacementBottom opens the panel below the anchor.
	PlacementBottom Placement = iota
	// PlacementTop opens the panel above the anchor.
	PlacementTop
	// PlacementAuto measures the page and picks whichever direction fits.
	// It is only ever a requested placement; resolution always produces
	// PlacementTop or PlacementBottom.
	PlacementAuto
)

// String returns the placement name.
func (p Placement) String() string {
	switch p {
	case PlacementBottom:
		return "bottom"
	case PlacementTop:
		return "top"
	case PlacementAuto:
		return "auto"
	}
	return "unknown"
}

const (
	// autoPlaceRetryDelay is the cadence at which auto placement re-checks
	// for a measurable option row while waiting for the first paint.
	autoPlaceRetryDelay = 5 * time.Millisecond
	// autoPlaceMaxAttempts caps the retry loop. On exhaustion the panel
	// resolves to the default direction instead of staying unplaced.
	autoPlaceMaxAttempts = 200
)

// positioner resolves a requested placement into a concrete top or bottom
// decision and keeps an externally attached panel rectangle glued to its
// anchor. It is re-run on structural events only (open, resize, anchor
// relocation, requested placement change), never on scrolling.
type positioner struct {
	doc       Document
	scheduler Scheduler
	anchor    Element
	container Element // nil while the panel sits in its natural parent

	requested Placement
	resolved  Placement

	attempts int
	retry    *Subscription

	// measurable reports whether an option row exists and has a height.
	measurable func() bool
	// panelHeight returns the panel's current pixel height.
	panelHeight func() int
	// moved applies the recomputed panel rectangle, container-relative.
	moved func(r Rect)
	// changed receives the resolved placement, once per resolution.
	changed func(p Placement)
}

// request sets the requested placement and re-evaluates.
func (p *positioner) request(pl Placement) {
	p.requested = pl
	p.evaluate()
}

// evaluate recomputes the resolved placement for the current request. Fixed
// requests resolve unconditionally; auto defers until a row is measurable.
func (p *positioner) evaluate() {
	p.cancelRetry()
	switch p.requested {
	case PlacementTop, PlacementBottom:
		p.resolve(p.requested)
	case PlacementAuto:
		p.attempts = 0
		p.autoResolve()
	}
}

// autoResolve decides between top and bottom from measured geometry. Before
// the first paint there is no option row to measure, so it reschedules
// itself on a short delay until one mounts. The resolved placement is
// emitted once, when the decision is made, not on every retry.
func (p *positioner) autoResolve() {
	if !p.measurable() {
		if p.attempts >= autoPlaceMaxAttempts {
			logger.Warn("auto placement gave up waiting for a measurable row",
				"attempts", p.attempts)
			p.resolve(PlacementBottom)
			return
		}
		p.attempts++
		p.retry = p.scheduler.After(autoPlaceRetryDelay, p.autoResolve)
		return
	}

	anchor := p.anchor.BoundingRect()
	if anchor.Bottom()+p.panelHeight() > p.doc.ScrollTop()+p.doc.ViewportHeight() {
		p.resolve(PlacementTop)
	} else {
		p.resolve(PlacementBottom)
	}
}

func (p *positioner) resolve(pl Placement) {
	p.resolved = pl
	logger.Debug("placement resolved", "placement", pl.String())
	p.reposition()
	if p.changed != nil {
		p.changed(pl)
	}
}

// reposition recomputes the panel's absolute rectangle from the anchor's
// rectangle relative to the containing box. Only externally attached panels
// are repositioned; a panel in its natural parent follows document flow.
func (p *positioner) reposition() {
	if p.container == nil || p.moved == nil {
		return
	}
	anchor := p.anchor.BoundingRect()
	container := p.container.BoundingRect()

	top := anchor.Top - container.Top
	if p.resolved == PlacementBottom {
		top += anchor.Height
	} else {
		top -= p.panelHeight()
	}

	p.moved(Rect{
		Top:    top,
		Left:   anchor.Left - container.Left,
		Width:  anchor.Width,
		Height: p.panelHeight(),
	})
}

func (p *positioner) cancelRetry() {
	p.retry.Dispose()
	p.retry = nil
}
