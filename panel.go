package droplist

import (
	"errors"
	"fmt"
)

// Item is one opaque option record. ScrollTo locates records by equality, so
// records should be comparable values (strings, small structs, pointers).
type Item any

// ErrAppendTarget is returned by Mount and Relocate when the configured
// append target selector matches no element. The panel cannot be positioned
// or displayed in that case, so this is fatal rather than retried.
var ErrAppendTarget = errors.New("droplist: append target not found")

// Panel is a floating, scrollable option panel anchored to a control. It
// materializes only a window of its item set, reconciles estimated against
// real row heights after each item-set replacement, reports a one-shot
// scroll-to-end per generation, and keeps itself glued to its anchor.
//
// A Panel does not render. It reads measured geometry from a Viewport and
// publishes index windows back through callbacks; View is a tcell-backed
// Viewport that pairs with it. All methods must be called from the host's
// event goroutine.
type Panel struct {
	doc      Document
	viewport Viewport
	anchor   Element

	scheduler Scheduler

	items  []Item
	marked func() Item

	buffer    int
	virtual   bool
	appendTo  string
	placement Placement

	pos positioner
	end scrollEndDetector

	// Startup covers the stabilization phase after a generation change.
	// previousStart/previousEnd are -1 between generations so the first
	// pass always publishes.
	startup       bool
	previousStart int
	previousEnd   int
	lastWindow    Window

	refreshPending bool
	attached       bool
	disposed       bool

	scrollSub *Subscription
	resizeSub *Subscription
	clickSub  *Subscription
	detachSub *Subscription

	update       func(items []Item)
	scrollToEnd  func(start, end int)
	posChanged   func(p Placement)
	outsideClick func()
}

// New returns an unmounted panel with virtualization enabled and the
// default buffer.
func New() *Panel {
	return &Panel{
		scheduler:     SyncScheduler{},
		buffer:        DefaultBuffer,
		virtual:       true,
		placement:     PlacementBottom,
		startup:       true,
		previousStart: -1,
		previousEnd:   -1,
	}
}

// SetScheduler sets the presentation scheduler. Call before Mount.
func (p *Panel) SetScheduler(s Scheduler) *Panel {
	p.scheduler = s
	return p
}

// SetBuffer sets the number of extra rows materialized on each side of the
// visible range. Negative values clamp to zero.
func (p *Panel) SetBuffer(buffer int) *Panel {
	if buffer < 0 {
		buffer = 0
	}
	p.buffer = buffer
	return p
}

// SetVirtual toggles virtualization. When disabled, every item is
// materialized and the windowing engine is bypassed.
func (p *Panel) SetVirtual(virtual bool) *Panel {
	p.virtual = virtual
	return p
}

// SetAppendTo sets the selector of the element the panel is attached to
// instead of its natural parent. Call before Mount; use Relocate afterwards.
func (p *Panel) SetAppendTo(selector string) *Panel {
	p.appendTo = selector
	return p
}

// SetPlacement sets the requested placement. PlacementAuto resolves to top
// or bottom once an option row can be measured.
func (p *Panel) SetPlacement(pl Placement) *Panel {
	p.placement = pl
	if p.mounted() && !p.disposed {
		p.pos.request(pl)
	}
	return p
}

// SetMarkedFunc sets the accessor for the host control's marked item. After
// each generation settles, the panel scrolls the marked item into view once.
func (p *Panel) SetMarkedFunc(fn func() Item) *Panel {
	p.marked = fn
	return p
}

// SetUpdateFunc sets the handler receiving the materialized items whenever
// the window changes. Use Window to map the slice to absolute indices.
func (p *Panel) SetUpdateFunc(fn func(items []Item)) *Panel {
	p.update = fn
	return p
}

// SetScrollToEndFunc sets the handler fired when scrolling first reaches the
// end of the content, at most once per item-set generation.
func (p *Panel) SetScrollToEndFunc(fn func(start, end int)) *Panel {
	p.scrollToEnd = fn
	return p
}

// SetPositionChangedFunc sets the handler receiving the resolved placement,
// once per resolution.
func (p *Panel) SetPositionChangedFunc(fn func(pl Placement)) *Panel {
	p.posChanged = fn
	return p
}

// SetOutsideClickFunc sets the handler fired on pointer-down outside both
// the anchor and the panel.
func (p *Panel) SetOutsideClickFunc(fn func()) *Panel {
	p.outsideClick = fn
	return p
}

// Placement returns the most recently resolved placement. It is never
// PlacementAuto.
func (p *Panel) Placement() Placement {
	return p.pos.resolved
}

// Window returns the most recently published window.
func (p *Panel) Window() Window {
	return p.lastWindow
}

// Mount binds the panel to its measured surfaces and registers its event
// subscriptions. It returns ErrAppendTarget (wrapped with the selector) when
// the configured append target matches nothing.
func (p *Panel) Mount(doc Document, viewport Viewport, anchor Element) error {
	var container Element
	if p.appendTo != "" {
		container = doc.Resolve(p.appendTo)
		if container == nil {
			return fmt.Errorf("%w: %q", ErrAppendTarget, p.appendTo)
		}
	}

	p.doc = doc
	p.viewport = viewport
	p.anchor = anchor

	p.pos = positioner{
		doc:       doc,
		scheduler: p.scheduler,
		anchor:    anchor,
		container: container,
		measurable: func() bool {
			return len(p.items) > 0 && viewport.ChildCount() > 0 && viewport.ChildHeight(0) > 0
		},
		panelHeight: func() int {
			return viewport.BoundingRect().Height
		},
		changed: func(pl Placement) {
			if !p.disposed && p.posChanged != nil {
				p.posChanged(pl)
			}
		},
	}
	if framed, ok := viewport.(FramedElement); ok {
		p.pos.moved = framed.SetFrame
	}

	if container != nil {
		p.attached = true
		if attacher, ok := doc.(Attacher); ok {
			p.detachSub = attacher.Attach(viewport, container)
		}
	}

	p.resizeSub = doc.OnResize(p.handleResize)
	p.scrollSub = viewport.OnScroll(p.handleScroll)
	p.clickSub = doc.OnPointerDown(p.handlePointerDown)

	p.pos.request(p.placement)
	p.requestRefresh()
	return nil
}

// Relocate re-attaches a mounted panel under a different append target and
// re-evaluates its placement. It returns ErrAppendTarget (wrapped with the
// selector) when the selector matches nothing; the panel then keeps its
// previous attachment.
func (p *Panel) Relocate(selector string) error {
	if !p.mounted() || p.disposed {
		p.appendTo = selector
		return nil
	}
	container := p.doc.Resolve(selector)
	if container == nil {
		return fmt.Errorf("%w: %q", ErrAppendTarget, selector)
	}
	p.appendTo = selector
	p.detachSub.Dispose()
	p.detachSub = nil
	if attacher, ok := p.doc.(Attacher); ok {
		p.detachSub = attacher.Attach(p.viewport, container)
	}
	p.attached = true
	p.pos.container = container
	p.pos.evaluate()
	return nil
}

// SetItems replaces the option records, beginning a new generation: the
// scroll-to-end event re-arms and the next refresh re-enters the startup
// loop. Passing the current slice (same length, same backing array) is a
// no-op.
func (p *Panel) SetItems(items []Item) *Panel {
	if sameItems(p.items, items) {
		return p
	}
	p.items = items
	p.end.rearm()
	p.startup = true
	p.previousStart = -1
	p.previousEnd = -1
	p.lastWindow = Window{}
	if p.mounted() {
		p.requestRefresh()
	}
	return p
}

// Items returns the current generation's records.
func (p *Panel) Items() []Item {
	return p.items
}

// ScrollTo adjusts the scroll offset so the given record is in view. A nil
// record, or one not present in the current generation, is a no-op.
func (p *Panel) ScrollTo(item Item) {
	if item == nil || !p.mounted() || p.disposed {
		return
	}
	index := p.indexOf(item)
	if index < 0 {
		return
	}
	p.scrollToIndex(index)
}

// ScrollToTag scrolls one row past the last record, revealing a row the host
// appends below the options (such as an interactively created tag).
func (p *Panel) ScrollToTag() {
	if !p.mounted() || p.disposed {
		return
	}
	p.scrollToIndex(len(p.items))
}

// Dispose tears the panel down. The resize and scroll observers go first so
// no measurement runs against a disappearing surface, then the panel leaves
// its external container, then the outside-click observer goes. No event
// callback fires after Dispose returns.
func (p *Panel) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.pos.cancelRetry()
	p.resizeSub.Dispose()
	p.scrollSub.Dispose()
	if p.attached {
		p.detachSub.Dispose()
	}
	p.clickSub.Dispose()
}

func (p *Panel) mounted() bool {
	return p.viewport != nil
}

func (p *Panel) indexOf(item Item) int {
	for i, it := range p.items {
		if it == item {
			return i
		}
	}
	return -1
}

// requestRefresh coalesces refresh work onto the next frame. Measurement and
// window computation happen in the frame callback; observers are notified
// synchronously from there, once per published change.
func (p *Panel) requestRefresh() {
	if p.refreshPending || p.disposed {
		return
	}
	p.refreshPending = true
	p.scheduler.RequestFrame(func() {
		p.refreshPending = false
		p.refresh()
	})
}

func (p *Panel) refresh() {
	if p.disposed {
		return
	}
	if !p.virtual {
		p.refreshAll()
		return
	}
	if p.startup {
		p.stabilize()
		return
	}
	p.refreshWindow(-1)
}

// stabilize drives the windowing engine to a fixed point after a generation
// change. Early passes may compute from an estimated row height; each
// publish lets the surface mount real rows, so the next measurement sees
// corrected heights before a frame is presented. The loop exits when the
// window stops moving, then the marked item is revealed once.
//
// There is no iteration cap: termination relies on row heights that do not
// themselves depend on the published window.
func (p *Panel) stabilize() {
	for {
		prevStart, prevEnd := p.previousStart, p.previousEnd
		w := p.refreshWindow(-1)
		if w.Start == prevStart && w.End == prevEnd {
			break
		}
		logger.Debug("stabilization pass", "start", w.Start, "end", w.End)
	}
	p.startup = false
	p.markScrolled()
}

// refreshWindow runs one measure-compute-publish pass. targetIndex directs
// the probe to sample that row's height; pass -1 to sample the first row.
func (p *Panel) refreshWindow(targetIndex int) Window {
	d := probe{p.viewport}.measure(len(p.items), p.Window().Start, targetIndex)
	w := ComputeWindow(d, p.viewport.ScrollTop(), p.buffer)
	p.publish(w, d.ViewHeight, w.ScrollHeight)
	return w
}

// refreshAll publishes the full index range. It never loops: the full range
// is stable by construction, so no convergence is needed. The scroll-to-end
// reference is the rendered content's pixel height rather than a computed
// scroll height.
func (p *Panel) refreshAll() {
	w := Window{End: len(p.items)}
	p.publish(w, p.viewport.ClientHeight(), p.viewport.ContentHeight())
	if p.startup {
		p.startup = false
		p.markScrolled()
	}
}

// publish notifies observers of one computed window: the update event when
// the window moved, and the scroll-to-end event when its edge first trips.
func (p *Panel) publish(w Window, viewHeight, contentExtent int) {
	changed := w.Start != p.previousStart || w.End != p.previousEnd
	p.previousStart = w.Start
	p.previousEnd = w.End
	p.lastWindow = w

	if changed && p.update != nil {
		p.update(p.items[w.Start:w.End])
	}
	if p.end.check(p.viewport.ScrollTop(), viewHeight, contentExtent) && p.scrollToEnd != nil {
		p.scrollToEnd(w.Start, w.End)
	}
}

// markScrolled reveals the host's marked item, once per generation, after
// the window has settled.
func (p *Panel) markScrolled() {
	if p.marked == nil {
		return
	}
	p.ScrollTo(p.marked())
}

// scrollToIndex computes and sets the offset that brings index into view,
// consistent with the windowing engine's index-to-offset mapping. index may
// equal the item count to target a row appended past the options.
func (p *Panel) scrollToIndex(index int) {
	if index < 0 || index > len(p.items) {
		return
	}
	d := probe{p.viewport}.measure(len(p.items), p.Window().Start, index)
	if d.ChildHeight <= 0 {
		return
	}

	var offset int
	if p.virtual {
		offset = index * d.ChildHeight
	} else {
		offset = p.renderedHeightBefore(index)
	}

	// Leave a screenful of context above the target, minus one row so the
	// target is not flush with the bottom edge.
	visibleBuffer := d.ViewHeight/d.ChildHeight - 1
	if visibleBuffer < 0 {
		visibleBuffer = 0
	}
	if visibleBuffer > index {
		visibleBuffer = index
	}
	offset -= d.ChildHeight * visibleBuffer

	p.viewport.SetScrollTop(offset)
}

// renderedHeightBefore sums the actual pixel heights of the materialized
// rows before index. With virtualization disabled every row is materialized,
// so viewport-relative and absolute indices coincide.
func (p *Panel) renderedHeightBefore(index int) int {
	total := 0
	count := p.viewport.ChildCount()
	for i := 0; i < index && i < count; i++ {
		total += p.viewport.ChildHeight(i)
	}
	return total
}

func (p *Panel) handleScroll() {
	if p.disposed {
		return
	}
	p.requestRefresh()
}

func (p *Panel) handleResize() {
	if p.disposed {
		return
	}
	if p.attached {
		p.pos.evaluate()
	}
	p.requestRefresh()
}

func (p *Panel) handlePointerDown(x, y int) {
	if p.disposed || p.outsideClick == nil {
		return
	}
	if p.anchor.BoundingRect().Contains(x, y) || p.viewport.BoundingRect().Contains(x, y) {
		return
	}
	p.outsideClick()
}

// sameItems reports whether both slices are the same generation: equal
// length over the same backing array.
func sameItems(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return a == nil && b == nil
	}
	return &a[0] == &b[0]
}
