package droplist

import "time"

// Rect is a measured rectangle in surface pixels. On terminal surfaces a
// pixel is one character cell. Panels are always anchored by their top edge;
// a Rect carries no bottom coordinate.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Bottom returns the y coordinate just below the rectangle.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Right returns the x coordinate just right of the rectangle.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Element is a node on the measured surface. The panel only ever reads
// geometry from elements; it never computes layout.
type Element interface {
	// ClientHeight returns the element's inner pixel height.
	ClientHeight() int
	// ScrollTop returns the current vertical scroll offset.
	ScrollTop() int
	// SetScrollTop sets the vertical scroll offset directly, not animated.
	SetScrollTop(top int)
	// BoundingRect returns the element's rectangle in surface coordinates.
	BoundingRect() Rect
}

// FramedElement is an element whose rectangle can be set from outside. The
// panel uses it to glue an externally attached view to its anchor.
type FramedElement interface {
	Element
	SetFrame(r Rect)
}

// Viewport is the scroll container holding the materialized option rows.
// Row indices are viewport-relative: row 0 is the first materialized row,
// not the first record of the item set.
type Viewport interface {
	Element

	// ContentHeight returns the pixel height of the rendered content.
	ContentHeight() int
	// ChildCount returns the number of materialized rows.
	ChildCount() int
	// ChildHeight returns the measured pixel height of materialized row i.
	ChildHeight(i int) int
	// OnScroll registers an observer for scroll offset changes.
	OnScroll(fn func()) *Subscription
}

// Document is the process-wide event source and element registry the panel
// is mounted into.
type Document interface {
	// Resolve returns the element matching the selector, or nil when the
	// selector matches nothing.
	Resolve(selector string) Element
	// ScrollTop returns the page scroll offset.
	ScrollTop() int
	// ViewportHeight returns the page's visible pixel height.
	ViewportHeight() int
	// OnResize registers an observer for page resize events.
	OnResize(fn func()) *Subscription
	// OnPointerDown registers an observer for pointer-down events anywhere
	// on the page.
	OnPointerDown(fn func(x, y int)) *Subscription
}

// Attacher is implemented by documents that can host a panel element under
// a resolved container element. The returned subscription detaches it.
type Attacher interface {
	Attach(panel, container Element) *Subscription
}

// Scheduler runs work against presentation timing. RequestFrame callbacks
// submitted during one frame run in submission order before the next
// repaint; After runs a callback once on the same timeline after a delay.
type Scheduler interface {
	RequestFrame(fn func())
	After(delay time.Duration, fn func()) *Subscription
}

// Subscription is the cancellation capability returned by event
// registration. Dispose detaches the observer; it is safe to call more than
// once and on a nil subscription.
type Subscription struct {
	cancel func()
}

// NewSubscription wraps a cancel function into a one-shot subscription.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Dispose cancels the subscription. Only the first call has an effect.
func (s *Subscription) Dispose() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

// handlerList tracks registered observers and hands out removal handles.
type handlerList[T any] struct {
	nextID  int
	entries []handlerEntry[T]
}

type handlerEntry[T any] struct {
	id int
	fn T
}

func (l *handlerList[T]) add(fn T) *Subscription {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[T]{id: id, fn: fn})
	return NewSubscription(func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i], l.entries[i+1:]...)
				return
			}
		}
	})
}

// each visits a snapshot of the current observers, so observers may
// unregister themselves while being notified.
func (l *handlerList[T]) each(visit func(fn T)) {
	entries := make([]handlerEntry[T], len(l.entries))
	copy(entries, l.entries)
	for _, e := range entries {
		visit(e.fn)
	}
}
