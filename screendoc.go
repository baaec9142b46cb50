package droplist

import "github.com/gdamore/tcell/v2"

// StaticElement is a fixed measured element, useful for anchors and
// attachment regions whose geometry the host already tracks.
type StaticElement struct {
	rect Rect
}

// NewStaticElement returns an element with the given rectangle.
func NewStaticElement(r Rect) *StaticElement {
	return &StaticElement{rect: r}
}

// SetBoundingRect updates the element's rectangle.
func (e *StaticElement) SetBoundingRect(r Rect) {
	e.rect = r
}

// ClientHeight returns the rectangle's height.
func (e *StaticElement) ClientHeight() int {
	return e.rect.Height
}

// ScrollTop returns 0; static elements do not scroll.
func (e *StaticElement) ScrollTop() int {
	return 0
}

// SetScrollTop is a no-op.
func (e *StaticElement) SetScrollTop(int) {}

// BoundingRect returns the element's rectangle.
func (e *StaticElement) BoundingRect() Rect {
	return e.rect
}

// ScreenDocument adapts a tcell screen to the Document surface. Hosts
// register named regions as attachment targets, feed events through
// HandleEvent from their event loop, and draw attached overlays last so
// panels appear above other content.
type ScreenDocument struct {
	screen tcell.Screen

	regions  map[string]Element
	overlays []Element

	resized handlerList[func()]
	pointer handlerList[func(x, y int)]
}

// NewScreenDocument returns a document over the given screen.
func NewScreenDocument(screen tcell.Screen) *ScreenDocument {
	return &ScreenDocument{
		screen:  screen,
		regions: map[string]Element{},
	}
}

// RegisterRegion makes an element resolvable under the given selector.
func (d *ScreenDocument) RegisterRegion(selector string, el Element) *ScreenDocument {
	d.regions[selector] = el
	return d
}

// Resolve returns the element registered under selector, or nil.
func (d *ScreenDocument) Resolve(selector string) Element {
	return d.regions[selector]
}

// ScrollTop returns 0; terminal screens do not scroll as a page.
func (d *ScreenDocument) ScrollTop() int {
	return 0
}

// ViewportHeight returns the screen's height.
func (d *ScreenDocument) ViewportHeight() int {
	_, height := d.screen.Size()
	return height
}

// OnResize registers an observer for screen resize events.
func (d *ScreenDocument) OnResize(fn func()) *Subscription {
	return d.resized.add(fn)
}

// OnPointerDown registers an observer for primary-button press events.
func (d *ScreenDocument) OnPointerDown(fn func(x, y int)) *Subscription {
	return d.pointer.add(fn)
}

// Attach hosts panel as an overlay of the resolved container. The returned
// subscription removes it from the overlay stack.
func (d *ScreenDocument) Attach(panel, container Element) *Subscription {
	d.overlays = append(d.overlays, panel)
	return NewSubscription(func() {
		for i, el := range d.overlays {
			if el == panel {
				d.overlays = append(d.overlays[:i], d.overlays[i+1:]...)
				return
			}
		}
	})
}

// Overlays returns the attached overlay elements in attachment order. Hosts
// draw these after their own content.
func (d *ScreenDocument) Overlays() []Element {
	return d.overlays
}

// HandleEvent fans a tcell event out to the document's observers. It returns
// true when the event was one the document understands.
func (d *ScreenDocument) HandleEvent(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventResize:
		d.resized.each(func(fn func()) { fn() })
		return true
	case *tcell.EventMouse:
		if event.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := event.Position()
		d.pointer.each(func(fn func(x, y int)) { fn(x, y) })
		return true
	}
	return false
}

var _ Document = &ScreenDocument{}
var _ Attacher = &ScreenDocument{}
