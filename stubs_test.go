package droplist

import "time"

// manualScheduler gives tests step control over presentation timing.
type manualScheduler struct {
	frames []func()
	timers []*manualTimer
}

type manualTimer struct {
	fn        func()
	cancelled bool
}

func (s *manualScheduler) RequestFrame(fn func()) {
	s.frames = append(s.frames, fn)
}

func (s *manualScheduler) After(delay time.Duration, fn func()) *Subscription {
	timer := &manualTimer{fn: fn}
	s.timers = append(s.timers, timer)
	return NewSubscription(func() { timer.cancelled = true })
}

// drainFrames runs queued frame callbacks, including ones they queue.
func (s *manualScheduler) drainFrames() {
	for len(s.frames) > 0 {
		fn := s.frames[0]
		s.frames = s.frames[1:]
		fn()
	}
}

// fireTimers runs every pending timer once, then drains resulting frames.
func (s *manualScheduler) fireTimers() {
	timers := s.timers
	s.timers = nil
	for _, timer := range timers {
		if !timer.cancelled {
			timer.fn()
		}
	}
	s.drainFrames()
}

// stubViewport scripts the measured geometry of a rendering surface.
type stubViewport struct {
	clientHeight  int
	scrollTop     int
	rect          Rect
	childHeights  []int
	contentHeight int

	scrolled handlerList[func()]
	frames   []Rect
}

func (s *stubViewport) ClientHeight() int {
	return s.clientHeight
}

func (s *stubViewport) ScrollTop() int {
	return s.scrollTop
}

func (s *stubViewport) SetScrollTop(top int) {
	if top < 0 {
		top = 0
	}
	if top == s.scrollTop {
		return
	}
	s.scrollTop = top
	s.scrolled.each(func(fn func()) { fn() })
}

func (s *stubViewport) BoundingRect() Rect {
	return s.rect
}

func (s *stubViewport) ContentHeight() int {
	return s.contentHeight
}

func (s *stubViewport) ChildCount() int {
	return len(s.childHeights)
}

func (s *stubViewport) ChildHeight(i int) int {
	if i < 0 || i >= len(s.childHeights) {
		return 0
	}
	return s.childHeights[i]
}

func (s *stubViewport) OnScroll(fn func()) *Subscription {
	return s.scrolled.add(fn)
}

func (s *stubViewport) SetFrame(r Rect) {
	s.frames = append(s.frames, r)
	s.rect = r
}

// mountRows simulates the surface rendering count rows of the given height.
func (s *stubViewport) mountRows(count, height int) {
	s.childHeights = make([]int, count)
	for i := range s.childHeights {
		s.childHeights[i] = height
	}
}

// stubDocument scripts the page the panel is mounted into.
type stubDocument struct {
	regions       map[string]Element
	pageScrollTop int
	pageHeight    int

	resized handlerList[func()]
	pointer handlerList[func(x, y int)]

	attached int
	detached int
}

func newStubDocument() *stubDocument {
	return &stubDocument{regions: map[string]Element{}, pageHeight: 800}
}

func (d *stubDocument) Resolve(selector string) Element {
	return d.regions[selector]
}

func (d *stubDocument) ScrollTop() int {
	return d.pageScrollTop
}

func (d *stubDocument) ViewportHeight() int {
	return d.pageHeight
}

func (d *stubDocument) OnResize(fn func()) *Subscription {
	return d.resized.add(fn)
}

func (d *stubDocument) OnPointerDown(fn func(x, y int)) *Subscription {
	return d.pointer.add(fn)
}

func (d *stubDocument) Attach(panel, container Element) *Subscription {
	d.attached++
	return NewSubscription(func() { d.detached++ })
}

func (d *stubDocument) fireResize() {
	d.resized.each(func(fn func()) { fn() })
}

func (d *stubDocument) firePointerDown(x, y int) {
	d.pointer.each(func(fn func(x, y int)) { fn(x, y) })
}
