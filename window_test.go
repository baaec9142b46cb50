package droplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWindowMidScroll(t *testing.T) {
	d := Dimensions{ItemCount: 100, ChildHeight: 20, ViewHeight: 200}
	w := ComputeWindow(d, 300, 4)

	assert.Equal(t, 11, w.Start)
	assert.Equal(t, 29, w.End)
	assert.Equal(t, 220, w.TopPadding)
	assert.Equal(t, 2000, w.ScrollHeight)
}

func TestComputeWindowAtTop(t *testing.T) {
	d := Dimensions{ItemCount: 100, ChildHeight: 20, ViewHeight: 200}
	w := ComputeWindow(d, 0, 4)

	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 18, w.End)
	assert.Equal(t, 0, w.TopPadding)
}

func TestComputeWindowEmptyItems(t *testing.T) {
	w := ComputeWindow(Dimensions{ItemCount: 0, ChildHeight: 20, ViewHeight: 200}, 100, 4)
	assert.Equal(t, Window{}, w)
}

func TestComputeWindowUnmeasuredRowHeight(t *testing.T) {
	// Without a measurable row everything is materialized so a row can
	// mount and provide a height for the next pass.
	w := ComputeWindow(Dimensions{ItemCount: 42, ChildHeight: 0, ViewHeight: 200}, 0, 4)
	assert.Equal(t, Window{Start: 0, End: 42}, w)
}

func TestComputeWindowOverscrollClampsToLastPage(t *testing.T) {
	d := Dimensions{ItemCount: 100, ChildHeight: 20, ViewHeight: 200}
	w := ComputeWindow(d, 5000, 4)

	assert.Equal(t, 90, w.Start)
	assert.Equal(t, 100, w.End)
	assert.Equal(t, 1800, w.TopPadding)
}

func TestComputeWindowNegativeBufferClampsToZero(t *testing.T) {
	d := Dimensions{ItemCount: 100, ChildHeight: 20, ViewHeight: 200}
	assert.Equal(t, ComputeWindow(d, 300, 0), ComputeWindow(d, 300, -3))
}

func TestComputeWindowBounds(t *testing.T) {
	for _, itemCount := range []int{0, 1, 5, 100, 10000} {
		for _, childHeight := range []int{1, 7, 20} {
			for _, viewHeight := range []int{0, 10, 200, 1000} {
				for _, buffer := range []int{0, 1, 4, 50} {
					for _, scrollTop := range []int{0, 3, 199, 2000, 1 << 20} {
						d := Dimensions{ItemCount: itemCount, ChildHeight: childHeight, ViewHeight: viewHeight}
						w := ComputeWindow(d, scrollTop, buffer)

						assert.GreaterOrEqual(t, w.Start, 0)
						assert.LessOrEqual(t, w.Start, w.End)
						assert.LessOrEqual(t, w.End, itemCount)
						if itemCount > 0 {
							assert.Equal(t, w.Start*childHeight, w.TopPadding)
						}
					}
				}
			}
		}
	}
}

func TestComputeWindowIdempotent(t *testing.T) {
	d := Dimensions{ItemCount: 1000, ChildHeight: 14, ViewHeight: 130}
	first := ComputeWindow(d, 777, 4)
	second := ComputeWindow(d, 777, 4)
	assert.Equal(t, first, second)
}
