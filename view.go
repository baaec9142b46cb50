package droplist

import "github.com/gdamore/tcell/v2"

// Row is one renderable option line. Height lets a row span several cells;
// the windowing engine still assumes rows share the sampled height, so
// mixed-height content renders imprecisely but never out of bounds.
type Row struct {
	Text   string
	Height int
	Marked bool
}

// SlotFunc renders an opaque header or footer band. It receives the band's
// rectangle and may draw anything into it.
type SlotFunc func(screen tcell.Screen, x, y, width, height int)

// View is a tcell-backed option list that renders the rows it is given and
// reports measured geometry back, implementing Viewport. It draws only the
// materialized slice; top padding and scroll height keep its scroll bar
// proportional to the full item set.
type View struct {
	x, y, width, height int

	border bool
	title  string

	backgroundColor tcell.Color
	borderStyle     tcell.Style
	textStyle       tcell.Style
	markedStyle     tcell.Style

	header       SlotFunc
	headerHeight int
	footer       SlotFunc
	footerHeight int

	rows      []Row
	window    Window
	scrollTop int

	scrollBar *ScrollBar

	scrolled handlerList[func()]
}

// NewView returns a new view with the default theme and no border.
func NewView() *View {
	return &View{
		width:           15,
		height:          10,
		backgroundColor: Styles.PanelBackgroundColor,
		borderStyle: tcell.StyleDefault.
			Foreground(Styles.BorderColor).
			Background(Styles.PanelBackgroundColor),
		textStyle: tcell.StyleDefault.
			Foreground(Styles.TextColor).
			Background(Styles.PanelBackgroundColor),
		markedStyle: tcell.StyleDefault.
			Foreground(Styles.MarkedTextColor).
			Background(Styles.MarkedBackgroundColor),
		scrollBar: NewScrollBar(),
	}
}

// SetBorder toggles the one-cell border around the view.
func (v *View) SetBorder(border bool) *View {
	v.border = border
	return v
}

// SetTitle sets the title drawn into the top border.
func (v *View) SetTitle(title string) *View {
	v.title = title
	return v
}

// SetTextStyle sets the style of option rows.
func (v *View) SetTextStyle(style tcell.Style) *View {
	v.textStyle = style
	return v
}

// SetMarkedStyle sets the style of the marked row.
func (v *View) SetMarkedStyle(style tcell.Style) *View {
	v.markedStyle = style
	return v
}

// SetHeader sets a render slot drawn above the scrolling rows. The slot is
// passed through opaquely; height reserves its band.
func (v *View) SetHeader(height int, slot SlotFunc) *View {
	if height < 0 {
		height = 0
	}
	v.headerHeight = height
	v.header = slot
	return v
}

// SetFooter sets a render slot drawn below the scrolling rows.
func (v *View) SetFooter(height int, slot SlotFunc) *View {
	if height < 0 {
		height = 0
	}
	v.footerHeight = height
	v.footer = slot
	return v
}

// SetRows replaces the materialized rows.
func (v *View) SetRows(rows []Row) *View {
	v.rows = rows
	return v
}

// SetWindow sets the window the rows were materialized from. The view uses
// its top padding to place rows and its scroll height for the scroll bar.
func (v *View) SetWindow(w Window) *View {
	v.window = w
	return v
}

// SetRect sets the view's rectangle.
func (v *View) SetRect(x, y, width, height int) {
	v.x, v.y, v.width, v.height = x, y, width, height
}

// SetFrame sets the view's rectangle from a measured Rect. The panel calls
// this to glue an externally attached view to its anchor.
func (v *View) SetFrame(r Rect) {
	v.SetRect(r.Left, r.Top, r.Width, r.Height)
}

// GetRect returns the view's rectangle.
func (v *View) GetRect() (int, int, int, int) {
	return v.x, v.y, v.width, v.height
}

// BoundingRect returns the view's rectangle as a measured Rect.
func (v *View) BoundingRect() Rect {
	return Rect{Top: v.y, Left: v.x, Width: v.width, Height: v.height}
}

// ClientHeight returns the pixel height of the scrolling row area: the inner
// height minus the header and footer bands.
func (v *View) ClientHeight() int {
	h := v.height - v.headerHeight - v.footerHeight
	if v.border {
		h -= 2
	}
	if h < 0 {
		h = 0
	}
	return h
}

// ScrollTop returns the current scroll offset.
func (v *View) ScrollTop() int {
	return v.scrollTop
}

// SetScrollTop sets the scroll offset directly, clamped to the scrollable
// range, and notifies scroll observers on change.
func (v *View) SetScrollTop(top int) {
	if maxTop := v.ContentHeight() - v.ClientHeight(); top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	if top == v.scrollTop {
		return
	}
	v.scrollTop = top
	v.scrolled.each(func(fn func()) { fn() })
}

// Scroll adjusts the scroll offset by delta pixels. Positive scrolls down.
func (v *View) Scroll(delta int) {
	v.SetScrollTop(v.scrollTop + delta)
}

// ContentHeight returns the pixel height of the content: the scroll height
// when a virtualized window is set, the summed row heights otherwise.
func (v *View) ContentHeight() int {
	if v.window.ScrollHeight > 0 {
		return v.window.ScrollHeight
	}
	total := 0
	for i := range v.rows {
		total += v.ChildHeight(i)
	}
	return total
}

// ChildCount returns the number of materialized rows.
func (v *View) ChildCount() int {
	return len(v.rows)
}

// ChildHeight returns the measured height of materialized row i.
func (v *View) ChildHeight(i int) int {
	if i < 0 || i >= len(v.rows) {
		return 0
	}
	return max(v.rows[i].Height, 1)
}

// OnScroll registers an observer for scroll offset changes.
func (v *View) OnScroll(fn func()) *Subscription {
	return v.scrolled.add(fn)
}

// Draw draws the view onto the screen.
func (v *View) Draw(screen tcell.Screen) {
	if v.width <= 0 || v.height <= 0 {
		return
	}

	background := tcell.StyleDefault.Background(v.backgroundColor)
	for y := v.y; y < v.y+v.height; y++ {
		for x := v.x; x < v.x+v.width; x++ {
			screen.SetContent(x, y, ' ', nil, background)
		}
	}

	innerX, innerY, innerWidth, innerHeight := v.x, v.y, v.width, v.height
	if v.border && v.width >= 2 && v.height >= 2 {
		v.drawBorder(screen)
		innerX++
		innerY++
		innerWidth -= 2
		innerHeight -= 2
	}
	if innerWidth <= 0 || innerHeight <= 0 {
		return
	}

	if v.header != nil && v.headerHeight > 0 {
		v.header(screen, innerX, innerY, innerWidth, min(v.headerHeight, innerHeight))
	}
	if v.footer != nil && v.footerHeight > 0 && innerHeight > v.headerHeight {
		footerY := innerY + innerHeight - v.footerHeight
		if footerY < innerY+v.headerHeight {
			footerY = innerY + v.headerHeight
		}
		v.footer(screen, innerX, footerY, innerWidth, innerY+innerHeight-footerY)
	}

	rowsY := innerY + v.headerHeight
	rowsHeight := v.ClientHeight()
	if rowsHeight <= 0 {
		return
	}

	rowsWidth := innerWidth
	overflow := v.ContentHeight() > rowsHeight
	if overflow && rowsWidth > 1 {
		rowsWidth--
	}

	top := v.window.TopPadding - v.scrollTop
	for i, row := range v.rows {
		height := v.ChildHeight(i)
		if top+height > 0 && top < rowsHeight {
			v.drawRow(screen, row, innerX, rowsY, rowsWidth, rowsHeight, top, height)
		}
		top += height
		if top >= rowsHeight {
			break
		}
	}

	if overflow {
		v.scrollBar.
			SetLengths(v.ContentHeight(), rowsHeight).
			SetOffset(v.scrollTop).
			DrawColumn(screen, innerX+rowsWidth, rowsY, rowsHeight)
	}
}

// drawRow draws one row at the given offset within the row area, clipped to
// the area's bounds.
func (v *View) drawRow(screen tcell.Screen, row Row, x, areaY, width, areaHeight, top, height int) {
	style := v.textStyle
	if row.Marked {
		style = v.markedStyle
	}
	for line := 0; line < height; line++ {
		lineTop := top + line
		if lineTop < 0 || lineTop >= areaHeight {
			continue
		}
		y := areaY + lineTop
		for cx := x; cx < x+width; cx++ {
			screen.SetContent(cx, y, ' ', nil, style)
		}
		if line == 0 {
			drawText(screen, x, y, width, row.Text, style)
		}
	}
}

func (v *View) drawBorder(screen tcell.Screen) {
	right := v.x + v.width - 1
	bottom := v.y + v.height - 1
	for x := v.x + 1; x < right; x++ {
		screen.SetContent(x, v.y, '─', nil, v.borderStyle)
		screen.SetContent(x, bottom, '─', nil, v.borderStyle)
	}
	for y := v.y + 1; y < bottom; y++ {
		screen.SetContent(v.x, y, '│', nil, v.borderStyle)
		screen.SetContent(right, y, '│', nil, v.borderStyle)
	}
	screen.SetContent(v.x, v.y, '┌', nil, v.borderStyle)
	screen.SetContent(right, v.y, '┐', nil, v.borderStyle)
	screen.SetContent(v.x, bottom, '└', nil, v.borderStyle)
	screen.SetContent(right, bottom, '┘', nil, v.borderStyle)

	if v.title != "" && v.width >= 4 {
		drawText(screen, v.x+1, v.y, v.width-2, v.title, v.borderStyle)
	}
}

var _ Viewport = &View{}
var _ FramedElement = &View{}
