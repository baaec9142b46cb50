package droplist

import "github.com/gdamore/tcell/v2"

const subcell = 8

// ScrollGlyphSet defines the track glyph and fractional thumb glyphs used by
// the panel's scroll bar.
type ScrollGlyphSet struct {
	Track rune

	// ThumbLower[i] covers i+1 eighths of a cell from the bottom up,
	// ThumbUpper[i] from the top down.
	ThumbLower [8]rune
	ThumbUpper [8]rune
}

// MinimalScrollGlyphSet returns a space track with fractional thumbs.
func MinimalScrollGlyphSet() ScrollGlyphSet {
	g := LegacyScrollGlyphSet()
	g.Track = ' '
	return g
}

// LegacyScrollGlyphSet returns legacy-computing symbols for full 1/8
// fractional fidelity.
func LegacyScrollGlyphSet() ScrollGlyphSet {
	return ScrollGlyphSet{
		Track:      '│',
		ThumbLower: [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'},
		ThumbUpper: [8]rune{'▔', '🮂', '🮃', '▀', '🮄', '🮅', '🮆', '█'},
	}
}

// ScrollBar renders a vertical proportional thumb for a scrolling viewport.
// Lengths and offset are in surface pixels; the panel feeds it the windowing
// engine's scroll height, the viewport height and the current offset.
type ScrollBar struct {
	contentLen  int
	viewportLen int
	offset      int

	autoHide bool

	trackStyle tcell.Style
	thumbStyle tcell.Style
	glyphSet   ScrollGlyphSet
}

// NewScrollBar returns a new vertical scroll bar.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		autoHide:   true,
		trackStyle: tcell.StyleDefault.Foreground(Styles.ScrollTrackColor).Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.ScrollThumbColor),
		glyphSet:   MinimalScrollGlyphSet(),
	}
}

// SetLengths sets the content and viewport pixel lengths.
func (s *ScrollBar) SetLengths(contentLen, viewportLen int) *ScrollBar {
	s.contentLen = max(contentLen, 0)
	s.viewportLen = max(viewportLen, 0)
	return s
}

// SetOffset sets the scroll offset.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g ScrollGlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

// SetAutoHide controls whether the bar disappears when there is nothing to
// scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeScrollMetrics works in subcell units so the thumb moves in 1/8-cell
// steps while staying proportional to viewport/content size.
func computeScrollMetrics(trackCells, contentLen, viewportLen, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func (s *ScrollBar) shouldDraw(length int) bool {
	if length <= 0 || s.contentLen <= 0 {
		return false
	}
	if s.autoHide && s.contentLen <= max(s.viewportLen, 1) {
		return false
	}
	return true
}

// cellFill converts absolute subcell thumb coverage into cell-local
// [start, len] used by fractional glyph selection.
func cellFill(m scrollMetrics, cellIndex int) (start, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyphFor(start, fillLen int) (rune, tcell.Style) {
	if fillLen <= 0 {
		return s.glyphSet.Track, s.trackStyle
	}
	if fillLen >= subcell {
		return s.glyphSet.ThumbLower[7], s.thumbStyle
	}
	ix := fillLen - 1
	if start == 0 {
		return s.glyphSet.ThumbUpper[ix], s.thumbStyle
	}
	return s.glyphSet.ThumbLower[ix], s.thumbStyle
}

// DrawColumn draws the bar into the single screen column at x, spanning
// height cells from y downward.
func (s *ScrollBar) DrawColumn(screen tcell.Screen, x, y, height int) {
	if !s.shouldDraw(height) {
		return
	}
	m := computeScrollMetrics(height, s.contentLen, s.viewportLen, s.offset)
	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		glyph, style := s.glyphFor(start, fillLen)
		screen.SetContent(x, y+cell, glyph, nil, style)
	}
}
