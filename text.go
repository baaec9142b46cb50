package droplist

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// drawText draws str at (x, y), truncated to maxWidth cells with a trailing
// ellipsis when it does not fit. It draws whole grapheme clusters only and
// returns the number of cells used.
func drawText(screen tcell.Screen, x, y, maxWidth int, str string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	if textWidth(str) > maxWidth {
		str = truncateText(str, maxWidth-1)
		defer func() {
			screen.SetContent(x+textWidth(str), y, '…', nil, style)
		}()
	}

	used := 0
	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := clusterWidth(cluster)
		if used+width > maxWidth {
			break
		}
		runes := []rune(cluster)
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		used += width
	}
	return used
}

// textWidth returns the display width of str in cells.
func textWidth(str string) int {
	return uniseg.StringWidth(str)
}

// truncateText returns the longest prefix of str no wider than maxWidth.
func truncateText(str string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	used := 0
	end := 0
	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		width := clusterWidth(gr.Str())
		if used+width > maxWidth {
			break
		}
		used += width
		_, to := gr.Positions()
		end = to
	}
	return str[:end]
}

func clusterWidth(cluster string) int {
	if w := uniseg.StringWidth(cluster); w > 0 {
		return w
	}
	return 1
}
