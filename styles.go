package droplist

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when views are initialized.
type Theme struct {
	PanelBackgroundColor  tcell.Color // Panel background.
	BorderColor           tcell.Color // Panel border.
	TextColor             tcell.Color // Option row text.
	MarkedBackgroundColor tcell.Color // Background of the marked row.
	MarkedTextColor       tcell.Color // Text of the marked row.
	SlotTextColor         tcell.Color // Header and footer slot text.
	ScrollThumbColor      tcell.Color // Scroll bar thumb.
	ScrollTrackColor      tcell.Color // Scroll bar track.
}

// Styles defines the theme for panels. The default is a black background
// with basic colors.
var Styles = Theme{
	PanelBackgroundColor:  tcell.ColorBlack,
	BorderColor:           tcell.ColorWhite,
	TextColor:             tcell.ColorWhite,
	MarkedBackgroundColor: tcell.ColorBlue,
	MarkedTextColor:       tcell.ColorWhite,
	SlotTextColor:         tcell.ColorYellow,
	ScrollThumbColor:      tcell.ColorWhite,
	ScrollTrackColor:      tcell.ColorGray,
}
