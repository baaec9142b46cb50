// Package droplist implements a floating, scrollable option panel anchored
// to a control, for terminal UIs built on tcell.
//
// Large item sets are windowed: only the rows near the scroll offset are
// materialized, with padding preserving scrollbar proportions. After every
// item-set replacement a stabilization loop reconciles the estimated row
// height against the heights of the rows that actually mounted, so the
// first paint converges without a visible jump. The panel resolves an
// "auto" placement to above or below its anchor from measured geometry and
// keeps an externally attached panel glued to the anchor across resizes.
//
// Panel holds the logic and talks to abstract measured surfaces (Element,
// Viewport, Document); View and ScreenDocument are the tcell
// implementations. A minimal wiring:
//
//	doc := droplist.NewScreenDocument(screen)
//	view := droplist.NewView().SetBorder(true)
//	anchor := droplist.NewStaticElement(droplist.Rect{Top: 4, Left: 10, Width: 24, Height: 1})
//
//	panel := droplist.New().
//		SetPlacement(droplist.PlacementAuto).
//		SetUpdateFunc(func(items []droplist.Item) {
//			rows := make([]droplist.Row, len(items))
//			for i, item := range items {
//				rows[i] = droplist.Row{Text: item.(string), Height: 1}
//			}
//			view.SetRows(rows)
//			view.SetWindow(panel.Window())
//		})
//	if err := panel.Mount(doc, view, anchor); err != nil {
//		// the configured append target selector matched nothing
//	}
//	panel.SetItems(options)
//
// The host feeds tcell events through doc.HandleEvent, calls view.Scroll on
// wheel events over the panel, and draws the view each frame. Panel emits
// scroll-to-end at most once per item set, outside-click on pointer-down
// away from both anchor and panel, and position changes whenever a
// placement resolves.
package droplist
