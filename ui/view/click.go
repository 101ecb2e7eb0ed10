package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// bindClick reports left clicks on w relative to the image origin, i.e.
// with the widget's border of inset pixels removed.
func bindClick(w *LabelWidget, inset int, fn func(x, y int)) {
	Bind(w, "<Button-1>", Command(func(e *Event) {
		fn(e.X-inset, e.Y-inset)
	}))
}
