package view

import (
	"github.com/soocke/thermalprep/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows the selection state and the running edit summary.
type SessionStats interface {
	SetStateLabel(text string)
	SetSummary(text string)
}

type sessionStats struct {
	stateLbl   *TLabelWidget
	summaryLbl *LabelWidget
}

// NewSessionStats creates the state and summary labels at (row, startCol)
// and (row, startCol+1). If parent is nil, labels are positioned relative
// to the App root.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{
		stateLbl:   TLabel(Txt("Selection: idle"), Width(18), Anchor("w"), Style(theme.StyleStateLabel)),
		summaryLbl: Label(Txt(""), Anchor("w")),
	}
	if parent != nil {
		Grid(s.stateLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
		Grid(s.summaryLbl, In(parent), Row(row), Column(startCol+1), Sticky("we"), Padx("0.2m"))
		return s
	}
	Grid(s.stateLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.summaryLbl, Row(row), Column(startCol+1), Columnspan(4), Sticky("we"), Padx("0.2m"))
	return s
}

func (s *sessionStats) SetStateLabel(text string) {
	if s == nil || s.stateLbl == nil {
		return
	}
	s.stateLbl.Configure(Txt(text))
}

func (s *sessionStats) SetSummary(text string) {
	if s == nil || s.summaryLbl == nil {
		return
	}
	s.summaryLbl.Configure(Txt(text))
}
