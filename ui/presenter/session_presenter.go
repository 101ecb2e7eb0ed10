package presenter

import (
	"fmt"
	"time"

	"github.com/soocke/thermalprep/ui/model"
)

// SummaryView displays the running edit summary.
type SummaryView interface {
	SetSummary(text string)
}

// SessionPresenter formats the edit model for the view.
type SessionPresenter struct {
	edits *model.EditModel
	view  SummaryView
	last  string
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(edits *model.EditModel, view SummaryView) *SessionPresenter {
	return &SessionPresenter{edits: edits, view: view}
}

// Tick pushes the current summary to the view if it changed.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.edits == nil || p.view == nil {
		return
	}
	text := FormatSummary(p.edits.Values(now))
	if text == p.last {
		return
	}
	p.last = text
	p.view.SetSummary(text)
}

// FormatSummary renders stats as one status-bar line.
func FormatSummary(s model.EditStats) string {
	seconds := int(s.Elapsed.Seconds())
	text := fmt.Sprintf("Editing %02d:%02d | fills: %d | pixels: %d", seconds/60, seconds%60, s.Fills, s.Pixels)
	if s.Dirty {
		text += " | unsaved"
	} else if s.SavedTo != "" {
		text += " | saved"
	}
	return text
}
