package presenter

import (
	"time"

	"github.com/soocke/thermalprep/domain/editor"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives selection transitions and reflects the latest
// one in the view on the next tick.
type StatePresenter struct {
	view    StateView
	latest  editor.SelectionState
	pending []editor.SelectionState
	shown   bool
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState matches editor.StateListener and queues next.
func (p *StatePresenter) OnState(_, next editor.SelectionState) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick flushes the queue, updating the label only when the state changed.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if !p.shown {
		p.shown = true
		p.view.SetStateLabel(stateLabel(p.latest))
	}
	if len(p.pending) == 0 {
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	if last != p.latest {
		p.latest = last
		p.view.SetStateLabel(stateLabel(last))
	}
}

func stateLabel(s editor.SelectionState) string { return "Selection: " + s.String() }
