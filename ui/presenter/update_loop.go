package presenter

import "time"

// Loop aggregates presenters that refresh periodically and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	State    *StatePresenter
	Schedule func()
	now      func() time.Time
}

func NewLoop(sess *SessionPresenter, state *StatePresenter, schedule func()) *Loop {
	return &Loop{Session: sess, State: state, Schedule: schedule, now: time.Now}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.now != nil {
		now = l.now()
	}
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
