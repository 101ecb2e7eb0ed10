package model

import (
	"time"
)

// EditModel tracks what has been done to the image since it was loaded:
// how many fills, how many pixels they touched, and whether the work has
// been saved. It is decoupled from the UI; presenters poll Values().
// The zero value is ready to use.
type EditModel struct {
	source    string
	loadedAt  time.Time
	fills     int
	pixels    int
	lastValue float64
	dirty     bool
	savedTo   string
}

// EditStats is a snapshot of an EditModel.
type EditStats struct {
	Source    string
	Fills     int
	Pixels    int
	LastValue float64
	Dirty     bool
	SavedTo   string
	Elapsed   time.Duration
}

func NewEditModel() *EditModel { return &EditModel{} }

// OnLoad starts a new editing session for source.
func (m *EditModel) OnLoad(source string, now time.Time) {
	if m == nil {
		return
	}
	*m = EditModel{source: source, loadedAt: now}
}

// OnFill records a successful fill.
func (m *EditModel) OnFill(pixels int, value float64) {
	if m == nil {
		return
	}
	m.fills++
	m.pixels += pixels
	m.lastValue = value
	m.dirty = true
}

// OnReset forgets every fill; the image matches the file again.
func (m *EditModel) OnReset() {
	if m == nil {
		return
	}
	m.fills, m.pixels, m.lastValue = 0, 0, 0
	m.dirty = false
}

func (m *EditModel) OnSave(path string) {
	if m == nil {
		return
	}
	m.dirty = false
	m.savedTo = path
}

// Values returns the current stats. Elapsed counts from the last load.
func (m *EditModel) Values(now time.Time) EditStats {
	if m == nil {
		return EditStats{}
	}
	s := EditStats{
		Source:    m.source,
		Fills:     m.fills,
		Pixels:    m.pixels,
		LastValue: m.lastValue,
		Dirty:     m.dirty,
		SavedTo:   m.savedTo,
	}
	if !m.loadedAt.IsZero() {
		s.Elapsed = now.Sub(m.loadedAt)
	}
	return s
}
