package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/soocke/thermalprep/domain/thermal"
)

// Session ties one image to one selection and drives a Display. All
// methods run on the UI thread; there is a single mutator.
type Session struct {
	holder  *ImageHolder
	sel     *Selection
	display Display
	limits  FillLimits
	logger  *slog.Logger
}

// NewSession builds a session over holder. display may be set later with
// SetDisplay when the UI is constructed after the core.
func NewSession(holder *ImageHolder, display Display, limits FillLimits, logger *slog.Logger) *Session {
	if holder == nil {
		holder = NewImageHolder(nil)
	}
	s := &Session{holder: holder, display: display, limits: limits, logger: logger}
	rows, cols := 0, 0
	if holder.Loaded() {
		rows, cols = holder.Current().Dims()
	}
	s.sel = NewSelection(rows, cols, logger)
	return s
}

func (s *Session) SetDisplay(d Display)   { s.display = d }
func (s *Session) Selection() *Selection  { return s.sel }
func (s *Session) Holder() *ImageHolder   { return s.holder }
func (s *Session) Limits() FillLimits     { return s.limits }
func (s *Session) SetLimits(l FillLimits) { s.limits = l }

// Frame snapshots what should be on screen.
func (s *Session) Frame() Frame {
	return Frame{
		Matrix: s.holder.Current(),
		Points: s.sel.Points(),
		Closed: s.sel.Closed(),
		State:  s.sel.State(),
		Source: s.holder.Source(),
	}
}

// Load reads path as the new image. Any selection is discarded.
func (s *Session) Load(path string) error {
	m, err := s.holder.Load(path)
	if err != nil {
		return s.fail("load failed", err)
	}
	s.afterLoad(m)
	return nil
}

// Replace installs an in-memory image, for example the embedded sample.
func (s *Session) Replace(m *thermal.Matrix, source string) {
	s.holder.Replace(m, source)
	s.afterLoad(s.holder.Current())
}

func (s *Session) afterLoad(m *thermal.Matrix) {
	rows, cols := m.Dims()
	s.sel.Resize(rows, cols)
	if s.logger != nil {
		st := m.Stats()
		s.logger.Info("loaded thermal image", "source", s.holder.Source(), "rows", rows, "cols", cols,
			"min", st.Min, "max", st.Max)
	}
	s.render()
}

// HandleClick adds p to the selection. Clicks outside the image are ignored.
func (s *Session) HandleClick(p thermal.Point) error {
	if !s.holder.Loaded() {
		return s.fail("click ignored", thermal.ErrNoOriginalLoaded)
	}
	if err := s.sel.AddPoint(p); err != nil {
		if errors.Is(err, thermal.ErrOutOfBounds) {
			if s.logger != nil {
				s.logger.Debug("click outside image", "x", p.X, "y", p.Y)
			}
			return err
		}
		return s.fail("point rejected", err)
	}
	s.render()
	return nil
}

// HandleKey maps Enter to closing the region and Escape to cancelling it.
// Other keys are ignored.
func (s *Session) HandleKey(name string) error {
	switch strings.ToLower(name) {
	case "enter", "return", "kp_enter":
		return s.CloseSelection()
	case "escape", "esc":
		s.CancelSelection()
	}
	return nil
}

// CloseSelection closes the polygon being drawn.
func (s *Session) CloseSelection() error {
	if err := s.sel.Close(); err != nil {
		return s.fail("cannot close region", err)
	}
	if s.logger != nil {
		s.logger.Info("region closed", "points", s.sel.Len())
	}
	s.render()
	return nil
}

// CancelSelection drops the current selection.
func (s *Session) CancelSelection() {
	s.sel.Cancel()
	s.render()
}

// FillSelection asks the display for a temperature and writes it into the
// closed region. The selection is consumed on success and kept otherwise.
func (s *Session) FillSelection() (FillResult, error) {
	cur := s.holder.Current()
	if cur == nil {
		return FillResult{}, s.fail("fill failed", thermal.ErrNoOriginalLoaded)
	}
	mask, err := s.sel.Mask()
	if err != nil {
		return FillResult{}, s.fail("fill failed", err)
	}
	stats, err := RegionStatsFor(cur, mask)
	if err != nil {
		return FillResult{}, s.fail("fill failed", err)
	}
	if s.display == nil {
		return FillResult{}, s.fail("fill failed", thermal.ErrFillCancelled)
	}
	value, ok := s.display.PromptFillValue(stats)
	if !ok {
		return FillResult{}, s.fail("fill", thermal.ErrFillCancelled)
	}
	if !s.limits.allows(value) {
		return FillResult{}, s.fail("fill failed",
			fmt.Errorf("%w: %.3f not in [%.3f, %.3f]", thermal.ErrFillRange, value, s.limits.Min, s.limits.Max))
	}
	res, err := Fill(cur, mask, value)
	if err != nil {
		return FillResult{}, s.fail("fill failed", err)
	}
	if s.logger != nil {
		s.logger.Info("filled region", "value", value, "pixels", res.Pixels, "previous_mean", res.Before.Mean)
	}
	s.sel.Cancel()
	s.render()
	s.notify(slog.LevelInfo, fmt.Sprintf("Filled %d pixels with %.3f°C (previous average %.3f°C)", res.Pixels, value, res.Before.Mean))
	return res, nil
}

// Reset restores the loaded image and drops the selection.
func (s *Session) Reset() error {
	if err := s.holder.Reset(); err != nil {
		return s.fail("reset failed", err)
	}
	s.sel.Cancel()
	if s.logger != nil {
		s.logger.Info("image reset to original state")
	}
	s.render()
	return nil
}

// Undo behaves like Reset.
func (s *Session) Undo() error { return s.Reset() }

// Save writes the working image to path.
func (s *Session) Save(path string) error {
	if err := s.holder.Save(path); err != nil {
		return s.fail("save failed", err)
	}
	if s.logger != nil {
		s.logger.Info("saved thermal image", "path", path)
	}
	s.notify(slog.LevelInfo, "File saved successfully: "+path)
	return nil
}

// fail logs err, forwards it to the display and returns it unchanged.
func (s *Session) fail(msg string, err error) error {
	level := slog.LevelWarn
	switch {
	case errors.Is(err, thermal.ErrFillCancelled):
		level = slog.LevelInfo
	case errors.Is(err, thermal.ErrIO):
		level = slog.LevelError
	}
	if s.logger != nil {
		s.logger.Log(context.Background(), level, msg, "error", err)
	}
	s.notify(level, err.Error())
	return err
}

func (s *Session) notify(level slog.Level, msg string) {
	if s.display != nil {
		s.display.Notify(level, msg)
	}
}

func (s *Session) render() {
	if s.display != nil && s.holder.Loaded() {
		s.display.Render(s.Frame())
	}
}
