package app

import (
	"fmt"
	"log/slog"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/thermalprep/assets"
	"github.com/soocke/thermalprep/config"
	"github.com/soocke/thermalprep/ui/presenter"
	"github.com/soocke/thermalprep/ui/theme"
	"github.com/soocke/thermalprep/ui/view"
)

const (
	tick = 250 * time.Millisecond
)

// Window is the interactive editor window.
type Window struct {
	title   string
	input   string
	afterID string
	c       *AppContainer
}

// NewWindow prepares the editor. input is the CSV opened at start; when it is
// empty the embedded sample is shown instead. outPath overrides where Save
// writes.
func NewWindow(title string, cfg *config.Config, cfgPath, input, outPath string, logger *slog.Logger) *Window {
	return &Window{title: title, input: input, c: BuildContainer(cfg, cfgPath, outPath, logger)}
}

// Start builds the window and blocks until it is closed.
func (a *Window) Start() {
	cfg := a.c.Config
	theme.SetDark(cfg.DarkMode)
	tk.App.WmTitle(a.title)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", cfg.CanvasWidth+40, cfg.CanvasHeight+220))

	ed := a.c.Editor
	a.c.RootView.Build(view.EditorHandlers{
		Click: func(x, y int) { a.guard("click", func() { ed.Click(x, y) }) },
		Key:   func(name string) { a.guard("key", func() { ed.Key(name) }) },
		Fill:  func() { a.guard("fill", ed.Fill) },
		Reset: func() { a.guard("reset", ed.Reset) },
		Undo:  func() { a.guard("undo", ed.Undo) },
		Save:  func() { a.guard("save", ed.Save) },
		Load:  func() { a.guard("load", ed.Load) },
	}, a.c.ApplyConfig, a.exitHandler)

	a.loadInitial()
	a.c.Loop = presenter.NewLoop(a.c.Summary, a.c.State, a.scheduleUpdate)
	a.scheduleUpdate()
	tk.App.Wait()
}

func (a *Window) loadInitial() {
	if a.input != "" {
		if err := a.c.Session.Load(a.input); err == nil {
			a.c.Editor.Loaded(a.input)
		}
		return
	}
	m, err := assets.SampleMatrix()
	if err != nil {
		a.c.Logger.Error("sample load failed", "error", err)
		return
	}
	a.c.Session.Replace(m, assets.SampleName)
	a.c.Editor.Loaded(assets.SampleName)
}

func (a *Window) exitHandler() {
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
	}
	if a.c.Holder.Modified() {
		a.c.Logger.Warn("exiting with unsaved edits", "source", a.c.Holder.Source())
	}
	tk.Destroy(tk.App)
}

func (a *Window) scheduleUpdate() {
	// TclAfter keeps the refresh on Tk's event loop thread.
	a.afterID = tk.TclAfter(tick, func() { a.c.Loop.Tick() })
}

// guard keeps a panicking handler from tearing down the Tk loop.
func (a *Window) guard(name string, fn func()) {
	defer recoverLog(a.c.Logger, name+" handler panic")
	fn()
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil && logger != nil {
		logger.Error(msg, "panic", r)
	}
}
