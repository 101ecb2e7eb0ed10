package view

import (
	"log/slog"

	"github.com/soocke/thermalprep/config"
	"github.com/soocke/thermalprep/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level window layout and wires UI callbacks.
// It owns the subviews and exposes them to presenters through small
// interfaces.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session     SessionStats
	Editor      *EditorView
	ConfigPanel ConfigPanel
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger, Editor: NewEditorView(cfg.CanvasWidth, cfg.CanvasHeight)}
}

// Build constructs the layout. onApply runs after settings were saved and
// onExit when the user asks to quit.
func (rv *RootView) Build(h EditorHandlers, onApply func(*config.Config), onExit func()) {
	if rv == nil {
		return
	}
	// Row 0: selection state, edit summary, window buttons
	rv.Session = NewSessionStats(nil, 0, 0)
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	darkBtn := Button(Txt("Dark Mode"), Command(func() {
		rv.cfg.DarkMode = theme.ToggleDark()
	}))
	Grid(darkBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	row := rv.Editor.Build(1, h)
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, onApply)
	rv.ConfigPanel.Build(row)
}

// SetStateLabel updates the selection state label.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetStateLabel(text)
	}
}

// SetSummary updates the edit summary.
func (rv *RootView) SetSummary(text string) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetSummary(text)
	}
}
