package view

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/soocke/thermalprep/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the editor settings form and apply logic.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	ApplyChanges()                   // parses widget text into the config and persists it
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by JSON field name
}

// NewConfigPanel creates the form bound to cfg. onApply runs after a
// successful save so that the caller can push new values into the session.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	col := 0
	field := func(id, label, value string) {
		Grid(Label(Txt(label), Anchor("w")), In(frame), Row(0), Column(col), Sticky("w"), Padx("0.4m"))
		w := Text(Height(1), Width(8))
		Grid(w, In(frame), Row(0), Column(col+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		col += 2
	}
	field("fill_min", "Fill Min", fmt.Sprintf("%g", c.FillMin))
	field("fill_max", "Fill Max", fmt.Sprintf("%g", c.FillMax))
	field("precision", "Precision (-1 = full)", strconv.Itoa(c.Precision))
	field("colormap", "Colormap", c.Colormap)
	v.applyBtn = Button(Txt("Apply Settings"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, In(frame), Row(0), Column(col), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	row++
	return row
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	values := make(map[string]string, len(v.widgets))
	for id, w := range v.widgets {
		values[id] = entryText(w)
	}
	cfg, err := v.cfg.WithFields(values)
	if err != nil {
		if v.logger != nil {
			v.logger.Warn("settings rejected", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if v.cfgPath != "" {
		if err := v.cfg.Save(v.cfgPath); err != nil {
			if v.logger != nil {
				v.logger.Error("config save failed", "error", err)
			}
		} else if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
}
