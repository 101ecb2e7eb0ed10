package app

import (
	"log/slog"

	"github.com/soocke/thermalprep/config"
	"github.com/soocke/thermalprep/domain/editor"
	"github.com/soocke/thermalprep/render"
	"github.com/soocke/thermalprep/ui/model"
	"github.com/soocke/thermalprep/ui/presenter"
	"github.com/soocke/thermalprep/ui/view"
)

// AppContainer assembles the editing core, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Holder     *editor.ImageHolder
	Session    *editor.Session
	Edits      *model.EditModel
	RootView   *view.RootView

	// Presenters
	Editor  *presenter.EditorPresenter
	State   *presenter.StatePresenter
	Summary *presenter.SessionPresenter
	Loop    *presenter.Loop
}

// BuildContainer constructs all components. No widgets are created here;
// RootView.Build runs later on the Tk thread.
func BuildContainer(cfg *config.Config, cfgPath, outPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Holder = editor.NewImageHolder(codecFor(cfg))
	c.Session = editor.NewSession(c.Holder, nil, limitsFor(cfg), logger)
	c.Edits = model.NewEditModel()
	c.RootView = view.NewRootView(cfg, cfgPath, logger)

	c.Editor = presenter.NewEditorPresenter(c.Session, c.RootView.Editor, c.Edits, colormapFor(cfg, logger), outPath, logger)
	c.Session.SetDisplay(c.Editor)
	c.State = presenter.NewStatePresenter(c.RootView)
	c.Session.Selection().AddListener(c.State.OnState)
	c.Summary = presenter.NewSessionPresenter(c.Edits, c.RootView)
	return c
}

// ApplyConfig pushes changed settings into the running session.
func (c *AppContainer) ApplyConfig(cfg *config.Config) {
	if c == nil || cfg == nil {
		return
	}
	c.Session.SetLimits(limitsFor(cfg))
	c.Holder.SetCodec(codecFor(cfg))
	c.Editor.SetColormap(colormapFor(cfg, c.Logger))
	if c.Logger != nil {
		c.Logger.Info("settings applied", "fill_min", cfg.FillMin, "fill_max", cfg.FillMax,
			"precision", cfg.Precision, "colormap", cfg.Colormap)
	}
}

func codecFor(cfg *config.Config) editor.CSVCodec {
	return editor.CSVCodec{Options: cfg.ProcessedOptions(), Precision: cfg.Precision}
}

func limitsFor(cfg *config.Config) editor.FillLimits {
	return editor.FillLimits{Min: cfg.FillMin, Max: cfg.FillMax}
}

func colormapFor(cfg *config.Config, logger *slog.Logger) render.Colormap {
	cmap, err := render.ColormapByName(cfg.Colormap)
	if err != nil {
		if logger != nil {
			logger.Warn("unknown colormap, using hot", "colormap", cfg.Colormap, "error", err)
		}
		return render.Hot
	}
	return cmap
}
