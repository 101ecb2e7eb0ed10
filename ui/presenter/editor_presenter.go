package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/soocke/thermalprep/domain/editor"
	"github.com/soocke/thermalprep/domain/thermal"
	"github.com/soocke/thermalprep/pipeline"
	"github.com/soocke/thermalprep/render"
	"github.com/soocke/thermalprep/ui/images"
	"github.com/soocke/thermalprep/ui/model"
)

// EditorSession is the subset of editor.Session driven by the presenter.
type EditorSession interface {
	Load(path string) error
	HandleClick(p thermal.Point) error
	HandleKey(name string) error
	FillSelection() (editor.FillResult, error)
	Reset() error
	Undo() error
	Save(path string) error
	Frame() editor.Frame
}

// EditorView is the surface the editor window exposes to the presenter.
type EditorView interface {
	ShowImage(img image.Image)
	CanvasSize() (w, h int)
	SetStatus(text string)
	SetRegionInfo(text string)
	FillValue() string
	Path() string
	SetPath(path string)
	ShowMessage(level slog.Level, text string)
}

// EditorPresenter renders session frames into the view and turns view
// events into session calls. It implements editor.Display.
type EditorPresenter struct {
	session EditorSession
	view    EditorView
	edits   *model.EditModel
	cmap    render.Colormap
	logger  *slog.Logger
	outPath string
	now     func() time.Time

	scale float64 // canvas pixels per matrix cell of the last render
}

var _ editor.Display = (*EditorPresenter)(nil)

// NewEditorPresenter wires a presenter. outPath, when set, is where Save
// writes if the view's path field is empty.
func NewEditorPresenter(session EditorSession, view EditorView, edits *model.EditModel, cmap render.Colormap, outPath string, logger *slog.Logger) *EditorPresenter {
	if cmap == nil {
		cmap = render.Hot
	}
	return &EditorPresenter{session: session, view: view, edits: edits, cmap: cmap, outPath: outPath, logger: logger, now: time.Now}
}

// Render draws the heatmap scaled to the canvas with the selection on top.
func (p *EditorPresenter) Render(f editor.Frame) {
	if p == nil || p.view == nil || f.Matrix == nil {
		return
	}
	w, h := p.view.CanvasSize()
	heat := render.Heatmap(f.Matrix, p.cmap, 0, 0)
	scaled, scale := images.ScaleToFit(heat, w, h)
	p.scale = scale
	p.view.ShowImage(render.Overlay(scaled, f.Points, f.Closed, scale))
	p.view.SetStatus(statusText(f))
}

// PromptFillValue shows the region stats and reads the fill entry. An empty
// entry counts as cancelling; an unparsable one is reported and cancelled.
func (p *EditorPresenter) PromptFillValue(st editor.RegionStats) (float64, bool) {
	if p == nil || p.view == nil {
		return 0, false
	}
	p.view.SetRegionInfo(FormatRegionStats(st))
	raw := strings.TrimSpace(p.view.FillValue())
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "°C"), 64)
	if err != nil {
		p.view.ShowMessage(slog.LevelWarn, fmt.Sprintf("Invalid fill temperature %q", raw))
		return 0, false
	}
	return v, true
}

// Notify puts msg in the status line. Warnings and errors also pop up.
func (p *EditorPresenter) Notify(level slog.Level, msg string) {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetStatus(msg)
	if level >= slog.LevelWarn {
		p.view.ShowMessage(level, msg)
	}
}

// SetColormap changes the heatmap palette and redraws.
func (p *EditorPresenter) SetColormap(cmap render.Colormap) {
	if p == nil || cmap == nil {
		return
	}
	p.cmap = cmap
	if p.session != nil {
		p.Render(p.session.Frame())
	}
}

// Loaded records that the session holds a freshly loaded image.
func (p *EditorPresenter) Loaded(source string) {
	if p == nil {
		return
	}
	p.edits.OnLoad(source, p.now())
	if p.view != nil && source != "" {
		p.view.SetPath(source)
	}
}

// Click maps a canvas pixel to a matrix cell and adds it to the selection.
func (p *EditorPresenter) Click(x, y int) {
	if p == nil || p.session == nil {
		return
	}
	pt := images.ToSource(x, y, p.scale)
	if p.logger != nil {
		p.logger.Debug("canvas click", "x", x, "y", y, "col", pt.X, "row", pt.Y)
	}
	_ = p.session.HandleClick(thermal.Point{X: pt.X, Y: pt.Y})
}

// Key forwards a key name such as "Return" or "Escape".
func (p *EditorPresenter) Key(name string) {
	if p == nil || p.session == nil {
		return
	}
	_ = p.session.HandleKey(name)
}

func (p *EditorPresenter) Fill() {
	if p == nil || p.session == nil {
		return
	}
	res, err := p.session.FillSelection()
	if err != nil {
		return
	}
	p.edits.OnFill(res.Pixels, res.Value)
	if p.view != nil {
		p.view.SetRegionInfo("")
	}
}

func (p *EditorPresenter) Reset() {
	if p == nil || p.session == nil {
		return
	}
	if err := p.session.Reset(); err == nil {
		p.edits.OnReset()
	}
}

func (p *EditorPresenter) Undo() {
	if p == nil || p.session == nil {
		return
	}
	if err := p.session.Undo(); err == nil {
		p.edits.OnReset()
	}
}

// Save writes to the path typed in the view, then the configured output
// path, and finally "<source stem>_damaged.csv" next to the source.
func (p *EditorPresenter) Save() {
	if p == nil || p.session == nil {
		return
	}
	path := p.savePath()
	if err := p.session.Save(path); err != nil {
		return
	}
	p.edits.OnSave(path)
}

func (p *EditorPresenter) savePath() string {
	src := p.session.Frame().Source
	if p.view != nil {
		if v := strings.TrimSpace(p.view.Path()); v != "" && v != src {
			return v
		}
	}
	if p.outPath != "" {
		return p.outPath
	}
	if src == "" {
		src = "thermal.csv"
	}
	return pipeline.OutputName(src, "damaged", p.now())
}

// Load reads the file named in the view's path field.
func (p *EditorPresenter) Load() {
	if p == nil || p.session == nil || p.view == nil {
		return
	}
	path := strings.TrimSpace(p.view.Path())
	if path == "" {
		p.Notify(slog.LevelWarn, "Enter the path of a CSV file to load")
		return
	}
	if err := p.session.Load(path); err != nil {
		return
	}
	p.Loaded(path)
}

// FormatRegionStats renders the numbers shown before a fill.
func FormatRegionStats(st editor.RegionStats) string {
	return fmt.Sprintf("Region: %d pixels, average %.3f°C, range %.3f°C to %.3f°C\nImage range: %.3f°C to %.3f°C",
		st.Pixels, st.Mean, st.Min, st.Max, st.Image.Min, st.Image.Max)
}

func statusText(f editor.Frame) string {
	n := len(f.Points)
	switch f.State {
	case editor.StateDrawing:
		return fmt.Sprintf("%d point(s) placed: keep clicking to outline the region", n)
	case editor.StateReadyToClose:
		return fmt.Sprintf("%d points placed: press Enter to close the region, Esc to cancel", n)
	case editor.StateClosed:
		return fmt.Sprintf("Region closed with %d points: enter a temperature and press Fill Region", n)
	default:
		return "Click points on the image to draw a region"
	}
}
