package view

import (
	"image"
	"log/slog"
	"strings"

	"github.com/soocke/thermalprep/ui/images"
	"github.com/soocke/thermalprep/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// canvasBorder is the canvas label's border width in pixels.
const canvasBorder = 1

// EditorHandlers are the user actions the editor window forwards.
type EditorHandlers struct {
	Click func(x, y int)
	Key   func(name string)
	Fill  func()
	Reset func()
	Undo  func()
	Save  func()
	Load  func()
}

// EditorView owns the heatmap canvas, the action buttons and the fill and
// path entries.
type EditorView struct {
	width, height int

	canvas    *LabelWidget
	photo     *Img // current canvas image, deleted on replace
	status    *TLabelWidget
	region    *LabelWidget
	fillEntry *TextWidget
	pathEntry *TextWidget
}

// NewEditorView creates an unbuilt view whose canvas fits width x height.
func NewEditorView(width, height int) *EditorView {
	return &EditorView{width: width, height: height}
}

// Build grids the widgets from startRow and returns the next free row.
func (v *EditorView) Build(startRow int, h EditorHandlers) (row int) {
	row = startRow
	placeholder := image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	v.photo = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.canvas = Label(Image(v.photo), Borderwidth(canvasBorder), Padx(0), Pady(0), Relief("sunken"), Cursor("crosshair"))
	Grid(v.canvas, Row(row), Column(0), Columnspan(5), Padx("0.4m"), Pady("0.4m"))
	if h.Click != nil {
		bindClick(v.canvas, canvasBorder, h.Click)
	}
	row++

	buttons := Frame()
	Grid(buttons, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	for i, b := range []struct {
		text  string
		fn    func()
		style string
	}{
		{"Reset", h.Reset, theme.StyleDangerButton},
		{"Fill Region", h.Fill, theme.StylePrimaryButton},
		{"Save CSV", h.Save, "TButton"},
		{"Load CSV", h.Load, "TButton"},
		{"Undo", h.Undo, "TButton"},
	} {
		if b.fn == nil {
			continue
		}
		btn := TButton(Txt(b.text), Command(b.fn), Style(b.style))
		Grid(btn, In(buttons), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}
	row++

	Grid(Label(Txt("Fill temperature (°C)"), Anchor("w")), Row(row), Column(0), Sticky("w"), Padx("0.4m"))
	v.fillEntry = Text(Height(1), Width(12))
	Grid(v.fillEntry, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	Grid(Label(Txt("CSV path"), Anchor("w")), Row(row), Column(2), Sticky("w"), Padx("0.4m"))
	v.pathEntry = Text(Height(1), Width(40))
	Grid(v.pathEntry, Row(row), Column(3), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	row++

	v.region = Label(Txt(""), Anchor("w"), Justify("left"))
	Grid(v.region, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"))
	row++
	v.status = TLabel(Txt("Load a CSV file to start"), Anchor("w"), Style(theme.StyleStatusLabel))
	Grid(v.status, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	if h.Key != nil {
		Bind(App, "<Return>", Command(func() { h.Key("Return") }))
		Bind(App, "<KP_Enter>", Command(func() { h.Key("Return") }))
		Bind(App, "<Escape>", Command(func() { h.Key("Escape") }))
	}
	return row
}

// ShowImage replaces the canvas photo.
func (v *EditorView) ShowImage(img image.Image) {
	if v == nil || v.canvas == nil || img == nil {
		return
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(images.EncodePNG(img)))
	v.canvas.Configure(Image(v.photo))
}

func (v *EditorView) CanvasSize() (int, int) {
	if v == nil {
		return 0, 0
	}
	return v.width, v.height
}

func (v *EditorView) SetStatus(text string) {
	if v != nil && v.status != nil {
		v.status.Configure(Txt(text))
	}
}

func (v *EditorView) SetRegionInfo(text string) {
	if v != nil && v.region != nil {
		v.region.Configure(Txt(text))
	}
}

func (v *EditorView) FillValue() string {
	if v == nil {
		return ""
	}
	return entryText(v.fillEntry)
}

func (v *EditorView) Path() string {
	if v == nil {
		return ""
	}
	return entryText(v.pathEntry)
}

func (v *EditorView) SetPath(path string) {
	if v == nil || v.pathEntry == nil {
		return
	}
	v.pathEntry.Delete("1.0", END)
	v.pathEntry.Insert("1.0", path)
}

// ShowMessage pops up a modal box for warnings and errors.
func (v *EditorView) ShowMessage(level slog.Level, text string) {
	icon, title := "info", "Info"
	switch {
	case level >= slog.LevelError:
		icon, title = "error", "Error"
	case level >= slog.LevelWarn:
		icon, title = "warning", "Warning"
	}
	MessageBox(Icon(icon), Title(title), Msg(text))
}

func entryText(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}
