package editor

import (
	"github.com/soocke/thermalprep/csvio"
	"github.com/soocke/thermalprep/domain/thermal"
)

// CSVCodec stores grids as delimited text through csvio.
type CSVCodec struct {
	Options   csvio.Options
	Precision int
}

func (c CSVCodec) Load(path string) (*thermal.Matrix, error) {
	return csvio.ReadFile(path, c.Options)
}

func (c CSVCodec) Save(path string, m *thermal.Matrix) error {
	return csvio.WriteFile(path, m, c.Precision, c.Options.Delimiter)
}

// ImageHolder owns the working grid and the snapshot taken at load time.
// The snapshot is never mutated; Reset copies it back.
type ImageHolder struct {
	codec    Codec
	current  *thermal.Matrix
	original *thermal.Matrix
	source   string
}

// NewImageHolder returns an empty holder using codec for file access.
func NewImageHolder(codec Codec) *ImageHolder {
	if codec == nil {
		codec = CSVCodec{Precision: -1}
	}
	return &ImageHolder{codec: codec}
}

// SetCodec switches file access, for example after a precision change.
func (h *ImageHolder) SetCodec(codec Codec) {
	if codec != nil {
		h.codec = codec
	}
}

// Load replaces the working grid and the snapshot with the file's contents.
// On failure the previous image is kept.
func (h *ImageHolder) Load(path string) (*thermal.Matrix, error) {
	m, err := h.codec.Load(path)
	if err != nil {
		return nil, err
	}
	h.Replace(m, path)
	return h.current, nil
}

// Replace installs m as a freshly loaded image. source names it in logs.
func (h *ImageHolder) Replace(m *thermal.Matrix, source string) {
	h.original = m.Clone()
	h.current = m.Clone()
	h.source = source
}

// Save writes the working grid to path.
func (h *ImageHolder) Save(path string) error {
	if h.current == nil {
		return thermal.ErrNoOriginalLoaded
	}
	return h.codec.Save(path, h.current)
}

// Reset restores the working grid to the loaded snapshot.
func (h *ImageHolder) Reset() error {
	if h.original == nil {
		return thermal.ErrNoOriginalLoaded
	}
	h.current = h.original.Clone()
	return nil
}

// Undo is the same as Reset: there is no per-fill history.
func (h *ImageHolder) Undo() error { return h.Reset() }

// Loaded reports whether an image is present.
func (h *ImageHolder) Loaded() bool { return h.current != nil }

// Current returns the working grid. Callers may mutate it in place.
func (h *ImageHolder) Current() *thermal.Matrix { return h.current }

// Original returns a copy of the loaded snapshot, or nil.
func (h *ImageHolder) Original() *thermal.Matrix { return h.original.Clone() }

// Source returns the path or label of the loaded image.
func (h *ImageHolder) Source() string { return h.source }

// Modified reports whether the working grid differs from the snapshot.
func (h *ImageHolder) Modified() bool {
	if h.current == nil {
		return false
	}
	return !h.current.Equal(h.original)
}
