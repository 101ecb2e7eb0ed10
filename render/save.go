package render

import (
	"image"
	"math"
	"os"

	"github.com/disintegration/imaging"

	"github.com/soocke/thermalprep/domain/thermal"
)

// SavePNG encodes img as PNG at path regardless of its extension.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &thermal.IOError{Op: "save", Path: path, Err: err}
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return &thermal.IOError{Op: "save", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &thermal.IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func nextUp(v float64) float64 { return math.Nextafter(v, math.Inf(1)) }
