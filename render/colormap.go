// Package render turns temperature matrices into images and charts.
package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
)

// Colormap maps t in [0,1] to a colour. Values outside the range are clamped.
type Colormap func(t float64) color.RGBA

var colormaps = map[string]Colormap{
	"hot":     Hot,
	"viridis": Viridis,
	"gray":    Gray,
	"grey":    Gray,
}

// ColormapByName looks up a colormap by its matplotlib name.
func ColormapByName(name string) (Colormap, error) {
	cm, ok := colormaps[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (have %s)", name, strings.Join(ColormapNames(), ", "))
	}
	return cm, nil
}

// ColormapNames lists the accepted names, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for n := range colormaps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Hot is black through red and yellow to white.
func Hot(t float64) color.RGBA {
	t = clamp01(t)
	r := ramp(t, 0, 0.365)
	g := ramp(t, 0.365, 0.746)
	b := ramp(t, 0.746, 1)
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 0xff}
}

func Gray(t float64) color.RGBA {
	v := to8(clamp01(t))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// viridis sampled at nine evenly spaced stops.
var viridisStops = [...]color.RGBA{
	{68, 1, 84, 255},
	{72, 40, 120, 255},
	{62, 73, 137, 255},
	{49, 104, 142, 255},
	{38, 130, 142, 255},
	{31, 158, 137, 255},
	{53, 183, 121, 255},
	{110, 206, 88, 255},
	{253, 231, 37, 255},
}

// Viridis interpolates linearly between the stops above.
func Viridis(t float64) color.RGBA {
	t = clamp01(t)
	pos := t * float64(len(viridisStops)-1)
	i := int(math.Floor(pos))
	if i >= len(viridisStops)-1 {
		return viridisStops[len(viridisStops)-1]
	}
	f := pos - float64(i)
	a, b := viridisStops[i], viridisStops[i+1]
	lerp := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f)) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xff}
}

func ramp(t, lo, hi float64) float64 {
	switch {
	case t <= lo:
		return 0
	case t >= hi:
		return 1
	}
	return (t - lo) / (hi - lo)
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func to8(v float64) uint8 { return uint8(math.Round(v * 255)) }
