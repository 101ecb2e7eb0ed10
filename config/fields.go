package config

import (
	"fmt"
	"strconv"
	"strings"
)

// WithFields returns a copy of c with the editable fields named by their
// JSON keys replaced by the parsed values. Empty values keep the current
// setting; a malformed value rejects the whole set. Unknown keys are an
// error.
func (c Config) WithFields(values map[string]string) (Config, error) {
	for key, raw := range values {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		var err error
		switch key {
		case "fill_min":
			c.FillMin, err = strconv.ParseFloat(s, 64)
		case "fill_max":
			c.FillMax, err = strconv.ParseFloat(s, 64)
		case "precision":
			c.Precision, err = strconv.Atoi(s)
		case "colormap":
			c.Colormap = s
		case "downsample_method":
			c.DownsampleMethod = s
		case "file_suffix":
			c.FileSuffix = s
		default:
			return c, fmt.Errorf("unknown setting %q", key)
		}
		if err != nil {
			return c, fmt.Errorf("%s: invalid value %q", key, s)
		}
	}
	return c, c.Validate()
}
