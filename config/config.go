package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"

	"github.com/soocke/thermalprep/csvio"
	"github.com/soocke/thermalprep/pipeline"
)

// Config holds runtime configuration for loading, editing and batch
// processing thermal data. Fields may be loaded from a JSON file and
// overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`

	// Raw camera export parsing (batch input)
	SkipRows        int    `json:"skip_rows"`
	DropFirstColumn bool   `json:"drop_first_column"`
	Delimiter       string `json:"delimiter"`
	// Decimals written on save; -1 keeps full precision.
	Precision int `json:"precision"`

	// Editor
	Colormap string  `json:"colormap"`
	FillMin  float64 `json:"fill_min"`
	FillMax  float64 `json:"fill_max"`

	// Batch pipeline
	CropStartRow     int    `json:"crop_start_row"`
	CropEndRow       int    `json:"crop_end_row"`
	CropStartCol     int    `json:"crop_start_col"`
	CropEndCol       int    `json:"crop_end_col"`
	OutputRows       int    `json:"output_rows"`
	OutputCols       int    `json:"output_cols"`
	DownsampleMethod string `json:"downsample_method"`
	FilePattern      string `json:"file_pattern"`
	FileSuffix       string `json:"file_suffix"`

	// Window
	CanvasWidth  int  `json:"canvas_width"`
	CanvasHeight int  `json:"canvas_height"`
	DarkMode     bool `json:"dark_mode"`
}

// DefaultConfig returns a Config populated with standard defaults. The
// parsing and crop values match the camera exports the tool was built for.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		LogLevel:         "info",
		SkipRows:         10,
		DropFirstColumn:  true,
		Delimiter:        ",",
		Precision:        -1,
		Colormap:         "hot",
		FillMin:          0,
		FillMax:          100,
		CropStartRow:     50,
		CropEndRow:       430,
		CropStartCol:     190,
		CropEndCol:       540,
		OutputRows:       100,
		OutputCols:       100,
		DownsampleMethod: "nearest",
		FilePattern:      "*.csv",
		FileSuffix:       "thermal_processed",
		CanvasWidth:      800,
		CanvasHeight:     600,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/thermalprep/config.json.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "thermalprep", "config.json")
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.SkipRows < 0 {
		c.SkipRows = 0
	}
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
	if c.Precision < -1 {
		c.Precision = -1
	}
	if c.Colormap == "" {
		c.Colormap = "hot"
	}
	if c.FillMax < c.FillMin {
		c.FillMin, c.FillMax = c.FillMax, c.FillMin
	}
	if c.OutputRows < 0 || c.OutputCols < 0 {
		c.OutputRows, c.OutputCols = 0, 0
	}
	if c.FilePattern == "" {
		c.FilePattern = "*.csv"
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = 800
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = 600
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return nil
}

// RawOptions parses raw camera exports: metadata header and index column.
func (c *Config) RawOptions() csvio.Options {
	return csvio.Options{SkipRows: c.SkipRows, DropFirstColumn: c.DropFirstColumn, Delimiter: c.delimiter()}
}

// ProcessedOptions parses the headerless grids the tool itself writes,
// which is what the editor and the flattener consume.
func (c *Config) ProcessedOptions() csvio.Options {
	return csvio.Options{Delimiter: c.delimiter()}
}

func (c *Config) delimiter() rune {
	d, _ := utf8.DecodeRuneInString(c.Delimiter)
	if d == utf8.RuneError {
		return ','
	}
	return d
}

// Crop returns the configured crop window.
func (c *Config) Crop() pipeline.CropParams {
	return pipeline.CropParams{
		StartRow: c.CropStartRow,
		EndRow:   c.CropEndRow,
		StartCol: c.CropStartCol,
		EndCol:   c.CropEndCol,
	}
}

// OutputSize returns the configured downsample target.
func (c *Config) OutputSize() pipeline.Size {
	return pipeline.Size{Rows: c.OutputRows, Cols: c.OutputCols}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format,
// creating the parent directory when needed.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
