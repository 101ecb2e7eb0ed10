package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/soocke/thermalprep/fsutil"
)

// OutputName returns the path a processed copy of src is saved under when
// no explicit output is given: "<stem>_<suffix>.csv" next to src, or
// "<stem>_processed_<YYYYMMDD_HHMMSS>.csv" without a suffix.
func OutputName(src, suffix string, now time.Time) string {
	stem := fsutil.Stem(src)
	name := fmt.Sprintf("%s_processed_%s.csv", stem, now.Format("20060102_150405"))
	if suffix != "" {
		name = fmt.Sprintf("%s_%s.csv", stem, suffix)
	}
	return filepath.Join(filepath.Dir(src), name)
}

// batchName is the file name used inside the destination directory.
func batchName(src, suffix string, size Size) string {
	if suffix == "" {
		suffix = "processed"
	}
	if size.Rows > 0 && size.Cols > 0 {
		suffix = fmt.Sprintf("%s_%s", suffix, size)
	}
	return fmt.Sprintf("%s_%s.csv", fsutil.Stem(src), suffix)
}
