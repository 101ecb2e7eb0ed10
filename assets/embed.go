package assets

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/soocke/thermalprep/csvio"
	"github.com/soocke/thermalprep/domain/thermal"
)

// SampleName is the source name reported for the embedded sample.
const SampleName = "sample_thermal.csv"

// SampleCSV contains a small synthetic plate with one warm spot, in the
// headerless format the editor reads and writes.
//
//go:embed sample_thermal.csv
var SampleCSV []byte

// SampleMatrix parses the embedded sample.
func SampleMatrix() (*thermal.Matrix, error) {
	if len(SampleCSV) == 0 {
		return nil, fmt.Errorf("embedded %s is empty", SampleName)
	}
	return csvio.Read(bytes.NewReader(SampleCSV), csvio.Options{})
}
