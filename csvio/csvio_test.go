package csvio

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soocke/thermalprep/domain/thermal"
)

const cameraHeader = `File: ,Test thermal image
Parameters:,Emissivity:,0.94
,Refl. temp.:,20.0 °C
,Distance:,1.0 m
,Atmospheric temp.:,20.0 °C
,Ext. optics temp.:,20.0 °C
,Ext. optics trans.:,1.0
,Relative humidity:,50.0 %
,
,
`

func TestRead_PlainGrid(t *testing.T) {
	m, err := Read(strings.NewReader("1.5,2.5,3\n4,5,6.25\n"), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("expected 2x3 got %dx%d", rows, cols)
	}
	if m.At(1, 2) != 6.25 || m.At(0, 0) != 1.5 {
		t.Fatalf("unexpected values %v %v", m.At(1, 2), m.At(0, 0))
	}
}

func TestRead_SkipsHeaderAndDropsIndex(t *testing.T) {
	body := "0,25.100,25.200\n1,26.000,26.500\n2,27.000,27.500\n"
	m, err := Read(strings.NewReader(cameraHeader+body), Options{SkipRows: 10, DropFirstColumn: true})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	rows, cols := m.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("expected 3x2 got %dx%d", rows, cols)
	}
	if m.At(2, 1) != 27.5 {
		t.Fatalf("expected 27.5 got %v", m.At(2, 1))
	}
}

func TestRead_Semicolon(t *testing.T) {
	m, err := Read(strings.NewReader("1;2\n3;4\n"), Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if m.At(1, 0) != 3 {
		t.Fatalf("expected 3 got %v", m.At(1, 0))
	}
}

func TestRead_RejectsNonNumeric(t *testing.T) {
	if _, err := Read(strings.NewReader("1,2\n3,abc\n"), Options{}); err == nil {
		t.Fatalf("expected error for non-numeric cell")
	}
}

func TestRead_HeaderLongerThanFile(t *testing.T) {
	if _, err := Read(strings.NewReader("1,2\n"), Options{SkipRows: 5}); err == nil {
		t.Fatalf("expected error when header exceeds file")
	}
}

func TestReadFile_MissingIsIOError(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	if !errors.Is(err, thermal.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestWrite_NoHeaderNoIndex(t *testing.T) {
	m, _ := thermal.FromRows([][]float64{{1, 2.5}, {3.125, 4}})
	var buf bytes.Buffer
	if err := Write(&buf, m, 3, ','); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "1.000,2.500\n3.125,4.000\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestRoundTrip_ExactPrecision(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]float64, 12*9)
	for i := range data {
		data[i] = 25 + rng.NormFloat64()
	}
	m, _ := thermal.NewMatrix(12, 9, data)
	path := filepath.Join(t.TempDir(), "round.csv")
	if err := WriteFile(path, m, -1, ','); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	back, err := ReadFile(path, Options{})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !back.Equal(m) {
		t.Fatalf("round trip with shortest formatting should be exact")
	}
}

func TestRoundTrip_FixedPrecision(t *testing.T) {
	m, _ := thermal.FromRows([][]float64{{25.12345, 30.98765}, {0.0004, -1.5}})
	var buf bytes.Buffer
	if err := Write(&buf, m, 3, ','); err != nil {
		t.Fatalf("Write: %v", err)
	}
	back, err := Read(&buf, Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !back.EqualApprox(m, 5e-4) {
		t.Fatalf("values drifted beyond 3 decimals")
	}
}

func TestWriteRecords_PadsRaggedRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, [][]string{{"a", "1", "2"}, {"b", "3"}}, ','); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}
	want := "a,1,2\nb,3,\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestRead_TrimsPaddedCells(t *testing.T) {
	m, err := Read(strings.NewReader("1.5, 2.5\n3 ,  4\n"), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if m.At(0, 1) != 2.5 || m.At(1, 0) != 3 || m.At(1, 1) != 4 {
		t.Fatalf("unexpected values %v", m)
	}
}

func TestRead_ErrorNamesCellText(t *testing.T) {
	body := "0,25.1,25.2\n1,26.0,hot\n"
	_, err := Read(strings.NewReader(cameraHeader+body), Options{SkipRows: 10, DropFirstColumn: true})
	if err == nil {
		t.Fatalf("expected error for non-numeric cell")
	}
	if !strings.Contains(err.Error(), `"hot"`) || !strings.Contains(err.Error(), "row 12, column 3") {
		t.Fatalf("error should name the cell text and position, got %v", err)
	}
}

func TestWrite_UsesDelimiter(t *testing.T) {
	m, _ := thermal.FromRows([][]float64{{1, 2.5}, {3, 4}})
	var buf bytes.Buffer
	if err := Write(&buf, m, -1, ';'); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "1;2.5\n3;4\n" {
		t.Fatalf("got %q", buf.String())
	}
	back, err := Read(&buf, Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !back.Equal(m) {
		t.Fatalf("semicolon round trip changed values")
	}
}
