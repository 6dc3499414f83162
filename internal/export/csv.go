// Package export serializes escape grids as CSV and reads them back.
package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/san-kum/mandelscope/internal/fractal"
)

var (
	ErrHeader    = errors.New("export: csv header must contain x, y and n columns")
	ErrDuplicate = errors.New("export: duplicate (y, x) entry")
	ErrCount     = errors.New("export: escape count must be a whole number in [0, 2147483647]")
)

// Header is the column order written by WriteCSV.
var Header = []string{"x", "y", "n"}

// Sample is one row of the tabular export.
type Sample struct {
	X, Y   float64
	N      int
	Masked bool
}

// WriteCSV writes one row per cell, rows of the grid in order. Masked cells
// leave the n column empty.
func WriteCSV(w io.Writer, res *fractal.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	row := make([]string, 3)
	for j, y := range res.Y {
		row[1] = formatFloat(y)
		for i, x := range res.X {
			row[0] = formatFloat(x)
			if res.N.Masked(i, j) {
				row[2] = ""
			} else {
				row[2] = strconv.Itoa(res.N.At(i, j))
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteCSVFile(path string, res *fractal.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 1<<20)
	if err := WriteCSV(bw, res); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadCSV parses an export. Columns are located by header name so extra
// columns are ignored.
func ReadCSV(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrHeader
		}
		return nil, err
	}
	xi, yi, ni := -1, -1, -1
	for k, name := range header {
		switch name {
		case "x":
			xi = k
		case "y":
			yi = k
		case "n":
			ni = k
		}
	}
	if xi < 0 || yi < 0 || ni < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrHeader, header)
	}

	samples := make([]Sample, 0, 1024)
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, err
		}

		var s Sample
		if s.X, err = strconv.ParseFloat(record[xi], 64); err != nil {
			return nil, fmt.Errorf("line %d: x: %w", line, err)
		}
		if s.Y, err = strconv.ParseFloat(record[yi], 64); err != nil {
			return nil, fmt.Errorf("line %d: y: %w", line, err)
		}
		if record[ni] == "" {
			s.Masked = true
		} else {
			n, err := parseCount(record[ni])
			if err != nil {
				return nil, fmt.Errorf("line %d: n: %w", line, err)
			}
			s.N = n
			s.Masked = n == 0
		}
		samples = append(samples, s)
	}

	return samples, nil
}

func ReadCSVFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return samples, nil
}

// parseCount accepts a non-negative whole number that fits a grid cell.
// "12.0" is accepted as written by float-typed exporters.
func parseCount(field string) (int, error) {
	if n, err := strconv.ParseInt(field, 10, 64); err == nil {
		if n < 0 || n > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d out of range", ErrCount, n)
		}
		return int(n), nil
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrCount, field)
	}
	if v < 0 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s out of range", ErrCount, field)
	}
	return int(v), nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
