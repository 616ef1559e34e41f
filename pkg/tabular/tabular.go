package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for extensions outside the tabular set.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies a supported tabular file format.
type Format int

const (
	FormatCSV Format = iota + 1
	FormatExcel
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatExcel:
		return "excel"
	default:
		return "unknown"
	}
}

// Info summarizes a local tabular file.
type Info struct {
	Format  Format
	Rows    int
	Columns []string
}

// Detect maps a file name to its tabular format by extension,
// case-insensitively.
func Detect(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls":
		return FormatExcel, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Inspect reads the file headers and counts data rows. The first row is
// treated as the column header, matching how the server ingests uploads.
func Inspect(path string) (Info, error) {
	format, err := Detect(path)
	if err != nil {
		return Info{}, err
	}

	switch format {
	case FormatExcel:
		return inspectExcel(path)
	default:
		return inspectCSV(path)
	}
}

func inspectCSV(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are the server's problem

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Info{Format: FormatCSV}, nil
		}
		return Info{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rows := 0
	for {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Info{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		rows++
	}

	return Info{Format: FormatCSV, Rows: rows, Columns: header}, nil
}

func inspectExcel(path string) (Info, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Info{Format: FormatExcel}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Info{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return Info{Format: FormatExcel}, nil
	}

	return Info{Format: FormatExcel, Rows: len(rows) - 1, Columns: rows[0]}, nil
}
