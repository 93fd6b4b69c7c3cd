package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DataLoadError reports an unreadable or malformed table source. It is fatal
// for the session that requested the load; there is no retry.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load multiplier table %q: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Loader reads multiplier tables from CSV sources. The source convention
// (header row present or not) varies between datasets, so it is explicit
// configuration rather than something the loader guesses.
type Loader struct {
	hasHeader bool
	logger    *zap.Logger
}

// NewLoader creates a loader for sources following the given header
// convention.
func NewLoader(hasHeader bool, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{hasHeader: hasHeader, logger: logger}
}

// Load reads the CSV at path into a Table. The file must have at least three
// columns per row: day (integer), an auxiliary integer, and the multiplier
// (float). Extra columns are ignored. Any read or parse failure comes back
// as a *DataLoadError.
func (l *Loader) Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Source: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows := make([]Row, 0, 128)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataLoadError{Source: path, Err: err}
		}
		line++

		if l.hasHeader && line == 1 {
			continue
		}

		row, err := parseRow(record)
		if err != nil {
			return nil, &DataLoadError{Source: path, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &DataLoadError{Source: path, Err: fmt.Errorf("no data rows")}
	}

	l.logger.Debug("Multiplier table loaded",
		zap.String("source", path),
		zap.Int("rows", len(rows)),
		zap.Bool("header_skipped", l.hasHeader))

	return &Table{source: path, rows: rows}, nil
}

// parseRow converts one CSV record into a Row.
func parseRow(record []string) (Row, error) {
	if len(record) < 3 {
		return Row{}, fmt.Errorf("expected 3 columns, got %d", len(record))
	}

	day, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return Row{}, fmt.Errorf("day column: %w", err)
	}

	intCol, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return Row{}, fmt.Errorf("int column: %w", err)
	}

	multiplier, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return Row{}, fmt.Errorf("multiplier column: %w", err)
	}

	return Row{Day: day, IntCol: intCol, Multiplier: multiplier}, nil
}
