package table

import (
	"errors"
	"fmt"
)

// ErrDayNotFound is returned by FindRow when the table has no entry for the
// requested day. Callers report it to the user and skip the calculation for
// that query; the table itself stays valid.
var ErrDayNotFound = errors.New("no multiplier row for day")

// Row is one entry of the multiplier table: a lock-up duration in days, an
// auxiliary integer column carried through from the source file, and the
// reward multiplier for that duration.
type Row struct {
	Day        int
	IntCol     int
	Multiplier float64
}

// Table is an immutable, ordered multiplier table loaded from a single
// source. Rows keep source order; duplicate days are possible and FindRow
// resolves them by taking the first match.
type Table struct {
	source string
	rows   []Row
}

// Source returns the identifier the table was loaded from.
func (t *Table) Source() string {
	return t.source
}

// Rows returns a copy of all rows in source order.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// FindRow returns the first row whose day matches exactly. No interpolation:
// a day between two table entries is still ErrDayNotFound.
func (t *Table) FindRow(day int) (Row, error) {
	for _, row := range t.rows {
		if row.Day == day {
			return row, nil
		}
	}
	return Row{}, fmt.Errorf("%w %d", ErrDayNotFound, day)
}

// MinDay returns the smallest day present in the table.
func (t *Table) MinDay() int {
	min := t.rows[0].Day
	for _, row := range t.rows[1:] {
		if row.Day < min {
			min = row.Day
		}
	}
	return min
}

// MaxDay returns the largest day present in the table.
func (t *Table) MaxDay() int {
	max := t.rows[0].Day
	for _, row := range t.rows[1:] {
		if row.Day > max {
			max = row.Day
		}
	}
	return max
}

// ClampDay snaps a requested day into the table's [MinDay, MaxDay] range.
// Used to seed the day slider with a sensible default; the exact-match
// lookup still applies afterwards.
func (t *Table) ClampDay(day int) int {
	if min := t.MinDay(); day < min {
		return min
	}
	if max := t.MaxDay(); day > max {
		return max
	}
	return day
}
