package dataset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrNoHeader      = errors.New("no columns to parse from file")
)

// Cells that pandas-style CSV exports use for missing values.
var naTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// Table is an in-memory CSV file: a header and the rows below it.
type Table struct {
	Source  string
	Header  []string
	Records []Record

	index    map[string]int
	foldCase bool
}

// Record is one row of a Table. Lookups go through the owning table's header.
type Record struct {
	table  *Table
	values []string
}

func NewTable(source string, header []string, rows [][]string) *Table {
	t := &Table{
		Source: source,
		Header: header,
	}
	t.reindex()

	t.Records = make([]Record, 0, len(rows))
	for _, row := range rows {
		values := make([]string, len(header))
		copy(values, row)
		t.Records = append(t.Records, Record{table: t, values: values})
	}

	return t
}

// FoldCase makes column lookups case-insensitive.
func (t *Table) FoldCase() *Table {
	t.foldCase = true
	t.reindex()
	return t
}

func (t *Table) Len() int {
	return len(t.Records)
}

func (t *Table) HasColumn(column string) bool {
	_, ok := t.index[t.key(column)]
	return ok
}

// Require fails with ErrMissingColumn when any of the columns is not in the header.
func (t *Table) Require(columns ...string) error {
	var missing []string
	for _, column := range columns {
		if !t.HasColumn(column) {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", t.Source, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Subset returns a table sharing the header that holds only the rows at the given positions.
func (t *Table) Subset(positions []int) *Table {
	rows := make([][]string, 0, len(positions))
	for _, pos := range positions {
		rows = append(rows, t.Records[pos].values)
	}

	subset := NewTable(t.Source, t.Header, rows)
	if t.foldCase {
		subset.FoldCase()
	}
	return subset
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Header))
	for i, column := range t.Header {
		key := t.key(column)
		if _, exists := t.index[key]; !exists {
			t.index[key] = i
		}
	}
}

func (t *Table) key(column string) string {
	column = strings.TrimSpace(column)
	if t.foldCase {
		return cases.Fold().String(column)
	}
	return column
}

// Get returns the cell under column. Missing columns and NA cells are absent.
func (r Record) Get(column string) (string, bool) {
	i, ok := r.table.index[r.table.key(column)]
	if !ok {
		return "", false
	}

	value := r.values[i]
	if _, na := naTokens[strings.TrimSpace(value)]; na {
		return "", false
	}
	return value, true
}

// GetPtr is Get for optional fields.
func (r Record) GetPtr(column string) *string {
	value, ok := r.Get(column)
	if !ok {
		return nil
	}
	return &value
}
