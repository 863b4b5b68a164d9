// Package records bridges domain identifiers to spreadsheet coordinates
// and shapes sheet rows into header-keyed records. Every repository goes
// through this layer; nothing above it deals in row or column indices.
package records

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when an identifier lookup matches no row.
// Routes treat it as "entity does not exist", never as a crash.
var ErrNotFound = errors.New("record not found")

// Table is the surface one worksheet of the remote tabular store
// exposes. All row and column indices are 1-based, matching the
// store's own addressing. Find returns ErrNotFound when the value is
// absent from the sheet.
type Table interface {
	Find(ctx context.Context, value string) (row int, err error)
	RowValues(ctx context.Context, row int) ([]string, error)
	ColValues(ctx context.Context, col int) ([]string, error)
	AllValues(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, values []string) error
	UpdateCell(ctx context.Context, row, col int, value string) error
	DeleteRow(ctx context.Context, row int) error
}

// Record is a header-keyed view of one sheet row
type Record map[string]string

// CellWrite is a single cell assignment within a row
type CellWrite struct {
	Col   int
	Value string
}

// FindRow locates the row holding the given identifier using the
// store's search. Row 1 is the header row, so a match there means the
// identifier collided with a header and is treated as not found.
func FindRow(ctx context.Context, t Table, id string) (int, error) {
	row, err := t.Find(ctx, id)
	if err != nil {
		return 0, err
	}
	if row <= 1 {
		return 0, ErrNotFound
	}
	return row, nil
}

// FindRowByColumn locates a row by scanning a single column, identified
// by its header name. The addresses sheet uses this instead of the
// direct search; the divergence is preserved from the production sheet
// and must not be unified without confirming the direct search behaves
// on that sheet.
func FindRowByColumn(ctx context.Context, t Table, header, value string) (int, error) {
	headers, err := Headers(ctx, t)
	if err != nil {
		return 0, err
	}

	col := 0
	for i, h := range headers {
		if h == header {
			col = i + 1
			break
		}
	}
	if col == 0 {
		return 0, fmt.Errorf("column %q not present in sheet", header)
	}

	values, err := t.ColValues(ctx, col)
	if err != nil {
		return 0, err
	}
	for i, v := range values {
		if i == 0 {
			continue // header row
		}
		if v == value {
			return i + 1, nil
		}
	}
	return 0, ErrNotFound
}

// Headers returns the sheet's header row
func Headers(ctx context.Context, t Table) ([]string, error) {
	return t.RowValues(ctx, 1)
}

// ToRecord zips headers with row values positionally. A data row
// shorter than the header row yields empty strings for the trailing
// fields; extra trailing values are dropped. Misalignment between the
// two is a documented risk of the store, not corrected here.
func ToRecord(headers, row []string) Record {
	rec := make(Record, len(headers))
	for i, h := range headers {
		if i < len(row) {
			rec[h] = row[i]
		} else {
			rec[h] = ""
		}
	}
	return rec
}

// Fetch reads the row at the given index and shapes it into a record
func Fetch(ctx context.Context, t Table, row int) (Record, error) {
	headers, err := Headers(ctx, t)
	if err != nil {
		return nil, err
	}
	values, err := t.RowValues(ctx, row)
	if err != nil {
		return nil, err
	}
	return ToRecord(headers, values), nil
}

// AllRecords reads every data row of the sheet as header-keyed records,
// in sheet order
func AllRecords(ctx context.Context, t Table) ([]Record, error) {
	values, err := t.AllValues(ctx)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	headers := values[0]
	recs := make([]Record, 0, len(values)-1)
	for _, row := range values[1:] {
		recs = append(recs, ToRecord(headers, row))
	}
	return recs, nil
}

// FilterChildren returns the records of a child sheet whose parentKey
// field equals parentID, compared as strings, in sheet order. This is a
// full-table scan; volumes are business-internal scale.
func FilterChildren(ctx context.Context, t Table, parentKey, parentID string) ([]Record, error) {
	all, err := AllRecords(ctx, t)
	if err != nil {
		return nil, err
	}

	var children []Record
	for _, rec := range all {
		if rec[parentKey] == parentID {
			children = append(children, rec)
		}
	}
	return children, nil
}

// UpdateFields applies each cell write independently and in order.
// The writes are not transactional: if one fails, the earlier writes
// on the row remain applied. Callers accept that partial-write risk.
func UpdateFields(ctx context.Context, t Table, row int, writes []CellWrite) error {
	for _, w := range writes {
		if err := t.UpdateCell(ctx, row, w.Col, w.Value); err != nil {
			return fmt.Errorf("updating row %d col %d: %w", row, w.Col, err)
		}
	}
	return nil
}
