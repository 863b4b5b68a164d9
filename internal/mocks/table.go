package mocks

import (
	"context"
	"fmt"

	"github.com/client-service-manager/internal/records"
)

// MemTable is an in-memory records.Table. Row 1 is the header row,
// matching the store's layout. It preserves insertion order and keeps
// the same 1-based addressing as the real worksheets.
type MemTable struct {
	Rows [][]string

	// Error injection
	FindErr   error
	ReadErr   error
	AppendErr error
	DeleteErr error

	// UpdateCell fails when writing this column (0 disables)
	FailOnCol int

	// Call counters
	UpdateCalls []records.CellWrite
}

// NewMemTable creates a table with the given header row
func NewMemTable(headers ...string) *MemTable {
	return &MemTable{Rows: [][]string{headers}}
}

// Append adds a data row directly, bypassing error injection
func (m *MemTable) Append(values ...string) *MemTable {
	m.Rows = append(m.Rows, values)
	return m
}

func (m *MemTable) Find(ctx context.Context, value string) (int, error) {
	if m.FindErr != nil {
		return 0, m.FindErr
	}
	for i, row := range m.Rows {
		for _, cell := range row {
			if cell == value {
				return i + 1, nil
			}
		}
	}
	return 0, records.ErrNotFound
}

func (m *MemTable) RowValues(ctx context.Context, row int) ([]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if row < 1 || row > len(m.Rows) {
		return nil, nil
	}
	return append([]string(nil), m.Rows[row-1]...), nil
}

func (m *MemTable) ColValues(ctx context.Context, col int) ([]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	values := make([]string, 0, len(m.Rows))
	for _, row := range m.Rows {
		if col >= 1 && col <= len(row) {
			values = append(values, row[col-1])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

func (m *MemTable) AllValues(ctx context.Context) ([][]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	out := make([][]string, len(m.Rows))
	for i, row := range m.Rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MemTable) AppendRow(ctx context.Context, values []string) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Rows = append(m.Rows, append([]string(nil), values...))
	return nil
}

func (m *MemTable) UpdateCell(ctx context.Context, row, col int, value string) error {
	if m.FailOnCol != 0 && col == m.FailOnCol {
		return fmt.Errorf("injected failure on column %d", col)
	}
	if row < 1 || row > len(m.Rows) {
		return fmt.Errorf("row %d out of range", row)
	}
	for len(m.Rows[row-1]) < col {
		m.Rows[row-1] = append(m.Rows[row-1], "")
	}
	m.Rows[row-1][col-1] = value
	m.UpdateCalls = append(m.UpdateCalls, records.CellWrite{Col: col, Value: value})
	return nil
}

func (m *MemTable) DeleteRow(ctx context.Context, row int) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if row < 1 || row > len(m.Rows) {
		return fmt.Errorf("row %d out of range", row)
	}
	m.Rows = append(m.Rows[:row-1], m.Rows[row:]...)
	return nil
}
