package records_test

import (
	"context"
	"errors"
	"testing"

	"github.com/client-service-manager/internal/mocks"
	"github.com/client-service-manager/internal/records"
)

func TestFindRow(t *testing.T) {
	table := mocks.NewMemTable("Row_ID", "Nombre", "Telefono").
		Append("id-1", "Ana", "555-1111").
		Append("id-2", "Luis", "555-2222")
	ctx := context.Background()

	row, err := records.FindRow(ctx, table, "id-2")
	if err != nil {
		t.Fatalf("FindRow failed: %v", err)
	}
	if row != 3 {
		t.Errorf("Expected row 3, got %d", row)
	}
}

func TestFindRow_NotFound(t *testing.T) {
	table := mocks.NewMemTable("Row_ID", "Nombre").Append("id-1", "Ana")

	_, err := records.FindRow(context.Background(), table, "missing-id")
	if !errors.Is(err, records.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFindRow_HeaderMatchIsNotFound(t *testing.T) {
	table := mocks.NewMemTable("Row_ID", "Nombre").Append("id-1", "Ana")

	// A value colliding with a header cell must not resolve to row 1
	_, err := records.FindRow(context.Background(), table, "Nombre")
	if !errors.Is(err, records.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for header collision, got %v", err)
	}
}

func TestFindRowByColumn(t *testing.T) {
	table := mocks.NewMemTable("ID_Cliente", "Direccion", "🔒 Row ID").
		Append("client-1", "Calle 1", "addr-1").
		Append("client-2", "Calle 2", "addr-2")
	ctx := context.Background()

	row, err := records.FindRowByColumn(ctx, table, "🔒 Row ID", "addr-2")
	if err != nil {
		t.Fatalf("FindRowByColumn failed: %v", err)
	}
	if row != 3 {
		t.Errorf("Expected row 3, got %d", row)
	}
}

func TestFindRowByColumn_IgnoresOtherColumns(t *testing.T) {
	// The same value in a different column must not match
	table := mocks.NewMemTable("ID_Cliente", "Direccion", "🔒 Row ID").
		Append("addr-9", "Calle 1", "addr-1")

	_, err := records.FindRowByColumn(context.Background(), table, "🔒 Row ID", "addr-9")
	if !errors.Is(err, records.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFindRowByColumn_MissingHeader(t *testing.T) {
	table := mocks.NewMemTable("ID_Cliente", "Direccion").Append("client-1", "Calle 1")

	_, err := records.FindRowByColumn(context.Background(), table, "🔒 Row ID", "addr-1")
	if err == nil {
		t.Fatal("Expected error for missing header column")
	}
	if errors.Is(err, records.ErrNotFound) {
		t.Error("Missing header should not be reported as ErrNotFound")
	}
}

func TestToRecord(t *testing.T) {
	headers := []string{"Row_ID", "Nombre", "Telefono"}
	rec := records.ToRecord(headers, []string{"id-1", "Ana", "555-1111"})

	if rec["Nombre"] != "Ana" {
		t.Errorf("Expected Nombre 'Ana', got %q", rec["Nombre"])
	}
	if rec["Telefono"] != "555-1111" {
		t.Errorf("Expected Telefono '555-1111', got %q", rec["Telefono"])
	}
}

func TestToRecord_ShortRow(t *testing.T) {
	headers := []string{"Row_ID", "Nombre", "Telefono"}
	rec := records.ToRecord(headers, []string{"id-1"})

	if rec["Row_ID"] != "id-1" {
		t.Errorf("Expected Row_ID 'id-1', got %q", rec["Row_ID"])
	}
	if rec["Nombre"] != "" || rec["Telefono"] != "" {
		t.Errorf("Trailing fields should be empty, got %q / %q", rec["Nombre"], rec["Telefono"])
	}
}

func TestToRecord_LongRowDropsExtras(t *testing.T) {
	headers := []string{"Row_ID", "Nombre"}
	rec := records.ToRecord(headers, []string{"id-1", "Ana", "extra"})

	if len(rec) != 2 {
		t.Errorf("Expected 2 fields, got %d", len(rec))
	}
}

func TestAllRecords(t *testing.T) {
	table := mocks.NewMemTable("Row_ID", "Nombre").
		Append("id-1", "Ana").
		Append("id-2", "Luis")

	recs, err := records.AllRecords(context.Background(), table)
	if err != nil {
		t.Fatalf("AllRecords failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(recs))
	}
	if recs[0]["Nombre"] != "Ana" || recs[1]["Nombre"] != "Luis" {
		t.Error("Records should preserve sheet order")
	}
}

func TestAllRecords_EmptySheet(t *testing.T) {
	table := &mocks.MemTable{}

	recs, err := records.AllRecords(context.Background(), table)
	if err != nil {
		t.Fatalf("AllRecords failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Expected no records, got %d", len(recs))
	}
}

func TestFilterChildren(t *testing.T) {
	table := mocks.NewMemTable("ID_Cliente", "Direccion", "🔒 Row ID").
		Append("client-1", "Calle 1", "addr-1").
		Append("client-2", "Calle 2", "addr-2").
		Append("client-1", "Calle 3", "addr-3")
	ctx := context.Background()

	children, err := records.FilterChildren(ctx, table, "ID_Cliente", "client-1")
	if err != nil {
		t.Fatalf("FilterChildren failed: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(children))
	}

	// Order preserved from the source scan
	if children[0]["Direccion"] != "Calle 1" || children[1]["Direccion"] != "Calle 3" {
		t.Errorf("Children out of scan order: %v", children)
	}
}

func TestFilterChildren_NoMatches(t *testing.T) {
	table := mocks.NewMemTable("ID_Cliente", "Direccion", "🔒 Row ID").
		Append("client-1", "Calle 1", "addr-1")

	children, err := records.FilterChildren(context.Background(), table, "ID_Cliente", "client-99")
	if err != nil {
		t.Fatalf("FilterChildren failed: %v", err)
	}
	if len(children) != 0 {
		t.Errorf("Expected no children, got %d", len(children))
	}
}

func TestUpdateFields(t *testing.T) {
	table := mocks.NewMemTable("Row_ID", "Nombre", "Condicion", "Telefono").
		Append("id-1", "Ana", "TRUE", "555-1111")
	ctx := context.Background()

	err := records.UpdateFields(ctx, table, 2, []records.CellWrite{
		{Col: 2, Value: "Ana María"},
		{Col: 4, Value: "555-9999"},
	})
	if err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}

	if table.Rows[1][1] != "Ana María" {
		t.Errorf("Expected updated name, got %q", table.Rows[1][1])
	}
	if table.Rows[1][3] != "555-9999" {
		t.Errorf("Expected updated phone, got %q", table.Rows[1][3])
	}
	if table.Rows[1][2] != "TRUE" {
		t.Errorf("Untouched column changed: %q", table.Rows[1][2])
	}
}

func TestUpdateFields_PartialWriteOnFailure(t *testing.T) {
	table := mocks.NewMemTable("Row_ID", "Nombre", "Condicion", "Telefono").
		Append("id-1", "Ana", "TRUE", "555-1111")
	table.FailOnCol = 3
	ctx := context.Background()

	err := records.UpdateFields(ctx, table, 2, []records.CellWrite{
		{Col: 2, Value: "Ana María"},
		{Col: 3, Value: "FALSE"},
		{Col: 4, Value: "555-9999"},
	})
	if err == nil {
		t.Fatal("Expected error from failing column")
	}

	// Earlier writes stay applied, later ones never happen
	if table.Rows[1][1] != "Ana María" {
		t.Errorf("First write should have applied, got %q", table.Rows[1][1])
	}
	if table.Rows[1][3] != "555-1111" {
		t.Errorf("Write after the failure should not have applied, got %q", table.Rows[1][3])
	}
}
