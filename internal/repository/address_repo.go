package repository

import (
	"context"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/records"
)

// addressRepo is the concrete implementation of AddressRepository
type addressRepo struct {
	table records.Table
}

// NewAddressRepo creates a new address repository
func NewAddressRepo(table records.Table) AddressRepository {
	return &addressRepo{table: table}
}

// Create appends a new address row. The row id comes last in this
// sheet's layout.
func (r *addressRepo) Create(ctx context.Context, address *models.Address) error {
	row := []string{address.ClientID, address.Text, address.RowID}
	return r.table.AppendRow(ctx, row)
}

// Get locates an address by scanning the "🔒 Row ID" column. The
// addresses sheet does not use the direct search the other sheets use;
// that divergence is preserved from the production sheet.
func (r *addressRepo) Get(ctx context.Context, id string) (records.Record, error) {
	row, err := records.FindRowByColumn(ctx, r.table, models.AddressRowIDHeader, id)
	if err != nil {
		return nil, err
	}
	return records.Fetch(ctx, r.table, row)
}

// Update rewrites the address text only
func (r *addressRepo) Update(ctx context.Context, id string, text string) error {
	row, err := records.FindRow(ctx, r.table, id)
	if err != nil {
		return err
	}
	return records.UpdateFields(ctx, r.table, row, []records.CellWrite{
		{Col: models.AddressColText, Value: text},
	})
}

// Delete removes the address row
func (r *addressRepo) Delete(ctx context.Context, id string) error {
	row, err := records.FindRow(ctx, r.table, id)
	if err != nil {
		return err
	}
	return r.table.DeleteRow(ctx, row)
}

// ListByClient returns the client's addresses in sheet order
func (r *addressRepo) ListByClient(ctx context.Context, clientID string) ([]records.Record, error) {
	return records.FilterChildren(ctx, r.table, models.ChildClientIDKey, clientID)
}
