package repository

import (
	"context"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/records"
)

// clientRepo is the concrete implementation of ClientRepository
type clientRepo struct {
	table records.Table
}

// NewClientRepo creates a new client repository
func NewClientRepo(table records.Table) ClientRepository {
	return &clientRepo{table: table}
}

// List returns every client record in sheet order
func (r *clientRepo) List(ctx context.Context) ([]records.Record, error) {
	return records.AllRecords(ctx, r.table)
}

// Create appends a new client row. The condition cell is left empty so
// the sheet's own default applies.
func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	row := []string{client.RowID, client.Name, client.Condition, client.Phone}
	return r.table.AppendRow(ctx, row)
}

// Get locates a client by row id and returns it as a header-keyed record
func (r *clientRepo) Get(ctx context.Context, id string) (records.Record, error) {
	row, err := records.FindRow(ctx, r.table, id)
	if err != nil {
		return nil, err
	}
	return records.Fetch(ctx, r.table, row)
}

// Update writes the editable fields cell by cell. The writes are
// sequential and non-transactional.
func (r *clientRepo) Update(ctx context.Context, id string, upd models.ClientUpdate) error {
	row, err := records.FindRow(ctx, r.table, id)
	if err != nil {
		return err
	}
	return records.UpdateFields(ctx, r.table, row, []records.CellWrite{
		{Col: models.ClientColName, Value: upd.Name},
		{Col: models.ClientColCondition, Value: upd.Condition},
		{Col: models.ClientColPhone, Value: upd.Phone},
	})
}

// Delete removes the client's row. Addresses and services referencing
// the client are left in place; there is no cascading delete.
func (r *clientRepo) Delete(ctx context.Context, id string) error {
	row, err := records.FindRow(ctx, r.table, id)
	if err != nil {
		return err
	}
	return r.table.DeleteRow(ctx, row)
}
