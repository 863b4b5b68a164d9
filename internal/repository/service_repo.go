package repository

import (
	"context"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/records"
)

// serviceRepo is the concrete implementation of ServiceRepository
type serviceRepo struct {
	table records.Table
}

// NewServiceRepo creates a new service repository
func NewServiceRepo(table records.Table) ServiceRepository {
	return &serviceRepo{table: table}
}

// List returns every service record in sheet order
func (r *serviceRepo) List(ctx context.Context) ([]records.Record, error) {
	return records.AllRecords(ctx, r.table)
}

// Create appends a new service row. The client id is written as given;
// nothing verifies it references an existing client.
func (r *serviceRepo) Create(ctx context.Context, service *models.Service) error {
	row := []string{
		service.ClientID,
		service.AddressText,
		service.ServiceType,
		service.Notes,
		service.ScheduledAt,
		service.RowID,
	}
	return r.table.AppendRow(ctx, row)
}

// Get locates a service by row id and returns it as a header-keyed record
func (r *serviceRepo) Get(ctx context.Context, id string) (records.Record, error) {
	row, err := records.FindRow(ctx, r.table, id)
	if err != nil {
		return nil, err
	}
	return records.Fetch(ctx, r.table, row)
}

// Update rewrites the address, type and notes cells only. The client
// id, schedule and row id columns are never touched by an edit.
func (r *serviceRepo) Update(ctx context.Context, id string, upd models.ServiceUpdate) error {
	row, err := records.FindRow(ctx, r.table, id)
	if err != nil {
		return err
	}
	return records.UpdateFields(ctx, r.table, row, []records.CellWrite{
		{Col: models.ServiceColAddressText, Value: upd.AddressText},
		{Col: models.ServiceColServiceType, Value: upd.ServiceType},
		{Col: models.ServiceColNotes, Value: upd.Notes},
	})
}

// Delete removes the service row
func (r *serviceRepo) Delete(ctx context.Context, id string) error {
	row, err := records.FindRow(ctx, r.table, id)
	if err != nil {
		return err
	}
	return r.table.DeleteRow(ctx, row)
}

// ListByClient returns the client's services in sheet order
func (r *serviceRepo) ListByClient(ctx context.Context, clientID string) ([]records.Record, error) {
	return records.FilterChildren(ctx, r.table, models.ChildClientIDKey, clientID)
}
