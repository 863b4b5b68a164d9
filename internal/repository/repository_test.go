package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/client-service-manager/internal/mocks"
	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/records"
	"github.com/client-service-manager/internal/repository"
)

func clientsTable() *mocks.MemTable {
	return mocks.NewMemTable("Row_ID", "Nombre", "Condicion", "Telefono")
}

func addressesTable() *mocks.MemTable {
	return mocks.NewMemTable("ID_Cliente", "Direccion", models.AddressRowIDHeader)
}

func servicesTable() *mocks.MemTable {
	return mocks.NewMemTable("ID_Cliente", "Direccion", "Servicio", "Notas", "Fecha_Hora", "Row_ID")
}

func usersTable() *mocks.MemTable {
	return mocks.NewMemTable("Usuario", "Nombre", "Password", "Rol")
}

func TestClientRepo_CreateLeavesConditionToStoreDefault(t *testing.T) {
	table := clientsTable()
	repo := repository.NewClientRepo(table)
	ctx := context.Background()

	err := repo.Create(ctx, &models.Client{RowID: "id-1", Name: "Ana", Phone: "555-1111"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Expected 1 data row, got %d", len(table.Rows)-1)
	}
	row := table.Rows[1]
	if row[0] != "id-1" || row[1] != "Ana" || row[3] != "555-1111" {
		t.Errorf("Unexpected row: %v", row)
	}
	if row[2] != "" {
		t.Errorf("Condition should default to empty, got %q", row[2])
	}
}

func TestClientRepo_GetByCreatedID(t *testing.T) {
	table := clientsTable()
	repo := repository.NewClientRepo(table)
	ctx := context.Background()

	repo.Create(ctx, &models.Client{RowID: "id-1", Name: "Ana", Phone: "555-1111"})

	rec, err := repo.Get(ctx, "id-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec["Nombre"] != "Ana" || rec["Telefono"] != "555-1111" {
		t.Errorf("Unexpected record: %v", rec)
	}
}

func TestClientRepo_GetNotFound(t *testing.T) {
	repo := repository.NewClientRepo(clientsTable())

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, records.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestClientRepo_Update(t *testing.T) {
	table := clientsTable().Append("id-1", "Ana", "", "555-1111")
	repo := repository.NewClientRepo(table)
	ctx := context.Background()

	err := repo.Update(ctx, "id-1", models.ClientUpdate{Name: "Ana María", Condition: "TRUE", Phone: "555-9999"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	row := table.Rows[1]
	if row[1] != "Ana María" || row[2] != "TRUE" || row[3] != "555-9999" {
		t.Errorf("Unexpected row after update: %v", row)
	}
	if row[0] != "id-1" {
		t.Errorf("Row id must never change, got %q", row[0])
	}
}

func TestClientRepo_DeleteLeavesChildren(t *testing.T) {
	clients := clientsTable().Append("id-1", "Ana", "", "555-1111")
	addresses := addressesTable().Append("id-1", "Calle 1", "addr-1")
	services := servicesTable().Append("id-1", "Calle 1", "Limpieza", "", "2024-05-01T14:30:00.000000Z", "svc-1")

	repos := repository.New(clients, addresses, services, usersTable())
	ctx := context.Background()

	if err := repos.Client.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(clients.Rows) != 1 {
		t.Errorf("Client row should be gone, have %d rows", len(clients.Rows))
	}

	// No cascading delete: the children stay, now dangling
	orphanAddrs, err := repos.Address.ListByClient(ctx, "id-1")
	if err != nil {
		t.Fatalf("ListByClient failed: %v", err)
	}
	if len(orphanAddrs) != 1 {
		t.Errorf("Expected dangling address to remain, got %d", len(orphanAddrs))
	}

	orphanSvcs, err := repos.Service.ListByClient(ctx, "id-1")
	if err != nil {
		t.Fatalf("ListByClient failed: %v", err)
	}
	if len(orphanSvcs) != 1 {
		t.Errorf("Expected dangling service to remain, got %d", len(orphanSvcs))
	}
}

func TestAddressRepo_GetUsesRowIDColumn(t *testing.T) {
	// The address id also appears in another column of a different
	// row; only the row id column may match.
	table := addressesTable().
		Append("addr-2", "Calle 1", "addr-1").
		Append("client-9", "Calle 2", "addr-2")
	repo := repository.NewAddressRepo(table)

	rec, err := repo.Get(context.Background(), "addr-2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec["Direccion"] != "Calle 2" {
		t.Errorf("Lookup matched the wrong row: %v", rec)
	}
}

func TestAddressRepo_CreateRowIDLast(t *testing.T) {
	table := addressesTable()
	repo := repository.NewAddressRepo(table)

	err := repo.Create(context.Background(), &models.Address{ClientID: "id-1", Text: "Calle 1", RowID: "addr-1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	row := table.Rows[1]
	if row[0] != "id-1" || row[1] != "Calle 1" || row[2] != "addr-1" {
		t.Errorf("Address column order not preserved: %v", row)
	}
}

func TestServiceRepo_EditTouchesOnlyEditableColumns(t *testing.T) {
	table := servicesTable().
		Append("client-1", "Calle 1", "Limpieza", "nota", "2024-05-01T14:30:00.000000Z", "svc-1")
	repo := repository.NewServiceRepo(table)
	ctx := context.Background()

	err := repo.Update(ctx, "svc-1", models.ServiceUpdate{
		AddressText: "Calle 2",
		ServiceType: "Mantenimiento",
		Notes:       "urgente",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	row := table.Rows[1]
	if row[1] != "Calle 2" || row[2] != "Mantenimiento" || row[3] != "urgente" {
		t.Errorf("Editable fields not updated: %v", row)
	}
	if row[0] != "client-1" {
		t.Errorf("client_id must be untouched by edit, got %q", row[0])
	}
	if row[4] != "2024-05-01T14:30:00.000000Z" {
		t.Errorf("scheduled_at must be untouched by edit, got %q", row[4])
	}
	if row[5] != "svc-1" {
		t.Errorf("row_id must be untouched by edit, got %q", row[5])
	}

	// Exactly three cell writes, none elsewhere
	if len(table.UpdateCalls) != 3 {
		t.Errorf("Expected 3 cell writes, got %d", len(table.UpdateCalls))
	}
}

func TestServiceRepo_CreateOrphanSucceeds(t *testing.T) {
	// No FK enforcement: appending a service for a client that does
	// not exist succeeds.
	table := servicesTable()
	repo := repository.NewServiceRepo(table)
	ctx := context.Background()

	err := repo.Create(ctx, &models.Service{
		ClientID:    "no-such-client",
		AddressText: "Calle 1",
		ServiceType: "Limpieza",
		ScheduledAt: "2024-05-01T14:30:00.000000Z",
		RowID:       "svc-1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	orphans, err := repo.ListByClient(ctx, "no-such-client")
	if err != nil {
		t.Fatalf("ListByClient failed: %v", err)
	}
	if len(orphans) != 1 {
		t.Errorf("Expected orphan service visible by its client id, got %d", len(orphans))
	}
}

func TestServiceRepo_ListByClientOrder(t *testing.T) {
	table := servicesTable().
		Append("client-1", "Calle 1", "Limpieza", "", "2024-05-01T14:30:00.000000Z", "svc-1").
		Append("client-2", "Calle 9", "Poda", "", "2024-05-02T09:00:00.000000Z", "svc-2").
		Append("client-1", "Calle 1", "Riego", "", "2024-05-03T08:00:00.000000Z", "svc-3")
	repo := repository.NewServiceRepo(table)

	recs, err := repo.ListByClient(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("ListByClient failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Expected 2 services, got %d", len(recs))
	}
	if recs[0]["Row_ID"] != "svc-1" || recs[1]["Row_ID"] != "svc-3" {
		t.Errorf("Sheet order not preserved: %v", recs)
	}
}

func TestUserRepo_GetByUsername(t *testing.T) {
	table := usersTable().
		Append("ana", "Ana García", "secreto", "admin").
		Append("luis", "Luis Pérez", "clave", "viewer")
	repo := repository.NewUserRepo(table)

	user, err := repo.GetByUsername(context.Background(), "luis")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if user.Password != "clave" {
		t.Errorf("Expected password from column 3, got %q", user.Password)
	}
	if user.Role != "viewer" {
		t.Errorf("Expected role from column 4, got %q", user.Role)
	}
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	repo := repository.NewUserRepo(usersTable())

	_, err := repo.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, records.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUserRepo_ShortRow(t *testing.T) {
	// A user row missing the role column yields an empty role, which
	// the admin gate rejects.
	table := usersTable().Append("ana", "Ana García", "secreto")
	repo := repository.NewUserRepo(table)

	user, err := repo.GetByUsername(context.Background(), "ana")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if user.Role != "" {
		t.Errorf("Expected empty role for short row, got %q", user.Role)
	}
}
