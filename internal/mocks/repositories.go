package mocks

import (
	"context"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/records"
)

// MockClientRepository is a mock implementation of ClientRepository.
// Records use the production sheet headers so handlers see the same
// shapes the real store produces.
type MockClientRepository struct {
	Clients   []records.Record
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error
	Deleted   []string
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{}
}

func (m *MockClientRepository) List(ctx context.Context) ([]records.Record, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Clients, nil
}

func (m *MockClientRepository) Create(ctx context.Context, client *models.Client) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Clients = append(m.Clients, records.Record{
		"Row_ID":    client.RowID,
		"Nombre":    client.Name,
		"Condicion": client.Condition,
		"Telefono":  client.Phone,
	})
	return nil
}

func (m *MockClientRepository) Get(ctx context.Context, id string) (records.Record, error) {
	for _, rec := range m.Clients {
		if rec["Row_ID"] == id {
			return rec, nil
		}
	}
	return nil, records.ErrNotFound
}

func (m *MockClientRepository) Update(ctx context.Context, id string, upd models.ClientUpdate) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	rec, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	rec["Nombre"] = upd.Name
	rec["Condicion"] = upd.Condition
	rec["Telefono"] = upd.Phone
	return nil
}

func (m *MockClientRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, rec := range m.Clients {
		if rec["Row_ID"] == id {
			m.Clients = append(m.Clients[:i], m.Clients[i+1:]...)
			m.Deleted = append(m.Deleted, id)
			return nil
		}
	}
	return records.ErrNotFound
}

// MockAddressRepository is a mock implementation of AddressRepository
type MockAddressRepository struct {
	Addresses []records.Record
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error
}

func NewMockAddressRepository() *MockAddressRepository {
	return &MockAddressRepository{}
}

func (m *MockAddressRepository) Create(ctx context.Context, address *models.Address) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Addresses = append(m.Addresses, records.Record{
		"ID_Cliente":              address.ClientID,
		"Direccion":               address.Text,
		models.AddressRowIDHeader: address.RowID,
	})
	return nil
}

func (m *MockAddressRepository) Get(ctx context.Context, id string) (records.Record, error) {
	for _, rec := range m.Addresses {
		if rec[models.AddressRowIDHeader] == id {
			return rec, nil
		}
	}
	return nil, records.ErrNotFound
}

func (m *MockAddressRepository) Update(ctx context.Context, id string, text string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	rec, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	rec["Direccion"] = text
	return nil
}

func (m *MockAddressRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, rec := range m.Addresses {
		if rec[models.AddressRowIDHeader] == id {
			m.Addresses = append(m.Addresses[:i], m.Addresses[i+1:]...)
			return nil
		}
	}
	return records.ErrNotFound
}

func (m *MockAddressRepository) ListByClient(ctx context.Context, clientID string) ([]records.Record, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []records.Record
	for _, rec := range m.Addresses {
		if rec["ID_Cliente"] == clientID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// MockServiceRepository is a mock implementation of ServiceRepository
type MockServiceRepository struct {
	Services  []records.Record
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error
}

func NewMockServiceRepository() *MockServiceRepository {
	return &MockServiceRepository{}
}

func (m *MockServiceRepository) List(ctx context.Context) ([]records.Record, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Services, nil
}

func (m *MockServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Services = append(m.Services, records.Record{
		"ID_Cliente": service.ClientID,
		"Direccion":  service.AddressText,
		"Servicio":   service.ServiceType,
		"Notas":      service.Notes,
		"Fecha_Hora": service.ScheduledAt,
		"Row_ID":     service.RowID,
	})
	return nil
}

func (m *MockServiceRepository) Get(ctx context.Context, id string) (records.Record, error) {
	for _, rec := range m.Services {
		if rec["Row_ID"] == id {
			return rec, nil
		}
	}
	return nil, records.ErrNotFound
}

func (m *MockServiceRepository) Update(ctx context.Context, id string, upd models.ServiceUpdate) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	rec, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	rec["Direccion"] = upd.AddressText
	rec["Servicio"] = upd.ServiceType
	rec["Notas"] = upd.Notes
	return nil
}

func (m *MockServiceRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, rec := range m.Services {
		if rec["Row_ID"] == id {
			m.Services = append(m.Services[:i], m.Services[i+1:]...)
			return nil
		}
	}
	return records.ErrNotFound
}

func (m *MockServiceRepository) ListByClient(ctx context.Context, clientID string) ([]records.Record, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []records.Record
	for _, rec := range m.Services {
		if rec["ID_Cliente"] == clientID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users     map[string]*models.User
	LookupErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	user, ok := m.Users[username]
	if !ok {
		return nil, records.ErrNotFound
	}
	return user, nil
}
