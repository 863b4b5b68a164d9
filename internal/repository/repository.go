package repository

import (
	"context"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/records"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	List(ctx context.Context) ([]records.Record, error)
	Create(ctx context.Context, client *models.Client) error
	Get(ctx context.Context, id string) (records.Record, error)
	Update(ctx context.Context, id string, upd models.ClientUpdate) error
	Delete(ctx context.Context, id string) error
}

// AddressRepository defines the interface for address data operations
type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	Get(ctx context.Context, id string) (records.Record, error)
	Update(ctx context.Context, id string, text string) error
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID string) ([]records.Record, error)
}

// ServiceRepository defines the interface for service data operations
type ServiceRepository interface {
	List(ctx context.Context) ([]records.Record, error)
	Create(ctx context.Context, service *models.Service) error
	Get(ctx context.Context, id string) (records.Record, error)
	Update(ctx context.Context, id string, upd models.ServiceUpdate) error
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID string) ([]records.Record, error)
}

// UserRepository defines the interface for user lookups
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Client  ClientRepository
	Address AddressRepository
	Service ServiceRepository
	User    UserRepository
}

// New creates all repositories over their backing worksheets
func New(clients, addresses, services, users records.Table) *Repositories {
	return &Repositories{
		Client:  NewClientRepo(clients),
		Address: NewAddressRepo(addresses),
		Service: NewServiceRepo(services),
		User:    NewUserRepo(users),
	}
}
