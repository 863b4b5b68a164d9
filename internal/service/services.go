package service

import (
	"context"

	"github.com/client-service-manager/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for credential checks
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (bool, string)
}

// Services holds all service interfaces
type Services struct {
	Auth AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Auth: newAuthService(repos.User, log),
	}
}
