package service

import (
	"context"
	"errors"

	"github.com/client-service-manager/internal/records"
	"github.com/client-service-manager/internal/repository"
	"github.com/rs/zerolog"
)

// authService checks credentials against the users sheet
type authService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newAuthService(users repository.UserRepository, log zerolog.Logger) AuthService {
	return &authService{
		users: users,
		log:   log.With().Str("service", "auth").Logger(),
	}
}

// Authenticate looks the username up in the users sheet and compares
// the stored password. It fails closed: an unknown user, a store error
// and a bad password all come back as (false, ""). Store errors are
// logged, never surfaced to the caller.
func (s *authService) Authenticate(ctx context.Context, username, password string) (bool, string) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, records.ErrNotFound) {
			s.log.Error().Err(err).Str("username", username).Msg("User lookup failed")
		}
		return false, ""
	}

	if user.Password != password {
		return false, ""
	}
	return true, user.Role
}
