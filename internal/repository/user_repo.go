package repository

import (
	"context"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/records"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	table records.Table
}

// NewUserRepo creates a new user repository
func NewUserRepo(table records.Table) UserRepository {
	return &userRepo{table: table}
}

// GetByUsername locates a user row by username and maps it by the users
// sheet column layout
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row, err := records.FindRow(ctx, r.table, username)
	if err != nil {
		return nil, err
	}

	values, err := r.table.RowValues(ctx, row)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username}
	if len(values) >= models.UserColName {
		user.Name = values[models.UserColName-1]
	}
	if len(values) >= models.UserColPassword {
		user.Password = values[models.UserColPassword-1]
	}
	if len(values) >= models.UserColRole {
		user.Role = values[models.UserColRole-1]
	}
	return user, nil
}
