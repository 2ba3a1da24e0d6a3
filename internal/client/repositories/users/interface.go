// Package users implements the durable record store for registered accounts.
package users

import (
	"context"

	"campuspocket/internal/client/models"
)

// Repository provides CRUD over user records.
//
// Contract:
//   - Create inserts a new record and fails with common.ErrorUsernameTaken
//     when the username is already registered.
//   - GetByUsername returns (nil, nil) when no record matches; a non-nil
//     error always means a store failure, never a miss.
//   - GetByCredentials requires an exact, case-sensitive match on both
//     fields and fails with common.ErrorInvalidCredentials on a miss.
//   - Update merges non-empty fields over the stored record and fails with
//     common.ErrorNotFound when the username has no record.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*models.User, error)
	Update(ctx context.Context, username string, upd *models.ProfileUpdate) (*models.User, error)
}
