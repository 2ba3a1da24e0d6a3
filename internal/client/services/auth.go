// Package services contains application services for the CampusPocket
// client: registration, login/logout, session restore, and profile
// maintenance on top of the local record store and session cache.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"campuspocket/internal/client/models"
	"campuspocket/internal/client/repositories/users"
	"campuspocket/internal/client/session"
	"campuspocket/internal/client/validation"
	"campuspocket/internal/common"
	"campuspocket/internal/dbx"
	"campuspocket/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate the full form, then create the record; a taken
//     username fails with common.ErrorUsernameTaken and writes nothing.
//   - Login: verify credentials against the store, then persist the session.
//   - Logout: forget the cached session; records are untouched.
//   - Restore: best-effort session recovery at startup, never an error.
type AuthService interface {
	Register(ctx context.Context, user *models.User) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) *models.User
}

// authService is the concrete AuthService backed by the local database
// and the session cache.
type authService struct {
	db      *sql.DB
	session *session.Manager
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given DB and session manager.
func NewAuthService(db *sql.DB, session *session.Manager, log logging.Logger) AuthService {
	return &authService{db: db, session: session, log: log}
}

// Register validates the registration form and inserts the record. The
// existence check and the insert run in one transaction, so two concurrent
// registrations for the same username cannot both succeed.
func (a *authService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validation.Profile(user); err != nil {
		return nil, err
	}

	var created *models.User
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		existing, err := repo.GetByUsername(ctx, user.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return common.ErrorUsernameTaken
		}

		created, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user registered", "username", created.Username, "id", created.ID)
	return created, nil
}

// Login verifies the credentials and, on success, persists the session.
func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if err := validation.Login(username, password); err != nil {
		return nil, err
	}

	repo := users.NewSQLiteRepository(a.db)
	user, err := repo.GetByCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := a.session.MarkLoggedIn(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist login: %w", err)
	}

	a.log.Info(ctx, "login successful", "username", user.Username)
	return user, nil
}

// Logout clears the cached session.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// Restore recovers the session cached by a previous run, if any.
func (a *authService) Restore(ctx context.Context) *models.User {
	return a.session.Restore(ctx)
}
