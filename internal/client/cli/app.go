// Package cli implements the interactive shell of the CampusPocket client.
// It is strictly a caller of the auth and profile services; every store
// invariant lives below this layer.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"campuspocket/internal/client/config"
	"campuspocket/internal/client/models"
	"campuspocket/internal/client/repositories/users"
	"campuspocket/internal/client/services"
	"campuspocket/internal/client/session"
	"campuspocket/internal/client/store"
	"campuspocket/internal/logging"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	profileService services.ProfileService
	log            logging.Logger
	user           *models.User
	reader         *bufio.Reader
	db             *sql.DB
}

// NewApp opens the on-device database (resetting the record store) and
// wires the services together.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	sess := session.NewManager(db, users.NewSQLiteRepository(db), log)

	return &App{
		config:         cfg,
		authService:    services.NewAuthService(db, sess, log),
		profileService: services.NewProfileService(db, log),
		log:            log,
		reader:         bufio.NewReader(os.Stdin),
		db:             db,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Run restores a cached session, if any, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	if u := a.authService.Restore(ctx); u != nil {
		a.user = u
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.FirstName))
	}

	a.Root(ctx)
}
