package services

import (
	"context"
	"database/sql"

	"campuspocket/internal/client/models"
	"campuspocket/internal/client/repositories/users"
	"campuspocket/internal/client/validation"
	"campuspocket/internal/common"
	"campuspocket/internal/dbx"
	"campuspocket/internal/logging"
)

// ProfileService defines profile read/edit operations for the CLI.
type ProfileService interface {
	Get(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, upd *models.ProfileUpdate) (*models.User, error)
}

type profileService struct {
	db  *sql.DB
	log logging.Logger
}

// NewProfileService constructs a ProfileService bound to the given DB.
func NewProfileService(db *sql.DB, log logging.Logger) ProfileService {
	return &profileService{db: db, log: log}
}

// Get returns the record for username, or common.ErrorNotFound.
func (p *profileService) Get(ctx context.Context, username string) (*models.User, error) {
	user, err := users.NewSQLiteRepository(p.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

// Update validates the record as it would look after the edit, then applies
// the partial update. Read, validation and write share one transaction.
func (p *profileService) Update(ctx context.Context, username string, upd *models.ProfileUpdate) (*models.User, error) {
	var updated *models.User
	err := dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		current, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if current == nil {
			return common.ErrorNotFound
		}

		effective := upd.ApplyTo(*current)
		if err := validation.Profile(&effective); err != nil {
			return err
		}

		updated, err = repo.Update(ctx, username, upd)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.log.Info(ctx, "profile updated", "username", username)
	return updated, nil
}
