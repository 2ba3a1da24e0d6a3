package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"campuspocket/internal/client/models"
	"campuspocket/internal/common"
	"campuspocket/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const userColumns = `id, username, password, firstName, lastName, email, contactNumber, address, profilePicture`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FirstName, &u.LastName,
		&u.Email, &u.ContactNumber, &u.Address, &u.ProfilePicture)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new record and fills in the store-assigned id.
// The UNIQUE column catches a duplicate username that slipped past the
// caller's existence check.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (username, password, firstName, lastName, email, contactNumber, address, profilePicture)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		user.Username, user.Password, user.FirstName, user.LastName,
		user.Email, user.ContactNumber, user.Address, user.ProfilePicture)
	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return nil, common.ErrorUsernameTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}

	user.ID = id
	return user, nil
}

// GetByUsername returns the record for username, or (nil, nil) when absent.
func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return user, nil
}

// GetByCredentials returns the record matching both username and password
// exactly. A miss on either field yields common.ErrorInvalidCredentials.
func (r *SQLiteRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? AND password = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username, password))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("failed to select user by credentials: %w", err)
	}
	return user, nil
}

// Update reads the current record, overlays the non-empty update fields and
// writes the result back. Empty strings mean "no change"; a field cannot be
// cleared through an update. The affected-rows check reports a record that
// vanished between the read and the write as not found.
func (r *SQLiteRepository) Update(ctx context.Context, username string, upd *models.ProfileUpdate) (*models.User, error) {
	current, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, common.ErrorNotFound
	}

	merged := upd.ApplyTo(*current)

	query := `UPDATE users SET firstName = ?, lastName = ?, email = ?, contactNumber = ?, address = ?, profilePicture = ?
			WHERE username = ?`

	res, err := r.db.ExecContext(ctx, query,
		merged.FirstName, merged.LastName, merged.Email,
		merged.ContactNumber, merged.Address, merged.ProfilePicture, username)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}

	return &merged, nil
}
