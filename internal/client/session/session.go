// Package session remembers and restores "who is logged in" across process
// restarts, using durable key-value storage beside the record store.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campuspocket/internal/client/models"
	"campuspocket/internal/client/repositories/metadata"
	"campuspocket/internal/client/repositories/users"
	"campuspocket/internal/dbx"
	"campuspocket/internal/logging"
)

const (
	keyLoggedIn = "logged_in"
	keySnapshot = "user_snapshot"
)

// snapshot is the serialized form of the cached login. Only the username is
// trusted on restore; the record store stays the source of truth for every
// profile field.
type snapshot struct {
	SessionID string      `json:"session_id"`
	SavedAt   time.Time   `json:"saved_at"`
	User      models.User `json:"user"`
}

// Manager owns the session lifecycle: MarkLoggedIn after a successful
// authentication, Restore at startup, Clear at logout.
type Manager struct {
	db    *sql.DB
	users users.Repository
	log   logging.Logger
	now   func() time.Time
}

// NewManager returns a Manager bound to the given database and user repository.
func NewManager(db *sql.DB, users users.Repository, log logging.Logger) *Manager {
	return &Manager{db: db, users: users, log: log, now: time.Now}
}

// MarkLoggedIn records user as the authenticated account. Flag and snapshot
// are written in one transaction so a crash cannot leave the flag set with
// no snapshot behind it. Call only after credentials have been verified.
func (m *Manager) MarkLoggedIn(ctx context.Context, user *models.User) error {
	snap := snapshot{
		SessionID: uuid.NewString(),
		SavedAt:   m.now().UTC(),
		User:      *user,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize session snapshot: %w", err)
	}

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyLoggedIn, []byte("1")); err != nil {
			return err
		}
		return repo.Set(ctx, keySnapshot, data)
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.log.Debug(ctx, "session persisted", "username", user.Username, "session_id", snap.SessionID)
	return nil
}

// Restore resolves the initial session state. It returns a freshly read
// user record when a valid session is cached, or nil when the caller should
// show the login form. Restoring is best-effort: a corrupt snapshot, a
// missing user or a cache read failure all degrade to "no session".
func (m *Manager) Restore(ctx context.Context) *models.User {
	repo := metadata.NewSQLiteRepository(m.db)

	flag, err := repo.Get(ctx, keyLoggedIn)
	if err != nil {
		m.log.Warn(ctx, "failed to read session flag", "error", err)
		return nil
	}
	if string(flag) != "1" {
		return nil
	}

	raw, err := repo.Get(ctx, keySnapshot)
	if err != nil {
		m.log.Warn(ctx, "failed to read session snapshot", "error", err)
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil || snap.User.Username == "" {
		m.log.Warn(ctx, "discarding unreadable session snapshot")
		return nil
	}

	// The snapshot may be stale; re-read the record of record.
	user, err := m.users.GetByUsername(ctx, snap.User.Username)
	if err != nil {
		m.log.Warn(ctx, "failed to refresh cached user", "username", snap.User.Username, "error", err)
		return nil
	}
	if user == nil {
		m.log.Warn(ctx, "cached session points at a missing user", "username", snap.User.Username)
		return nil
	}

	m.log.Debug(ctx, "session restored", "username", user.Username, "session_id", snap.SessionID)
	return user
}

// Clear forgets the cached session. Only the session's own keys are removed;
// the record store and any other cached metadata are untouched, and clearing
// an absent session is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyLoggedIn); err != nil {
			return err
		}
		return repo.Delete(ctx, keySnapshot)
	})
}
