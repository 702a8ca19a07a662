// Package session keeps one wizard state per browser session in SQLite.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/kurocal/internal/wizard"
)

// Store persists wizard states keyed by an opaque session id.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewStore returns a store whose sessions expire ttl after their last update.
func NewStore(db *sql.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl, now: time.Now}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id produced by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Load returns the state saved under id, or a new wizard when the id is
// unknown or expired.
func (s *Store) Load(ctx context.Context, id string) (wizard.State, error) {
	var stateJSON string
	var updatedUnix int64
	err := s.db.QueryRowContext(ctx, `
		SELECT state_json, updated_unix
		FROM wizard_sessions
		WHERE id = ?
	`, id).Scan(&stateJSON, &updatedUnix)
	if errors.Is(err, sql.ErrNoRows) {
		return wizard.New(), nil
	}
	if err != nil {
		return wizard.State{}, fmt.Errorf("query wizard session: %w", err)
	}

	if s.now().Sub(time.Unix(updatedUnix, 0)) > s.ttl {
		return wizard.New(), nil
	}

	var state wizard.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return wizard.State{}, fmt.Errorf("decode wizard session: %w", err)
	}
	if !state.Current.Valid() {
		return wizard.New(), nil
	}
	return state, nil
}

// Save stores state under id, replacing any previous snapshot.
func (s *Store) Save(ctx context.Context, id string, state wizard.State) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode wizard session: %w", err)
	}

	now := s.now().Unix()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wizard_sessions (id, state_json, created_unix, updated_unix)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state_json = excluded.state_json,
			updated_unix = excluded.updated_unix
	`, id, string(stateJSON), now, now)
	if err != nil {
		return fmt.Errorf("save wizard session: %w", err)
	}
	return nil
}

// Delete removes the session. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete wizard session: %w", err)
	}
	return nil
}

// PurgeExpired deletes sessions not updated within the store's ttl.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.ttl).Unix()
	result, err := s.db.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE updated_unix < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge wizard sessions: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge wizard sessions: %w", err)
	}
	return affected, nil
}
