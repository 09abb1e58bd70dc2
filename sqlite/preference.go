package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/helpcenter"
)

// Compile-time interface verification.
var _ helpcenter.PreferenceStore = (*PreferenceService)(nil)

// PreferenceService implements helpcenter.PreferenceStore using SQLite.
type PreferenceService struct {
	db *DB
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(db *DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// GetPreference retrieves a stored preference value.
func (s *PreferenceService) GetPreference(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM preferences WHERE key = ?
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", helpcenter.Errorf(helpcenter.ENOTFOUND, "preference %q not set", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetPreference stores a preference value, replacing any previous value.
func (s *PreferenceService) SetPreference(ctx context.Context, key, value string) error {
	if key == "" {
		return helpcenter.Errorf(helpcenter.EINVALID, "preference key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))

	return err
}
