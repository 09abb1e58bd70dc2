package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helpcenter"
)

// Ensure LoggingPreferenceStore implements helpcenter.PreferenceStore.
var _ helpcenter.PreferenceStore = (*LoggingPreferenceStore)(nil)

// LoggingPreferenceStore wraps a PreferenceStore with logging of writes.
type LoggingPreferenceStore struct {
	next   helpcenter.PreferenceStore
	logger *slog.Logger
}

// NewLoggingPreferenceStore creates a new LoggingPreferenceStore.
func NewLoggingPreferenceStore(next helpcenter.PreferenceStore, logger *slog.Logger) *LoggingPreferenceStore {
	return &LoggingPreferenceStore{next: next, logger: logger}
}

// GetPreference delegates to the wrapped store.
func (s *LoggingPreferenceStore) GetPreference(ctx context.Context, key string) (string, error) {
	return s.next.GetPreference(ctx, key)
}

// SetPreference delegates to the wrapped store and logs the change.
func (s *LoggingPreferenceStore) SetPreference(ctx context.Context, key, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("preference set",
			"key", key,
			"value", value,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SetPreference(ctx, key, value)
}
