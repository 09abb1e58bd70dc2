package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/helpcenter"
)

var _ helpcenter.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore is a mock implementation of helpcenter.PreferenceStore.
type PreferenceStore struct {
	GetPreferenceFn func(ctx context.Context, key string) (string, error)
	SetPreferenceFn func(ctx context.Context, key, value string) error
}

func (s *PreferenceStore) GetPreference(ctx context.Context, key string) (string, error) {
	return s.GetPreferenceFn(ctx, key)
}

func (s *PreferenceStore) SetPreference(ctx context.Context, key, value string) error {
	return s.SetPreferenceFn(ctx, key, value)
}

// NewMemoryPreferenceStore returns a PreferenceStore backed by a map.
func NewMemoryPreferenceStore() *PreferenceStore {
	var mu sync.Mutex
	values := make(map[string]string)
	return &PreferenceStore{
		GetPreferenceFn: func(_ context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := values[key]
			if !ok {
				return "", helpcenter.Errorf(helpcenter.ENOTFOUND, "preference %q not set", key)
			}
			return v, nil
		},
		SetPreferenceFn: func(_ context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			values[key] = value
			return nil
		},
	}
}
