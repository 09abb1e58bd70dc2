package helpcenter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/helpcenter"
	"github.com/fwojciec/helpcenter/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, helpcenter.ThemeLight.Validate())
	assert.NoError(t, helpcenter.ThemeDark.Validate())
	assert.Equal(t, helpcenter.EINVALID, helpcenter.ErrorCode(helpcenter.Theme("sepia").Validate()))
}

func TestThemeService_Current(t *testing.T) {
	t.Parallel()

	t.Run("returns fallback when nothing is stored", func(t *testing.T) {
		t.Parallel()

		svc := helpcenter.NewThemeService(mock.NewMemoryPreferenceStore(), helpcenter.ThemeDark)

		theme, err := svc.Current(context.Background())

		require.NoError(t, err)
		assert.Equal(t, helpcenter.ThemeDark, theme)
	})

	t.Run("returns stored theme", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryPreferenceStore()
		require.NoError(t, store.SetPreference(context.Background(), helpcenter.ThemePreferenceKey, "light"))
		svc := helpcenter.NewThemeService(store, helpcenter.ThemeDark)

		theme, err := svc.Current(context.Background())

		require.NoError(t, err)
		assert.Equal(t, helpcenter.ThemeLight, theme)
	})

	t.Run("ignores unsupported stored value", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryPreferenceStore()
		require.NoError(t, store.SetPreference(context.Background(), helpcenter.ThemePreferenceKey, "sepia"))
		svc := helpcenter.NewThemeService(store, helpcenter.ThemeLight)

		theme, err := svc.Current(context.Background())

		require.NoError(t, err)
		assert.Equal(t, helpcenter.ThemeLight, theme)
	})

	t.Run("invalid fallback defaults to light", func(t *testing.T) {
		t.Parallel()

		svc := helpcenter.NewThemeService(mock.NewMemoryPreferenceStore(), helpcenter.Theme(""))

		theme, err := svc.Current(context.Background())

		require.NoError(t, err)
		assert.Equal(t, helpcenter.ThemeLight, theme)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()

		store := &mock.PreferenceStore{
			GetPreferenceFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("database is locked")
			},
		}
		svc := helpcenter.NewThemeService(store, helpcenter.ThemeLight)

		_, err := svc.Current(context.Background())

		assert.Error(t, err)
	})
}

func TestThemeService_Set(t *testing.T) {
	t.Parallel()

	t.Run("rejects unsupported theme", func(t *testing.T) {
		t.Parallel()

		svc := helpcenter.NewThemeService(mock.NewMemoryPreferenceStore(), helpcenter.ThemeLight)

		err := svc.Set(context.Background(), helpcenter.Theme("sepia"))

		assert.Equal(t, helpcenter.EINVALID, helpcenter.ErrorCode(err))
	})
}

func TestThemeService_Toggle(t *testing.T) {
	t.Parallel()

	t.Run("flips and persists the theme", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryPreferenceStore()
		svc := helpcenter.NewThemeService(store, helpcenter.ThemeLight)

		theme, err := svc.Toggle(context.Background())
		require.NoError(t, err)
		assert.Equal(t, helpcenter.ThemeDark, theme)

		stored, err := store.GetPreference(context.Background(), helpcenter.ThemePreferenceKey)
		require.NoError(t, err)
		assert.Equal(t, "dark", stored)

		theme, err = svc.Toggle(context.Background())
		require.NoError(t, err)
		assert.Equal(t, helpcenter.ThemeLight, theme)
	})
}

func TestFeedback_Validate(t *testing.T) {
	t.Parallel()

	fb := helpcenter.Feedback{Helpful: true}
	assert.Equal(t, helpcenter.EINVALID, helpcenter.ErrorCode(fb.Validate()))

	fb.Reference = "article_1.html"
	assert.NoError(t, fb.Validate())
}
