package helpcenter

import "context"

// Theme is a color scheme for the site.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemePreferenceKey is the preference key the theme is stored under.
const ThemePreferenceKey = "theme"

// Validate returns an error if the theme is not supported.
func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return Errorf(EINVALID, "unsupported theme %q", string(t))
	}
}

// Opposite returns the theme a toggle switches to.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// PreferenceStore is a persistent string key-value store.
type PreferenceStore interface {
	// GetPreference returns the stored value.
	// Returns ENOTFOUND if the key has never been set.
	GetPreference(ctx context.Context, key string) (string, error)

	// SetPreference stores value under key, replacing any previous value.
	SetPreference(ctx context.Context, key, value string) error
}

// ThemeService reads and changes the theme preference.
type ThemeService struct {
	store    PreferenceStore
	fallback Theme
}

// NewThemeService returns a ThemeService backed by store. The fallback is
// used when no preference has been stored; it plays the role of the
// system color-scheme preference.
func NewThemeService(store PreferenceStore, fallback Theme) *ThemeService {
	if fallback.Validate() != nil {
		fallback = ThemeLight
	}
	return &ThemeService{store: store, fallback: fallback}
}

// Current returns the stored theme, or the fallback when none is stored or
// the stored value is not a supported theme.
func (s *ThemeService) Current(ctx context.Context) (Theme, error) {
	v, err := s.store.GetPreference(ctx, ThemePreferenceKey)
	if ErrorCode(err) == ENOTFOUND {
		return s.fallback, nil
	} else if err != nil {
		return "", err
	}

	t := Theme(v)
	if t.Validate() != nil {
		return s.fallback, nil
	}
	return t, nil
}

// Set stores theme as the preference.
func (s *ThemeService) Set(ctx context.Context, theme Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	return s.store.SetPreference(ctx, ThemePreferenceKey, string(theme))
}

// Toggle switches between light and dark and returns the new theme.
func (s *ThemeService) Toggle(ctx context.Context) (Theme, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	next := current.Opposite()
	if err := s.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
