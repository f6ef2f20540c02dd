package domain

// Theme represents the persisted presentation preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// PreferenceKeyTheme is the key the theme flag is stored under
const PreferenceKeyTheme = "theme"

// Valid checks if a theme value is one of the two known themes
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggled returns the opposite theme
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// PreferenceRepository persists simple key-value preferences
type PreferenceRepository interface {
	// Get returns the stored value for key, or "" when the key is absent
	Get(key string) (string, error)
	Set(key, value string) error
	Close() error
}
