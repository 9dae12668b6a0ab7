package enums

import "fmt"

// AppTheme selects the client presentation theme stored in preferences.
type AppTheme string

const (
	AppThemeLight  AppTheme = "LIGHT"
	AppThemeDark   AppTheme = "DARK"
	AppThemeSystem AppTheme = "SYSTEM"
)

var validAppThemes = []AppTheme{
	AppThemeLight,
	AppThemeDark,
	AppThemeSystem,
}

// String implements fmt.Stringer.
func (a AppTheme) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AppTheme.
func (a AppTheme) IsValid() bool {
	for _, candidate := range validAppThemes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAppTheme converts raw input into an AppTheme.
func ParseAppTheme(value string) (AppTheme, error) {
	for _, candidate := range validAppThemes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid app theme %q", value)
}

// CoerceAppTheme decodes a stored token leniently, mapping unknown values
// to the first declared member.
func CoerceAppTheme(value string) AppTheme {
	if parsed, err := ParseAppTheme(value); err == nil {
		return parsed
	}
	return validAppThemes[0]
}
