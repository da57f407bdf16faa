package enums

import "maps"

type AppTheme string

const (
	ThemeLight AppTheme = "light"
	ThemeDark  AppTheme = "dark"
)

var appThemeDescriptions = map[AppTheme]string{
	ThemeLight: "Light Theme",
	ThemeDark:  "Dark Theme",
}

func AppThemeValues() []AppTheme {
	return []AppTheme{ThemeLight, ThemeDark}
}

func AppThemeDescriptions() map[AppTheme]string {
	return maps.Clone(appThemeDescriptions)
}

func ParseAppTheme(raw string) (AppTheme, error) {
	return parse("theme", raw, AppThemeValues())
}

func (t AppTheme) Description() string {
	if d, ok := appThemeDescriptions[t]; ok {
		return d
	}
	return "Unknown Theme"
}

func (t AppTheme) Valid() bool {
	_, ok := appThemeDescriptions[t]
	return ok
}
