// Package theme implements the light/dark/auto theme preference: parsing,
// cycling for the toggle pill, and resolution of "auto" against the
// client's color-scheme hint.
package theme

// Theme modes. Auto follows the client's system preference.
const (
	Auto  = "auto"
	Light = "light"
	Dark  = "dark"
)

// Known reports whether s is one of the three modes.
func Known(s string) bool {
	return s == Auto || s == Light || s == Dark
}

// Parse returns s if it is a known mode, Auto otherwise.
func Parse(s string) string {
	if Known(s) {
		return s
	}
	return Auto
}

// Resolve returns the effective theme (Light or Dark) for a stored mode.
// systemDark is the client's prefers-dark hint and only matters in Auto.
func Resolve(mode string, systemDark bool) string {
	switch mode {
	case Dark:
		return Dark
	case Light:
		return Light
	default:
		if systemDark {
			return Dark
		}
		return Light
	}
}

// Next cycles the toggle: auto -> light -> dark -> auto.
func Next(mode string) string {
	switch mode {
	case Auto:
		return Light
	case Light:
		return Dark
	default:
		return Auto
	}
}
