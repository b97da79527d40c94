package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jlhu/perdiem/internal/i18n"
	"github.com/jlhu/perdiem/internal/theme"
)

// The two persisted preference flags.
const (
	SettingLanguage = "language"
	SettingTheme    = "theme"
)

// GetSetting returns the stored value for a key, or "" when unset.
func GetSetting(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a value for a key, replacing any existing value.
func SetSetting(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storing setting %q: %w", key, err)
	}
	return nil
}

// EnsureDefaults seeds the preference flags that are not set yet.
// INSERT OR IGNORE keeps this safe against concurrent startups.
func EnsureDefaults(ctx context.Context, db *sql.DB, language, themeMode string) error {
	defaults := map[string]string{
		SettingLanguage: language,
		SettingTheme:    themeMode,
	}
	for key, value := range defaults {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("seeding setting %q: %w", key, err)
		}
	}
	return nil
}

// Language returns the stored UI language, falling back to the default
// for unset or unknown values.
func Language(ctx context.Context, db *sql.DB) (string, error) {
	value, err := GetSetting(ctx, db, SettingLanguage)
	if err != nil {
		return i18n.Default, err
	}
	if !i18n.Supported(value) {
		return i18n.Default, nil
	}
	return value, nil
}

// SetLanguage stores the UI language preference.
func SetLanguage(ctx context.Context, db *sql.DB, lang string) error {
	if !i18n.Supported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	return SetSetting(ctx, db, SettingLanguage, lang)
}

// Theme returns the stored theme mode, falling back to auto for unset or
// unknown values.
func Theme(ctx context.Context, db *sql.DB) (string, error) {
	value, err := GetSetting(ctx, db, SettingTheme)
	if err != nil {
		return theme.Auto, err
	}
	return theme.Parse(value), nil
}

// SetTheme stores the theme preference.
func SetTheme(ctx context.Context, db *sql.DB, mode string) error {
	if !theme.Known(mode) {
		return fmt.Errorf("unknown theme mode %q", mode)
	}
	return SetSetting(ctx, db, SettingTheme, mode)
}
