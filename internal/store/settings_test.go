package store

import (
	"context"
	"testing"

	"github.com/jlhu/perdiem/internal/db"
	"github.com/jlhu/perdiem/internal/i18n"
	"github.com/jlhu/perdiem/internal/theme"
)

func TestSettingRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	value, err := GetSetting(ctx, database, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if value != "" {
		t.Errorf("unset key should return empty, got %q", value)
	}

	if err := SetSetting(ctx, database, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := SetSetting(ctx, database, "k", "v2"); err != nil {
		t.Fatal(err)
	}

	value, _ = GetSetting(ctx, database, "k")
	if value != "v2" {
		t.Errorf("expected replaced value v2, got %q", value)
	}
}

func TestEnsureDefaultsDoesNotOverwrite(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := SetLanguage(ctx, database, i18n.LangEN); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDefaults(ctx, database, i18n.LangZH, theme.Dark); err != nil {
		t.Fatal(err)
	}

	lang, _ := Language(ctx, database)
	if lang != i18n.LangEN {
		t.Errorf("existing language must survive EnsureDefaults, got %q", lang)
	}

	mode, _ := Theme(ctx, database)
	if mode != theme.Dark {
		t.Errorf("unset theme should be seeded, got %q", mode)
	}
}

func TestLanguageFallsBackOnGarbage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	SetSetting(ctx, database, SettingLanguage, "klingon")
	lang, err := Language(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if lang != i18n.Default {
		t.Errorf("unknown stored language should fall back to default, got %q", lang)
	}

	if err := SetLanguage(ctx, database, "klingon"); err == nil {
		t.Error("SetLanguage should reject unknown tags")
	}
}

func TestThemePreference(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	mode, _ := Theme(ctx, database)
	if mode != theme.Auto {
		t.Errorf("unset theme should be auto, got %q", mode)
	}

	if err := SetTheme(ctx, database, theme.Dark); err != nil {
		t.Fatal(err)
	}
	mode, _ = Theme(ctx, database)
	if mode != theme.Dark {
		t.Errorf("expected dark, got %q", mode)
	}

	if err := SetTheme(ctx, database, "sepia"); err == nil {
		t.Error("SetTheme should reject unknown modes")
	}
}
