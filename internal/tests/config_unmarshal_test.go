package loadoutroster_test

import (
	"strings"
	"testing"

	"github.com/aurceive/loadout_roster/internal/config"
	"github.com/aurceive/loadout_roster/internal/domain"
	"gopkg.in/yaml.v3"
)

func TestConfigUnmarshal_RejectsUnknownKeys(t *testing.T) {
	var cfg domain.Config
	in := "" +
		"roster_name: test\n" +
		"workers: 2\n" +
		"unknown_key: 123\n"

	err := yaml.Unmarshal([]byte(in), &cfg)
	if err == nil {
		t.Fatalf("expected error for unsupported config keys")
	}
}

func TestConfigUnmarshal_AllowsLists(t *testing.T) {
	var cfg domain.Config
	in := "" +
		"roster_name: test\n" +
		"banned_weapon_classes:\n" +
		"  - crossbow\n" +
		"  - javelin\n" +
		"blacklist:\n" +
		"  - cursed_blade\n"

	if err := yaml.Unmarshal([]byte(in), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.BannedWeaponClasses) != 2 {
		t.Fatalf("expected 2 banned weapon classes, got %d", len(cfg.BannedWeaponClasses))
	}
	if len(cfg.Blacklist) != 1 || cfg.Blacklist[0] != "cursed_blade" {
		t.Fatalf("unexpected blacklist %v", cfg.Blacklist)
	}
}

func TestConfigParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte("{}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RosterName != config.DefaultRosterName {
		t.Fatalf("expected default roster name, got %q", cfg.RosterName)
	}
	if cfg.CatalogPath != config.DefaultCatalogPath || cfg.RosterPath != config.DefaultRosterPath {
		t.Fatalf("unexpected default paths: %q %q", cfg.CatalogPath, cfg.RosterPath)
	}
	if cfg.Workers != 1 {
		t.Fatalf("expected 1 worker by default, got %d", cfg.Workers)
	}
	if !cfg.ShouldExportXlsx() {
		t.Fatalf("expected xlsx export to default to true")
	}
	if cfg.WeightedSelection || cfg.GenerateEmptySlots {
		t.Fatalf("expected optional fill modes to be off by default")
	}
}

func TestConfigParse_ExportXlsxFalse(t *testing.T) {
	cfg, err := config.Parse([]byte("export_xlsx: false\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ShouldExportXlsx() {
		t.Fatalf("expected export to be disabled")
	}
}

func TestConfigParse_ReportsEveryProblem(t *testing.T) {
	in := "" +
		"roster_name: a/b\n" +
		"workers: -2\n" +
		"log_level: chatty\n" +
		"blacklist:\n" +
		"  - \"\"\n"

	_, err := config.Parse([]byte(in))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"roster_name", "workers", "log_level", "blacklist[0]"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error, got: %v", want, err)
		}
	}
}
