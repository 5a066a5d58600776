package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/aurceive/loadout_roster/internal/domain"
	"github.com/aurceive/loadout_roster/internal/logging"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCatalogPath = "data/items.yaml"
	DefaultRosterPath  = "input/loadout_roster/roster.yaml"
	DefaultRosterName  = "default"
)

// Load reads loadout_config.yaml, applies defaults and validates the result.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("read loadout_config.yaml (%s): %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse loadout_config.yaml: %w", err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func ApplyDefaults(cfg *domain.Config) {
	if strings.TrimSpace(cfg.RosterName) == "" {
		cfg.RosterName = DefaultRosterName
	}
	if strings.TrimSpace(cfg.CatalogPath) == "" {
		cfg.CatalogPath = DefaultCatalogPath
	}
	if strings.TrimSpace(cfg.RosterPath) == "" {
		cfg.RosterPath = DefaultRosterPath
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
}

// Validate reports every problem at once.
func Validate(cfg domain.Config) error {
	var errs error
	if cfg.Workers < 1 {
		errs = multierr.Append(errs, fmt.Errorf("workers must be >= 1, got %d", cfg.Workers))
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		errs = multierr.Append(errs, err)
	}
	for i, wc := range cfg.BannedWeaponClasses {
		if strings.TrimSpace(wc) == "" {
			errs = multierr.Append(errs, fmt.Errorf("banned_weapon_classes[%d]: empty value", i))
		}
	}
	for i, id := range cfg.Blacklist {
		if strings.TrimSpace(id) == "" {
			errs = multierr.Append(errs, fmt.Errorf("blacklist[%d]: empty value", i))
		}
	}
	if strings.ContainsAny(cfg.RosterName, `/\:*?"<>|`) {
		errs = multierr.Append(errs, fmt.Errorf("roster_name %q contains characters not allowed in file names", cfg.RosterName))
	}
	return errs
}
