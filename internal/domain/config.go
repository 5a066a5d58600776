package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type Config struct {
	RosterName string `yaml:"roster_name"`
	// CatalogPath points to the item catalog (.yaml/.yml or .json), relative to the app root.
	CatalogPath string `yaml:"catalog_path"`
	// RosterPath points to the unit roster (.yaml/.yml or .xlsx), relative to the app root.
	RosterPath string `yaml:"roster_path"`
	// OutputTablePath optionally overrides the xlsx report path.
	OutputTablePath string `yaml:"output_table_path"`
	ExportXlsx      *bool  `yaml:"export_xlsx"`
	LogLevel        string `yaml:"log_level"`

	RemoveCivilianEquipmentsInRandom bool     `yaml:"remove_civilian_equipments_in_random"`
	BannedWeaponClasses              []string `yaml:"banned_weapon_classes"`
	Blacklist                        []string `yaml:"blacklist"`

	Seed    uint64 `yaml:"seed"`
	Workers int    `yaml:"workers"`
	// WeightedSelection picks candidates by effectiveness closeness instead of uniformly.
	WeightedSelection bool `yaml:"weighted_selection"`
	// GenerateEmptySlots enables filling slots the reference loadout leaves empty.
	GenerateEmptySlots bool `yaml:"generate_empty_slots"`
}

func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value != nil && value.Kind == yaml.MappingNode {
		allowed := map[string]struct{}{
			"roster_name":                          {},
			"catalog_path":                         {},
			"roster_path":                          {},
			"output_table_path":                    {},
			"export_xlsx":                          {},
			"log_level":                            {},
			"remove_civilian_equipments_in_random": {},
			"banned_weapon_classes":                {},
			"blacklist":                            {},
			"seed":                                 {},
			"workers":                              {},
			"weighted_selection":                   {},
			"generate_empty_slots":                 {},
		}

		for i := 0; i+1 < len(value.Content); i += 2 {
			k := value.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			if _, ok := allowed[k.Value]; !ok {
				return fmt.Errorf("config: unsupported key %q", k.Value)
			}
		}
	}

	type raw Config
	var tmp raw
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

// ShouldExportXlsx defaults to true when export_xlsx is omitted.
func (c Config) ShouldExportXlsx() bool {
	return c.ExportXlsx == nil || *c.ExportXlsx
}
