package roster

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aurceive/loadout_roster/internal/domain"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ItemFinder resolves item ids from reference loadouts; *catalog.Catalog satisfies it.
type ItemFinder interface {
	Find(id string) (*domain.Item, bool)
}

type File struct {
	Units []domain.UnitSpec `yaml:"units"`
}

// LoadFile reads unit specs from a roster YAML file.
func LoadFile(path string) ([]domain.UnitSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster (%s): %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) ([]domain.UnitSpec, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse roster yaml: %w", err)
	}
	return f.Units, nil
}

// Resolve turns specs into units, looking up every reference item. All
// problems are reported together.
func Resolve(specs []domain.UnitSpec, items ItemFinder) ([]*domain.Unit, error) {
	var errs error
	out := make([]*domain.Unit, 0, len(specs))
	for i, s := range specs {
		u, err := resolveOne(s, items)
		if err != nil {
			name := strings.TrimSpace(s.Name)
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			errs = multierr.Append(errs, fmt.Errorf("unit %s: %w", name, err))
			continue
		}
		out = append(out, u)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func resolveOne(s domain.UnitSpec, items ItemFinder) (*domain.Unit, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, fmt.Errorf("empty name")
	}
	if s.Tier < 0 || s.Tier > 6 {
		return nil, fmt.Errorf("tier must be in [0..6], got %d", s.Tier)
	}
	troop, err := domain.ParseTroopType(s.TroopType)
	if err != nil {
		return nil, err
	}
	count := s.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return nil, fmt.Errorf("count must be positive, got %d", s.Count)
	}

	u := &domain.Unit{
		UnitName:  name,
		UnitTier:  s.Tier,
		Faction:   domain.Culture(strings.TrimSpace(s.Culture)),
		Troop:     troop,
		Ranged:    s.Ranged,
		Mounted:   s.Mounted,
		Skill:     s.SkillValue,
		EqValue:   s.EquipmentValue,
		UnitLevel: s.Level,
		Count:     count,
	}

	// sorted so error output is stable
	slotNames := make([]string, 0, len(s.Equipment))
	for k := range s.Equipment {
		slotNames = append(slotNames, k)
	}
	sort.Strings(slotNames)

	var errs error
	for _, k := range slotNames {
		id := strings.TrimSpace(s.Equipment[k])
		slot, err := domain.ParseSlot(k)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if id == "" {
			continue
		}
		it, ok := items.Find(id)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: unknown item %q", slot, id))
			continue
		}
		if !slot.Accepts(it.Type) {
			errs = multierr.Append(errs, fmt.Errorf("%s: item %q of type %s does not fit the slot", slot, id, it.Type))
			continue
		}
		u.Battle.Set(slot, domain.NewElement(it))
	}
	if errs != nil {
		return nil, errs
	}
	return u, nil
}
