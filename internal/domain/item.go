package domain

import (
	"fmt"
	"slices"
	"strings"
)

type ItemType string

const (
	ItemTypeInvalid         ItemType = ""
	ItemTypeHorse           ItemType = "horse"
	ItemTypeOneHandedWeapon ItemType = "one_handed_weapon"
	ItemTypeTwoHandedWeapon ItemType = "two_handed_weapon"
	ItemTypePolearm         ItemType = "polearm"
	ItemTypeArrows          ItemType = "arrows"
	ItemTypeBolts           ItemType = "bolts"
	ItemTypeShield          ItemType = "shield"
	ItemTypeBow             ItemType = "bow"
	ItemTypeCrossbow        ItemType = "crossbow"
	ItemTypeThrown          ItemType = "thrown"
	ItemTypeHeadArmor       ItemType = "head_armor"
	ItemTypeBodyArmor       ItemType = "body_armor"
	ItemTypeLegArmor        ItemType = "leg_armor"
	ItemTypeHandArmor       ItemType = "hand_armor"
	ItemTypeCape            ItemType = "cape"
	ItemTypeHorseHarness    ItemType = "horse_harness"
)

// ItemTypes lists every type the catalog indexes, in a stable order.
var ItemTypes = []ItemType{
	ItemTypeHorse,
	ItemTypeOneHandedWeapon,
	ItemTypeTwoHandedWeapon,
	ItemTypePolearm,
	ItemTypeArrows,
	ItemTypeBolts,
	ItemTypeShield,
	ItemTypeBow,
	ItemTypeCrossbow,
	ItemTypeThrown,
	ItemTypeHeadArmor,
	ItemTypeBodyArmor,
	ItemTypeLegArmor,
	ItemTypeHandArmor,
	ItemTypeCape,
	ItemTypeHorseHarness,
}

func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(ItemTypes, t) {
		return ItemTypeInvalid, fmt.Errorf("unsupported item type %q", s)
	}
	return t, nil
}

// IsWeapon reports whether items of this type go into the four weapon slots.
func (t ItemType) IsWeapon() bool {
	switch t {
	case ItemTypeOneHandedWeapon, ItemTypeTwoHandedWeapon, ItemTypePolearm,
		ItemTypeArrows, ItemTypeBolts, ItemTypeShield, ItemTypeBow, ItemTypeCrossbow, ItemTypeThrown:
		return true
	}
	return false
}

func (t ItemType) IsArmor() bool {
	switch t {
	case ItemTypeHeadArmor, ItemTypeBodyArmor, ItemTypeLegArmor, ItemTypeHandArmor, ItemTypeCape:
		return true
	}
	return false
}

// Culture tags a faction. The zero value means culture-neutral (or "any" in lookups).
type Culture string

const CultureNone Culture = ""

type WeaponClass string

const (
	WeaponClassNone             WeaponClass = ""
	WeaponClassDagger           WeaponClass = "dagger"
	WeaponClassOneHandedSword   WeaponClass = "one_handed_sword"
	WeaponClassTwoHandedSword   WeaponClass = "two_handed_sword"
	WeaponClassOneHandedAxe     WeaponClass = "one_handed_axe"
	WeaponClassTwoHandedAxe     WeaponClass = "two_handed_axe"
	WeaponClassMace             WeaponClass = "mace"
	WeaponClassTwoHandedMace    WeaponClass = "two_handed_mace"
	WeaponClassOneHandedPolearm WeaponClass = "one_handed_polearm"
	WeaponClassTwoHandedPolearm WeaponClass = "two_handed_polearm"
	WeaponClassLowGripPolearm   WeaponClass = "low_grip_polearm"
	WeaponClassBow              WeaponClass = "bow"
	WeaponClassCrossbow         WeaponClass = "crossbow"
	WeaponClassJavelin          WeaponClass = "javelin"
	WeaponClassThrowingAxe      WeaponClass = "throwing_axe"
	WeaponClassThrowingKnife    WeaponClass = "throwing_knife"
	WeaponClassStone            WeaponClass = "stone"
	WeaponClassBoulder          WeaponClass = "boulder"
	WeaponClassBanner           WeaponClass = "banner"
	WeaponClassSmallShield      WeaponClass = "small_shield"
	WeaponClassLargeShield      WeaponClass = "large_shield"
	WeaponClassArrow            WeaponClass = "arrow"
	WeaponClassBolt             WeaponClass = "bolt"
)

type ItemFlag string

const (
	FlagCivilian           ItemFlag = "civilian"
	FlagNotUsableByMale    ItemFlag = "not_usable_by_male"
	FlagCraftedByPlayer    ItemFlag = "crafted_by_player"
	FlagCantUseWithShields ItemFlag = "cant_use_with_shields"
)

var knownFlags = []ItemFlag{FlagCivilian, FlagNotUsableByMale, FlagCraftedByPlayer, FlagCantUseWithShields}

// Item is an immutable catalog entry. Tier is the nominal tier (0..6).
type Item struct {
	ID            string      `yaml:"id" json:"id"`
	Name          string      `yaml:"name" json:"name"`
	Type          ItemType    `yaml:"type" json:"type"`
	Tier          int         `yaml:"tier" json:"tier"`
	Culture       Culture     `yaml:"culture" json:"culture"`
	WeaponClass   WeaponClass `yaml:"weapon_class" json:"weapon_class"`
	Flags         []ItemFlag  `yaml:"flags" json:"flags"`
	Effectiveness float64     `yaml:"effectiveness" json:"effectiveness"`
	Value         int         `yaml:"value" json:"value"`
}

func (it *Item) HasFlag(f ItemFlag) bool {
	return it != nil && slices.Contains(it.Flags, f)
}

func (it *Item) IsCivilian() bool        { return it.HasFlag(FlagCivilian) }
func (it *Item) IsCraftedByPlayer() bool { return it.HasFlag(FlagCraftedByPlayer) }

func (it *Item) HasWeaponComponent() bool { return it != nil && it.Type.IsWeapon() }
func (it *Item) HasArmorComponent() bool  { return it != nil && it.Type.IsArmor() }

func (it *Item) IsBow() bool      { return it != nil && it.Type == ItemTypeBow }
func (it *Item) IsCrossbow() bool { return it != nil && it.Type == ItemTypeCrossbow }
func (it *Item) IsThrowing() bool { return it != nil && it.Type == ItemTypeThrown }
func (it *Item) IsPolearm() bool  { return it != nil && it.Type == ItemTypePolearm }

func (it *Item) IsTwoHanded() bool {
	return it != nil && it.Type == ItemTypeTwoHandedWeapon
}

// IsOneHanded covers one-handed weapons and polearms usable in one hand.
func (it *Item) IsOneHanded() bool {
	if it == nil {
		return false
	}
	if it.Type == ItemTypeOneHandedWeapon {
		return true
	}
	return it.Type == ItemTypePolearm && it.WeaponClass == WeaponClassOneHandedPolearm
}

func (it *Item) CantUseWithShields() bool { return it.HasFlag(FlagCantUseWithShields) }

// Validate checks the fields a catalog entry needs before it can be indexed.
func (it *Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return fmt.Errorf("item: empty id")
	}
	if !slices.Contains(ItemTypes, it.Type) {
		return fmt.Errorf("item %q: unsupported type %q", it.ID, it.Type)
	}
	if it.Tier < 0 || it.Tier > 6 {
		return fmt.Errorf("item %q: tier must be in [0..6], got %d", it.ID, it.Tier)
	}
	for _, f := range it.Flags {
		if !slices.Contains(knownFlags, f) {
			return fmt.Errorf("item %q: unsupported flag %q", it.ID, f)
		}
	}
	if it.WeaponClass != WeaponClassNone && !it.Type.IsWeapon() {
		return fmt.Errorf("item %q: weapon_class set on non-weapon type %q", it.ID, it.Type)
	}
	return nil
}

func (it *Item) String() string {
	if it == nil {
		return "<none>"
	}
	name := it.Name
	if name == "" {
		name = it.ID
	}
	return fmt.Sprintf("%d#%s", it.Tier, name)
}
