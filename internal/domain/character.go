package domain

import (
	"fmt"
	"strings"
)

// TroopType is the formation class of a unit. The declared order is the comparator order.
type TroopType int

const (
	TroopInfantry TroopType = iota
	TroopRanged
	TroopCavalry
	TroopHorseArcher
)

var troopTypeNames = [...]string{
	TroopInfantry:    "infantry",
	TroopRanged:      "ranged",
	TroopCavalry:     "cavalry",
	TroopHorseArcher: "horse_archer",
}

func (t TroopType) String() string {
	if t < 0 || int(t) >= len(troopTypeNames) {
		return fmt.Sprintf("troop(%d)", int(t))
	}
	return troopTypeNames[t]
}

func ParseTroopType(s string) (TroopType, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for i, name := range troopTypeNames {
		if name == n {
			return TroopType(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported troop type %q (supported: infantry, ranged, cavalry, horse_archer)", s)
}

// Character is everything the assignment core needs to know about a unit.
type Character interface {
	Name() string
	Tier() int
	Culture() Culture
	TroopType() TroopType
	IsRanged() bool
	IsMounted() bool
	SkillValue() int
	EquipmentValue() int
	Level() int
	// BattleEquipment is the loadout the unit would use without reassignment.
	BattleEquipment() Equipment
}

// Unit is a plain Character backed by roster input.
type Unit struct {
	UnitName  string
	UnitTier  int
	Faction   Culture
	Troop     TroopType
	Ranged    bool
	Mounted   bool
	Skill     int
	EqValue   int
	UnitLevel int
	Battle    Equipment
	// Count is how many instances of this unit take part; each gets its own record.
	Count int
}

func (u *Unit) Name() string               { return u.UnitName }
func (u *Unit) Tier() int                  { return u.UnitTier }
func (u *Unit) Culture() Culture           { return u.Faction }
func (u *Unit) TroopType() TroopType       { return u.Troop }
func (u *Unit) IsRanged() bool             { return u.Ranged }
func (u *Unit) IsMounted() bool            { return u.Mounted }
func (u *Unit) SkillValue() int            { return u.Skill }
func (u *Unit) EquipmentValue() int        { return u.EqValue }
func (u *Unit) Level() int                 { return u.UnitLevel }
func (u *Unit) BattleEquipment() Equipment { return u.Battle }

// UnitSpec is a roster entry as written in roster files, before item ids are resolved.
type UnitSpec struct {
	Name           string            `yaml:"name"`
	Tier           int               `yaml:"tier"`
	Culture        string            `yaml:"culture"`
	TroopType      string            `yaml:"troop_type"`
	Ranged         bool              `yaml:"ranged"`
	Mounted        bool              `yaml:"mounted"`
	SkillValue     int               `yaml:"skill_value"`
	EquipmentValue int               `yaml:"equipment_value"`
	Level          int               `yaml:"level"`
	Count          int               `yaml:"count"`
	Equipment      map[string]string `yaml:"equipment"`
}
