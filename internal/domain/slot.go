package domain

import (
	"fmt"
	"strings"
)

type EquipmentSlot int

const (
	SlotWeapon0 EquipmentSlot = iota
	SlotWeapon1
	SlotWeapon2
	SlotWeapon3
	SlotHead
	SlotCape
	SlotBody
	SlotGloves
	SlotLeg
	SlotHorse
	SlotHorseHarness

	NumSlots int = iota
)

// WeaponSlots is the fixed scan order for weapon slot queries.
var WeaponSlots = [...]EquipmentSlot{SlotWeapon0, SlotWeapon1, SlotWeapon2, SlotWeapon3}

// EquipmentSlots lists every slot in declared order.
var EquipmentSlots = func() []EquipmentSlot {
	out := make([]EquipmentSlot, NumSlots)
	for i := range out {
		out[i] = EquipmentSlot(i)
	}
	return out
}()

var slotNames = [...]string{
	SlotWeapon0:      "weapon0",
	SlotWeapon1:      "weapon1",
	SlotWeapon2:      "weapon2",
	SlotWeapon3:      "weapon3",
	SlotHead:         "head",
	SlotCape:         "cape",
	SlotBody:         "body",
	SlotGloves:       "gloves",
	SlotLeg:          "leg",
	SlotHorse:        "horse",
	SlotHorseHarness: "horse_harness",
}

func (s EquipmentSlot) Valid() bool { return s >= 0 && int(s) < NumSlots }

func (s EquipmentSlot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

func (s EquipmentSlot) IsWeapon() bool { return s >= SlotWeapon0 && s <= SlotWeapon3 }
func (s EquipmentSlot) IsArmor() bool  { return s >= SlotHead && s <= SlotLeg }

func ParseSlot(name string) (EquipmentSlot, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range slotNames {
		if sn == n {
			return EquipmentSlot(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported equipment slot %q", name)
}

// ArmorType is the item type an armor or mount slot holds. ok is false for weapon slots.
func (s EquipmentSlot) ArmorType() (ItemType, bool) {
	switch s {
	case SlotHead:
		return ItemTypeHeadArmor, true
	case SlotCape:
		return ItemTypeCape, true
	case SlotBody:
		return ItemTypeBodyArmor, true
	case SlotGloves:
		return ItemTypeHandArmor, true
	case SlotLeg:
		return ItemTypeLegArmor, true
	case SlotHorse:
		return ItemTypeHorse, true
	case SlotHorseHarness:
		return ItemTypeHorseHarness, true
	}
	return ItemTypeInvalid, false
}

// Accepts reports whether an item of type t fits the slot's role.
func (s EquipmentSlot) Accepts(t ItemType) bool {
	if s.IsWeapon() {
		return t.IsWeapon()
	}
	want, ok := s.ArmorType()
	return ok && want == t
}

// Element is one slot's content. The zero value is empty.
type Element struct {
	Item *Item
}

func NewElement(it *Item) Element { return Element{Item: it} }

func (e Element) IsEmpty() bool { return e.Item == nil }

// Equipment is a full loadout indexed by slot. It is a value type; assignment copies it.
type Equipment [NumSlots]Element

func (e Equipment) Get(slot EquipmentSlot) Element {
	if !slot.Valid() {
		return Element{}
	}
	return e[slot]
}

func (e *Equipment) Set(slot EquipmentSlot, el Element) {
	if e == nil || !slot.Valid() {
		return
	}
	e[slot] = el
}

func (e Equipment) Clone() Equipment { return e }
