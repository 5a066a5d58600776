package assignment

import "github.com/aurceive/loadout_roster/internal/domain"

func (r *Record) anyWeapon(match func(it *domain.Item) bool) bool {
	for _, slot := range domain.WeaponSlots {
		if el := r.Slot(slot); !el.IsEmpty() && match(el.Item) {
			return true
		}
	}
	return false
}

func (r *Record) IsShielded() bool {
	return r.anyWeapon(func(it *domain.Item) bool { return it.Type == domain.ItemTypeShield })
}

// CanBeShielded reports a one-handed weapon that does not forbid a shield.
func (r *Record) CanBeShielded() bool {
	return r.anyWeapon(func(it *domain.Item) bool {
		return it.Type == domain.ItemTypeOneHandedWeapon && !it.CantUseWithShields()
	})
}

func (r *Record) IsArcher() bool      { return r.anyWeapon((*domain.Item).IsBow) }
func (r *Record) IsCrossbowman() bool { return r.anyWeapon((*domain.Item).IsCrossbow) }
func (r *Record) HasThrown() bool     { return r.anyWeapon((*domain.Item).IsThrowing) }

func (r *Record) HasTwoHandedOrPolearm() bool {
	return r.anyWeapon(func(it *domain.Item) bool { return it.IsTwoHanded() || it.IsPolearm() })
}

func (r *Record) HasOneHandedPolearm() bool {
	return r.anyWeapon(func(it *domain.Item) bool { return it.IsOneHanded() && it.IsPolearm() })
}

func (r *Record) IsUnarmed() bool {
	for _, slot := range domain.WeaponSlots {
		if !r.Slot(slot).IsEmpty() {
			return false
		}
	}
	return true
}

// EmptyWeaponSlot returns the first empty weapon slot in Weapon0..Weapon3 order.
func (r *Record) EmptyWeaponSlot() (domain.EquipmentSlot, bool) {
	for _, slot := range domain.WeaponSlots {
		if r.Slot(slot).IsEmpty() {
			return slot, true
		}
	}
	return 0, false
}

// IsMounted reads the reference loadout; mounts are assigned separately.
func (r *Record) IsMounted() bool {
	return !r.reference.Get(domain.SlotHorse).IsEmpty()
}
