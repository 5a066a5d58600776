package assignment

import (
	"cmp"
	"errors"
	"fmt"
)

var ErrNotRecord = errors.New("assignment: operand is not a *Record")

// Compare orders records by tier, troop type, ranged-first, unmounted-first,
// skill value, equipment value and level, all ascending. It returns 0 only
// when every key is equal.
func Compare(a, b *Record) int {
	ca, cb := a.character, b.character

	if c := cmp.Compare(ca.Tier(), cb.Tier()); c != 0 {
		return c
	}
	if c := cmp.Compare(ca.TroopType(), cb.TroopType()); c != 0 {
		return c
	}
	if ca.IsRanged() != cb.IsRanged() {
		if ca.IsRanged() {
			return -1
		}
		return 1
	}
	if ca.IsMounted() != cb.IsMounted() {
		if ca.IsMounted() {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(ca.SkillValue(), cb.SkillValue()); c != 0 {
		return c
	}
	if c := cmp.Compare(ca.EquipmentValue(), cb.EquipmentValue()); c != 0 {
		return c
	}
	return cmp.Compare(ca.Level(), cb.Level())
}

// CompareTo compares against an arbitrary operand. A nil operand sorts first;
// anything other than a *Record is a programming error.
func (r *Record) CompareTo(other any) (int, error) {
	if other == nil {
		return 1, nil
	}
	o, ok := other.(*Record)
	if !ok {
		return 0, fmt.Errorf("compare record %d with %T: %w", r.index, other, ErrNotRecord)
	}
	if o == nil {
		return 1, nil
	}
	return Compare(r, o), nil
}
