package assignment

import (
	"math"
	"math/rand/v2"

	"github.com/aurceive/loadout_roster/internal/domain"

	"go.uber.org/zap"
)

// Source resolves candidate items; *cache.Cache satisfies it.
type Source interface {
	Equipment(t domain.ItemType, tier int, culture domain.Culture) []*domain.Item
}

// Filler writes cache picks into a record using its reference loadout as the template.
// A Filler is not safe for concurrent use when Rand is set; give each goroutine its own.
type Filler struct {
	Source Source
	Rand   *rand.Rand
	Logger *zap.Logger
	// Weighted prefers candidates whose effectiveness is close to the reference item.
	Weighted bool
	// GenerateEmpty also fills slots the reference loadout leaves empty.
	GenerateEmpty bool
}

// Fill visits every slot in declared order and returns how many were written.
func (f *Filler) Fill(r *Record) int {
	logger := f.logger()
	ch := r.Character()
	logger.Debug("fill record",
		zap.Int64("index", r.Index()),
		zap.String("unit", ch.Name()),
		zap.Int("tier", ch.Tier()),
		zap.String("culture", string(ch.Culture())),
	)

	written := 0
	for _, slot := range domain.EquipmentSlots {
		ref := r.reference.Get(slot)

		var item *domain.Item
		if !ref.IsEmpty() {
			itemType := ref.Item.Type
			item = f.pick(f.candidates(itemType, ch.Tier(), ch.Culture()), ref.Item)
			logger.Debug("slot filled from reference",
				zap.Stringer("slot", slot),
				zap.String("type", string(itemType)),
				zap.Stringer("item", item),
			)
		} else if f.GenerateEmpty && r.Slot(slot).IsEmpty() {
			item = f.generate(r, slot)
		}
		if item == nil {
			continue
		}

		r.SetSlot(slot, domain.NewElement(item))
		written++
	}
	return written
}

// candidates looks up the unit's culture first and widens to any culture when that yields nothing.
func (f *Filler) candidates(t domain.ItemType, tier int, culture domain.Culture) []*domain.Item {
	if f.Source == nil {
		return nil
	}
	if items := f.Source.Equipment(t, tier, culture); len(items) > 0 {
		return items
	}
	if culture == domain.CultureNone {
		return nil
	}
	return f.Source.Equipment(t, tier, domain.CultureNone)
}

// generate picks a type from the slot role and the current loadout, then draws one tier lower.
// Higher-tier units are more likely to get a generated item.
func (f *Filler) generate(r *Record, slot domain.EquipmentSlot) *domain.Item {
	ch := r.Character()
	if f.randFloat32() > float32(ch.Tier())/5 {
		return nil
	}

	var itemType domain.ItemType
	switch {
	case slot.IsWeapon():
		switch {
		case r.IsUnarmed():
			itemType = domain.ItemTypeOneHandedWeapon
		case !r.IsShielded() && r.CanBeShielded():
			itemType = domain.ItemTypeTwoHandedWeapon
			if f.randFloat32() > 0.5 {
				itemType = domain.ItemTypeShield
			}
		case !r.HasOneHandedPolearm():
			itemType = domain.ItemTypePolearm
		default:
			itemType = domain.ItemTypeThrown
		}
	case slot.IsArmor():
		itemType, _ = slot.ArmorType()
	default:
		// mounts follow the reference loadout only
		return nil
	}

	if f.Source == nil {
		return nil
	}
	item := f.pick(f.Source.Equipment(itemType, ch.Tier()-1, ch.Culture()), nil)
	f.logger().Debug("slot generated",
		zap.Stringer("slot", slot),
		zap.String("type", string(itemType)),
		zap.Stringer("item", item),
	)
	return item
}

func (f *Filler) pick(items []*domain.Item, ref *domain.Item) *domain.Item {
	if len(items) == 0 {
		return nil
	}
	if f.Weighted && ref != nil {
		return selectWeighted(items, ref.Effectiveness, f.randFloat64)
	}
	return items[f.randIntN(len(items))]
}

// selectWeighted draws with weight 1/(1+|effectiveness-target|).
func selectWeighted(items []*domain.Item, target float64, roll func() float64) *domain.Item {
	weights := make([]float64, len(items))
	total := 0.0
	for i, it := range items {
		w := 1 / (1 + math.Abs(it.Effectiveness-target))
		weights[i] = w
		total += w
	}
	x := roll() * total
	for i, w := range weights {
		if x < w {
			return items[i]
		}
		x -= w
	}
	return items[len(items)-1]
}

func (f *Filler) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

func (f *Filler) randIntN(n int) int {
	if f.Rand != nil {
		return f.Rand.IntN(n)
	}
	return rand.IntN(n)
}

func (f *Filler) randFloat64() float64 {
	if f.Rand != nil {
		return f.Rand.Float64()
	}
	return rand.Float64()
}

func (f *Filler) randFloat32() float32 {
	if f.Rand != nil {
		return f.Rand.Float32()
	}
	return rand.Float32()
}
