package assignment

import (
	"math/rand/v2"
	"testing"

	"github.com/aurceive/loadout_roster/internal/domain"
)

type lookupCall struct {
	t       domain.ItemType
	tier    int
	culture domain.Culture
}

// fakeSource answers from a fixed table and records every call.
type fakeSource struct {
	table map[lookupCall][]*domain.Item
	calls []lookupCall
}

func (s *fakeSource) Equipment(t domain.ItemType, tier int, culture domain.Culture) []*domain.Item {
	c := lookupCall{t, tier, culture}
	s.calls = append(s.calls, c)
	return s.table[c]
}

func TestFill_EmptyReferenceSlotStaysEmpty(t *testing.T) {
	u := unit(3)
	u.Battle.Set(domain.SlotWeapon0, domain.NewElement(sword))
	r := New(u)

	newSword := &domain.Item{ID: "new_sword", Type: domain.ItemTypeOneHandedWeapon, Tier: 2}
	src := &fakeSource{table: map[lookupCall][]*domain.Item{
		{domain.ItemTypeOneHandedWeapon, 3, "A"}: {newSword},
	}}
	f := &Filler{Source: src, Rand: rand.New(rand.NewPCG(1, 1))}

	if n := f.Fill(r); n != 1 {
		t.Fatalf("expected 1 slot written, got %d", n)
	}
	if got := r.Slot(domain.SlotWeapon0).Item; got != newSword {
		t.Fatalf("expected new_sword in weapon0, got %v", got)
	}
	for _, slot := range domain.EquipmentSlots[1:] {
		if !r.Slot(slot).IsEmpty() {
			t.Fatalf("expected %s to stay empty", slot)
		}
	}
	if len(src.calls) != 1 {
		t.Fatalf("expected a single lookup, got %#v", src.calls)
	}
}

func TestFill_WidensToAnyCulture(t *testing.T) {
	u := unit(2)
	u.Battle.Set(domain.SlotHead, domain.NewElement(helmet))
	r := New(u)

	foreign := &domain.Item{ID: "foreign_helmet", Type: domain.ItemTypeHeadArmor, Tier: 1, Culture: "B"}
	src := &fakeSource{table: map[lookupCall][]*domain.Item{
		{domain.ItemTypeHeadArmor, 2, domain.CultureNone}: {foreign},
	}}
	f := &Filler{Source: src}
	f.Fill(r)

	if got := r.Slot(domain.SlotHead).Item; got != foreign {
		t.Fatalf("expected widened pick, got %v", got)
	}
	want := []lookupCall{
		{domain.ItemTypeHeadArmor, 2, "A"},
		{domain.ItemTypeHeadArmor, 2, domain.CultureNone},
	}
	if len(src.calls) != len(want) || src.calls[0] != want[0] || src.calls[1] != want[1] {
		t.Fatalf("expected calls %#v, got %#v", want, src.calls)
	}
}

func TestFill_NoCandidatesLeavesSlot(t *testing.T) {
	u := unit(2)
	u.Battle.Set(domain.SlotHorse, domain.NewElement(horse))
	r := New(u)
	r.SetSlot(domain.SlotHorse, domain.NewElement(horse))

	f := &Filler{Source: &fakeSource{}}
	if n := f.Fill(r); n != 0 {
		t.Fatalf("expected nothing written, got %d", n)
	}
	if got := r.Slot(domain.SlotHorse).Item; got != horse {
		t.Fatalf("expected existing horse to be kept, got %v", got)
	}
}

func TestFill_GenerateEmptySlots(t *testing.T) {
	u := unit(5)
	r := New(u)

	mace := &domain.Item{ID: "mace", Type: domain.ItemTypeOneHandedWeapon, Tier: 3}
	hood := &domain.Item{ID: "hood", Type: domain.ItemTypeHeadArmor, Tier: 3}
	src := &fakeSource{table: map[lookupCall][]*domain.Item{
		{domain.ItemTypeOneHandedWeapon, 4, "A"}: {mace},
		{domain.ItemTypeHeadArmor, 4, "A"}:       {hood},
	}}
	f := &Filler{Source: src, Rand: rand.New(rand.NewPCG(7, 7)), GenerateEmpty: true}
	f.Fill(r)

	if got := r.Slot(domain.SlotWeapon0).Item; got != mace {
		t.Fatalf("expected unarmed unit to get a one-handed weapon, got %v", got)
	}
	if got := r.Slot(domain.SlotHead).Item; got != hood {
		t.Fatalf("expected generated head armor, got %v", got)
	}
	if !r.Slot(domain.SlotHorse).IsEmpty() {
		t.Fatalf("mount slots are never generated")
	}
	for _, c := range src.calls {
		if c.tier != 4 {
			t.Fatalf("expected generation one tier below the unit, got %#v", c)
		}
	}
}

func TestFill_GenerateSkipsTierZero(t *testing.T) {
	r := New(unit(0))
	src := &fakeSource{}
	f := &Filler{Source: src, Rand: rand.New(rand.NewPCG(3, 3)), GenerateEmpty: true}
	if n := f.Fill(r); n != 0 {
		t.Fatalf("expected tier-0 unit to get nothing, got %d", n)
	}
	if len(src.calls) != 0 {
		t.Fatalf("expected no lookups, got %#v", src.calls)
	}
}

func TestSelectWeighted(t *testing.T) {
	near := &domain.Item{ID: "near", Effectiveness: 10}
	far := &domain.Item{ID: "far", Effectiveness: 110}
	items := []*domain.Item{far, near}

	// weights: far=1/101, near=1/1
	if got := selectWeighted(items, 10, func() float64 { return 0.5 }); got != near {
		t.Fatalf("expected near, got %v", got)
	}
	if got := selectWeighted(items, 10, func() float64 { return 0 }); got != far {
		t.Fatalf("expected far for a zero roll, got %v", got)
	}
	if got := selectWeighted(items, 10, func() float64 { return 0.999999 }); got != near {
		t.Fatalf("expected near for a high roll, got %v", got)
	}
}

func TestFill_WeightedUsesReferenceEffectiveness(t *testing.T) {
	ref := &domain.Item{ID: "ref", Type: domain.ItemTypeBodyArmor, Tier: 3, Effectiveness: 40}
	closeMatch := &domain.Item{ID: "close", Type: domain.ItemTypeBodyArmor, Tier: 2, Effectiveness: 40}
	distant := &domain.Item{ID: "distant", Type: domain.ItemTypeBodyArmor, Tier: 2, Effectiveness: 1e9}

	u := unit(3)
	u.Battle.Set(domain.SlotBody, domain.NewElement(ref))
	src := &fakeSource{table: map[lookupCall][]*domain.Item{
		{domain.ItemTypeBodyArmor, 3, "A"}: {closeMatch, distant},
	}}
	rng := rand.New(rand.NewPCG(11, 13))
	for i := 0; i < 50; i++ {
		r := New(u)
		(&Filler{Source: src, Rand: rng, Weighted: true}).Fill(r)
		if got := r.Slot(domain.SlotBody).Item; got != closeMatch {
			t.Fatalf("expected the close match, got %v", got)
		}
	}
}
