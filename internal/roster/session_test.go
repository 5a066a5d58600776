package roster_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aurceive/loadout_roster/internal/assignment"
	"github.com/aurceive/loadout_roster/internal/cache"
	"github.com/aurceive/loadout_roster/internal/domain"
	"github.com/aurceive/loadout_roster/internal/roster"
)

func testUnits(t *testing.T) []*domain.Unit {
	t.Helper()
	c := testCatalog(t)
	find := func(id string) domain.Element {
		it, ok := c.Find(id)
		if !ok {
			t.Fatalf("missing item %s", id)
		}
		return domain.NewElement(it)
	}

	low := &domain.Unit{UnitName: "Recruit", UnitTier: 1, Faction: "A", Troop: domain.TroopInfantry, Count: 3}
	low.Battle.Set(domain.SlotWeapon0, find("sword_a"))

	high := &domain.Unit{UnitName: "Veteran", UnitTier: 3, Faction: "A", Troop: domain.TroopInfantry, Count: 2}
	high.Battle.Set(domain.SlotWeapon0, find("sword_a"))
	high.Battle.Set(domain.SlotHead, find("helm_a"))

	rider := &domain.Unit{UnitName: "Rider", UnitTier: 3, Faction: "A", Troop: domain.TroopCavalry, Mounted: true, Count: 1}
	rider.Battle.Set(domain.SlotWeapon0, find("sword_a"))
	rider.Battle.Set(domain.SlotHorse, find("horse_a"))

	return []*domain.Unit{low, high, rider}
}

func TestSession_BuildOrdersByPriority(t *testing.T) {
	s := roster.NewSession(nil, roster.Options{})
	s.Build(testUnits(t))

	recs := s.Records()
	if len(recs) != 6 {
		t.Fatalf("expected 6 records, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if assignment.Compare(recs[i-1], recs[i]) > 0 {
			t.Fatalf("records not ascending at %d", i)
		}
	}

	order := s.Order()
	if order[0].Character().Tier() != 3 {
		t.Fatalf("expected a tier-3 record served first, got tier %d", order[0].Character().Tier())
	}
	if last := order[len(order)-1]; last.Character().Tier() != 1 {
		t.Fatalf("expected a tier-1 record served last, got tier %d", last.Character().Tier())
	}
	// cavalry sorts after infantry of the same tier, so it is served first
	if order[0].Character().Name() != "Rider" {
		t.Fatalf("expected Rider first, got %s", order[0].Character().Name())
	}
}

func TestSession_AddKeepsOrder(t *testing.T) {
	s := roster.NewSession(nil, roster.Options{})
	s.Build(testUnits(t))
	r := s.Add(&domain.Unit{UnitName: "Champion", UnitTier: 6, Faction: "A"})
	if s.Order()[0] != r {
		t.Fatalf("expected the tier-6 unit to be served first")
	}
	recs := s.Records()
	for i := 1; i < len(recs); i++ {
		if assignment.Compare(recs[i-1], recs[i]) > 0 {
			t.Fatalf("records not ascending after Add at %d", i)
		}
	}
}

func TestSession_FillAssignsEveryRecord(t *testing.T) {
	c := cache.New(testCatalog(t), nil)
	s := roster.NewSession(c, roster.Options{Seed: 42})
	s.Build(testUnits(t))

	st, err := s.Fill(context.Background())
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if st.Records != 6 || st.Skipped != 0 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if len(s.Unassigned()) != 0 {
		t.Fatalf("expected every record to be assigned")
	}
	for _, r := range s.Order() {
		if r.Character().Tier() < 3 {
			continue
		}
		// tier 3 looks up tier-2 one-handed weapons of culture A
		if it := r.Slot(domain.SlotWeapon0).Item; it == nil || it.ID != "sword_a" {
			t.Fatalf("expected sword_a for %s, got %v", r.Character().Name(), it)
		}
	}

	again, err := s.Fill(context.Background())
	if err != nil {
		t.Fatalf("second fill: %v", err)
	}
	if again.Skipped != 6 || again.Filled != 0 {
		t.Fatalf("expected a second fill to skip everything, got %+v", again)
	}
}

func loadoutIDs(recs []*assignment.Record) [][domain.NumSlots]string {
	out := make([][domain.NumSlots]string, len(recs))
	for i, r := range recs {
		eq := r.Equipment()
		for _, slot := range domain.EquipmentSlots {
			if it := eq.Get(slot).Item; it != nil {
				out[i][slot] = it.ID
			}
		}
	}
	return out
}

func TestSession_ParallelMatchesSequential(t *testing.T) {
	run := func(workers int) [][domain.NumSlots]string {
		c := cache.New(testCatalog(t), nil)
		s := roster.NewSession(c, roster.Options{Seed: 7, Workers: workers, GenerateEmpty: true})
		s.Build(testUnits(t))
		if _, err := s.Fill(context.Background()); err != nil {
			t.Fatalf("fill (workers=%d): %v", workers, err)
		}
		return loadoutIDs(s.Order())
	}

	seq := run(1)
	par := run(8)
	if len(seq) != len(par) {
		t.Fatalf("length mismatch %d vs %d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("position %d differs: %v vs %v", i, seq[i], par[i])
		}
	}
}

func TestSession_FillHonoursCancellation(t *testing.T) {
	c := cache.New(testCatalog(t), nil)
	s := roster.NewSession(c, roster.Options{})
	s.Build(testUnits(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Fill(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(s.Unassigned()) != 6 {
		t.Fatalf("expected nothing assigned after cancellation")
	}
}
