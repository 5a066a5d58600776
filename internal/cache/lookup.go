package cache

import "github.com/aurceive/loadout_roster/internal/domain"

// Equipment returns candidates for a slot whose unit is at the given tier.
// Items are matched one tier below (item.Tier+1 == tier); when nothing
// matches, the lookup degrades to tier-1 and the degraded result is memoized
// under this key too. tier < 0 ends the chain with nil.
//
// CultureNone acts as a wildcard and widens the pool to every culture.
func (c *Cache) Equipment(t domain.ItemType, tier int, culture domain.Culture) []*domain.Item {
	if tier < 0 {
		return nil
	}
	key := Key{Kind: KindEquipment, Type: t, Tier: tier, Culture: culture}
	return c.memo(key, func() []*domain.Item {
		var out []*domain.Item
		for _, it := range c.catalog.ItemsByType(t) {
			if it == nil || it.Tier+1 != tier {
				continue
			}
			if !c.passes(it, culture) || !c.equipmentUsable(it) {
				continue
			}
			out = append(out, it)
		}
		if len(out) == 0 {
			return c.Equipment(t, tier-1, culture)
		}
		return out
	})
}

// Items is the plain type cache: items of exactly the given tier, degrading
// to lower tiers when empty.
func (c *Cache) Items(t domain.ItemType, tier int, culture domain.Culture) []*domain.Item {
	if tier < 0 {
		return nil
	}
	key := Key{Kind: KindItems, Type: t, Tier: tier, Culture: culture}
	return c.memo(key, func() []*domain.Item {
		var out []*domain.Item
		for _, it := range c.catalog.ItemsByType(t) {
			if it == nil || it.Tier != tier {
				continue
			}
			if !c.passes(it, culture) || !c.itemUsable(it) {
				continue
			}
			out = append(out, it)
		}
		if len(out) == 0 {
			return c.Items(t, tier-1, culture)
		}
		return out
	})
}

// ItemsUpTo returns every allowed item, of any type, at or below tier. It does not degrade.
func (c *Cache) ItemsUpTo(tier int, culture domain.Culture) []*domain.Item {
	if tier < 0 {
		return nil
	}
	key := Key{Kind: KindItemsUpTo, Tier: tier, Culture: culture}
	return c.memo(key, func() []*domain.Item {
		var out []*domain.Item
		for _, t := range c.catalog.Types() {
			for _, it := range c.catalog.ItemsByType(t) {
				if it == nil || it.Tier > tier {
					continue
				}
				if !c.passes(it, culture) || !c.itemUsable(it) {
					continue
				}
				out = append(out, it)
			}
		}
		return out
	})
}

// passes applies the filters every cache shares: blacklist, player-crafted,
// banned weapon class and culture.
func (c *Cache) passes(it *domain.Item, culture domain.Culture) bool {
	if !c.catalog.Allowed(it) {
		return false
	}
	if it.IsCraftedByPlayer() {
		return false
	}
	if it.HasWeaponComponent() && c.catalog.BannedWeaponClass(it.WeaponClass) {
		return false
	}
	return cultureMatches(it.Culture, culture)
}

func cultureMatches(item, requested domain.Culture) bool {
	return item == domain.CultureNone || requested == domain.CultureNone || item == requested
}

func isMount(it *domain.Item) bool {
	return it.Type == domain.ItemTypeHorse || it.Type == domain.ItemTypeHorseHarness
}

// equipmentUsable only restricts armor. With civilian removal on, low-tier
// civilian body and head pieces are dropped; otherwise female-only pieces are.
func (c *Cache) equipmentUsable(it *domain.Item) bool {
	if isMount(it) || !it.HasArmorComponent() {
		return true
	}
	if c.catalog.RemoveCivilian() {
		headOrBody := it.Type == domain.ItemTypeBodyArmor || it.Type == domain.ItemTypeHeadArmor
		return !(it.IsCivilian() && headOrBody && it.Tier < 1)
	}
	return !it.HasFlag(domain.FlagNotUsableByMale)
}

func (c *Cache) itemUsable(it *domain.Item) bool {
	if isMount(it) {
		return true
	}
	if c.catalog.RemoveCivilian() {
		return !it.IsCivilian()
	}
	return !it.HasFlag(domain.FlagNotUsableByMale)
}
