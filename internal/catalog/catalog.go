// Package catalog is the read-only item index the tier cache queries.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aurceive/loadout_roster/internal/domain"

	"go.uber.org/multierr"
)

type Options struct {
	// Blacklist holds item ids that must never be handed out.
	Blacklist           []string
	BannedWeaponClasses []string
	RemoveCivilian      bool
}

type Catalog struct {
	byID           map[string]*domain.Item
	byType         map[domain.ItemType][]*domain.Item
	blacklist      map[string]struct{}
	banned         map[domain.WeaponClass]struct{}
	removeCivilian bool
}

// New validates items and indexes them by type. Every invalid or duplicate item is reported.
func New(items []domain.Item, opts Options) (*Catalog, error) {
	c := &Catalog{
		byID:           make(map[string]*domain.Item, len(items)),
		byType:         make(map[domain.ItemType][]*domain.Item),
		blacklist:      make(map[string]struct{}, len(opts.Blacklist)),
		banned:         make(map[domain.WeaponClass]struct{}, len(opts.BannedWeaponClasses)),
		removeCivilian: opts.RemoveCivilian,
	}

	var errs error
	for i := range items {
		it := items[i]
		if err := it.Validate(); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, dup := c.byID[it.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("item %q: duplicate id", it.ID))
			continue
		}
		c.byID[it.ID] = &it
		c.byType[it.Type] = append(c.byType[it.Type], &it)
	}
	if errs != nil {
		return nil, errs
	}

	for _, id := range opts.Blacklist {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		c.blacklist[id] = struct{}{}
	}
	for _, wc := range opts.BannedWeaponClasses {
		wc = strings.ToLower(strings.TrimSpace(wc))
		if wc == "" {
			continue
		}
		c.banned[domain.WeaponClass(wc)] = struct{}{}
	}

	// keep deterministic candidate order
	for t, list := range c.byType {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Tier != list[j].Tier {
				return list[i].Tier < list[j].Tier
			}
			return list[i].ID < list[j].ID
		})
		c.byType[t] = list
	}
	return c, nil
}

// ItemsByType returns the indexed items of type t. The slice is shared and must not be modified.
func (c *Catalog) ItemsByType(t domain.ItemType) []*domain.Item {
	return c.byType[t]
}

// Types returns the item types present in the catalog, in domain.ItemTypes order.
func (c *Catalog) Types() []domain.ItemType {
	out := make([]domain.ItemType, 0, len(c.byType))
	for _, t := range domain.ItemTypes {
		if len(c.byType[t]) > 0 {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) Find(id string) (*domain.Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

func (c *Catalog) Len() int { return len(c.byID) }

// Allowed is the blacklist test.
func (c *Catalog) Allowed(it *domain.Item) bool {
	if it == nil {
		return false
	}
	_, banned := c.blacklist[it.ID]
	return !banned
}

func (c *Catalog) BannedWeaponClass(wc domain.WeaponClass) bool {
	_, ok := c.banned[wc]
	return ok
}

func (c *Catalog) RemoveCivilian() bool { return c.removeCivilian }
