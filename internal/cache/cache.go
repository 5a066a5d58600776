// Package cache memoizes tiered, culture-scoped item lookups over a catalog.
//
// Every key is computed at most once, even when many goroutines miss it at the
// same moment: hits are served under a read lock and misses are funnelled
// through a singleflight group that re-checks the table before computing.
// Results are shared slices and must be treated as read-only. A nil result
// means no item exists for the key or any lower tier.
package cache

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/aurceive/loadout_roster/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Catalog is the subset of the item index the cache reads.
type Catalog interface {
	ItemsByType(t domain.ItemType) []*domain.Item
	Types() []domain.ItemType
	Allowed(it *domain.Item) bool
	BannedWeaponClass(wc domain.WeaponClass) bool
	RemoveCivilian() bool
}

type Kind int

const (
	// KindEquipment keys hold items one tier below the requested tier.
	KindEquipment Kind = iota
	// KindItems keys hold items of exactly the requested tier.
	KindItems
	// KindItemsUpTo keys hold items of any allowed type at or below the requested tier.
	KindItemsUpTo
)

func (k Kind) String() string {
	switch k {
	case KindEquipment:
		return "equipment"
	case KindItems:
		return "items"
	case KindItemsUpTo:
		return "items_up_to"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Key struct {
	Kind    Kind
	Type    domain.ItemType
	Tier    int
	Culture domain.Culture
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%d|%s", k.Kind, k.Type, k.Tier, k.Culture)
}

type Cache struct {
	catalog Catalog
	logger  *zap.Logger

	mu      sync.RWMutex
	entries map[Key][]*domain.Item
	group   singleflight.Group

	computed atomic.Int64
}

func New(catalog Catalog, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		catalog: catalog,
		logger:  logger,
		entries: make(map[Key][]*domain.Item),
	}
}

func (c *Cache) lookup(key Key) ([]*domain.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.entries[key]
	return items, ok
}

func (c *Cache) memo(key Key, compute func() []*domain.Item) []*domain.Item {
	if items, ok := c.lookup(key); ok {
		return items
	}

	v, _, _ := c.group.Do(key.String(), func() (any, error) {
		// A flight for this key may have finished between our miss and Do.
		if items, ok := c.lookup(key); ok {
			return items, nil
		}
		items := compute()
		if len(items) == 0 {
			items = nil
		}
		c.computed.Add(1)

		c.mu.Lock()
		c.entries[key] = items
		c.mu.Unlock()

		c.logger.Debug("cache key computed",
			zap.Stringer("kind", key.Kind),
			zap.String("type", string(key.Type)),
			zap.Int("tier", key.Tier),
			zap.String("culture", string(key.Culture)),
			zap.Int("candidates", len(items)),
		)
		return items, nil
	})
	return v.([]*domain.Item)
}

// Computations is the number of keys computed so far.
func (c *Cache) Computations() int64 { return c.computed.Load() }

// Len is the number of memoized keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
