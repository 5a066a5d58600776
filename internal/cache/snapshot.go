package cache

import (
	"sort"

	"github.com/aurceive/loadout_roster/internal/domain"
)

// Entry describes one memoized key for diagnostics.
type Entry struct {
	Kind    string   `yaml:"kind"`
	Type    string   `yaml:"type,omitempty"`
	Tier    int      `yaml:"tier"`
	Culture string   `yaml:"culture,omitempty"`
	Count   int      `yaml:"count"`
	Items   []string `yaml:"items,omitempty"`
}

// Snapshot lists every memoized key, sorted by kind, type, tier and culture.
func (c *Cache) Snapshot() []Entry {
	c.mu.RLock()
	keys := make([]Key, 0, len(c.entries))
	values := make(map[Key][]*domain.Item, len(c.entries))
	for k, v := range c.entries {
		keys = append(keys, k)
		values[k] = v
	}
	c.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return a.Culture < b.Culture
	})

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		items := values[k]
		ids := make([]string, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		out = append(out, Entry{
			Kind:    k.Kind.String(),
			Type:    string(k.Type),
			Tier:    k.Tier,
			Culture: string(k.Culture),
			Count:   len(items),
			Items:   ids,
		})
	}
	return out
}
