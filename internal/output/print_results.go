package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aurceive/loadout_roster/internal/assignment"
	"github.com/aurceive/loadout_roster/internal/domain"
)

// PrintLoadouts writes one line per record in the given order.
func PrintLoadouts(w io.Writer, records []*assignment.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records")
		return
	}

	fmt.Fprintln(w, "Loadouts (serving order):")
	for i, r := range records {
		ch := r.Character()
		eq := r.Equipment()

		parts := make([]string, 0, domain.NumSlots)
		for _, slot := range domain.EquipmentSlots {
			it := eq.Get(slot).Item
			if it == nil {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s=%s", slot, itemName(it)))
		}
		loadout := "-"
		if len(parts) > 0 {
			loadout = strings.Join(parts, ", ")
		}

		culture := string(ch.Culture())
		if culture == "" {
			culture = "none"
		}
		fmt.Fprintf(w, "%3d. %s (t%d %s %s): %s\n", i+1, ch.Name(), ch.Tier(), culture, ch.TroopType(), loadout)
	}
}
