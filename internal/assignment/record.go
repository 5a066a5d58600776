// Package assignment holds the per-unit equipment record, the priority
// comparator used to order records, and the filler that draws slot contents
// from the tier cache.
package assignment

import (
	"sync"
	"sync/atomic"

	"github.com/aurceive/loadout_roster/internal/domain"
)

var counter atomic.Int64

// Record is one unit's loadout during an engagement. Equipment and the
// assigned flag are guarded by separate locks; holding one says nothing about
// the other.
type Record struct {
	index     int64
	character domain.Character
	reference domain.Equipment

	eqMu      sync.RWMutex
	equipment domain.Equipment

	flagMu   sync.RWMutex
	assigned bool
}

// New creates a record with empty equipment and a snapshot of the unit's battle loadout.
func New(ch domain.Character) *Record {
	return &Record{
		index:     counter.Add(1),
		character: ch,
		reference: ch.BattleEquipment().Clone(),
	}
}

// Index is a process-wide identity; it carries no ordering meaning.
func (r *Record) Index() int64 { return r.index }

func (r *Record) Character() domain.Character { return r.character }

// Reference returns a copy of the template loadout.
func (r *Record) Reference() domain.Equipment { return r.reference }

func (r *Record) Slot(slot domain.EquipmentSlot) domain.Element {
	r.eqMu.RLock()
	defer r.eqMu.RUnlock()
	return r.equipment.Get(slot)
}

// SetSlot overwrites a slot. The item type is not checked against the slot's role.
func (r *Record) SetSlot(slot domain.EquipmentSlot, el domain.Element) {
	r.eqMu.Lock()
	defer r.eqMu.Unlock()
	r.equipment.Set(slot, el)
}

// Equipment returns a consistent copy of every slot.
func (r *Record) Equipment() domain.Equipment {
	r.eqMu.RLock()
	defer r.eqMu.RUnlock()
	return r.equipment
}

func (r *Record) IsAssigned() bool {
	r.flagMu.RLock()
	defer r.flagMu.RUnlock()
	return r.assigned
}

func (r *Record) SetAssigned(v bool) {
	r.flagMu.Lock()
	defer r.flagMu.Unlock()
	r.assigned = v
}
