package taskboard

import (
	"fmt"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

// Board merges the stored assignment snapshot, the pending-edit overlay and
// the duty roster into the effective per-cell view. The stored snapshot is
// only as fresh as the last Reload; edits live exclusively in the overlay
// until a save lands.
type Board struct {
	store   map[Key]*domain.TaskAssignment
	overlay *Overlay
	roster  *Roster
}

func NewBoard(stored []*domain.TaskAssignment, roster *Roster) *Board {
	b := &Board{
		overlay: NewOverlay(),
		roster:  roster,
	}
	b.Reload(stored, roster)
	return b
}

// Reload replaces the stored snapshot and drops every pending edit. Called
// after each save so the board reflects whatever subset actually committed.
func (b *Board) Reload(stored []*domain.TaskAssignment, roster *Roster) {
	b.store = make(map[Key]*domain.TaskAssignment, len(stored))
	for _, a := range stored {
		b.store[Key{TaskID: a.TaskID, ParadeDay: a.ParadeDay}] = a
	}
	if roster != nil {
		b.roster = roster
	}
	b.overlay.DiscardAll()
}

func (b *Board) Overlay() *Overlay {
	return b.overlay
}

func (b *Board) Stored() map[Key]*domain.TaskAssignment {
	return b.store
}

// EffectiveAssignment resolves one cell: a pending clear hides the stored
// row, a pending replace wins over it but keeps the stored identity (the
// diff step needs the id), and an untouched cell falls through to the store.
func (b *Board) EffectiveAssignment(taskID int64, paradeDay int32) *domain.TaskAssignment {
	k := Key{TaskID: taskID, ParadeDay: paradeDay}

	if edit, ok := b.overlay.get(k); ok {
		if edit.kind == editClear {
			return nil
		}

		a := &domain.TaskAssignment{
			TaskID:    taskID,
			ParadeDay: paradeDay,
			Payload:   edit.payload,
		}
		if stored, ok := b.store[k]; ok {
			a.ID = stored.ID
			a.SiteID = stored.SiteID
			a.CreatedAt = stored.CreatedAt
		}
		return a
	}

	return b.store[k]
}

// DisplayInfo is the human-readable rendering of one cell.
type DisplayInfo struct {
	Assigned   bool           `json:"assigned"`
	Pinned     bool           `json:"pinned"`
	Primary    *domain.Person `json:"primary"`
	Additional *domain.Person `json:"additional"`
	SlotLabel  string         `json:"slotLabel"`
	Deadline   *string        `json:"deadline"`
}

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Describe renders an assignment for display. nil means "no assignment". A
// roster-linked cell whose slot has nobody on duty is still assigned, just
// with an empty primary person; it must not collapse into "no assignment".
func (b *Board) Describe(a *domain.TaskAssignment) DisplayInfo {
	if a == nil {
		return DisplayInfo{}
	}

	info := DisplayInfo{
		Assigned: true,
		Deadline: a.Payload.Deadline,
	}

	switch a.Payload.Kind {
	case domain.PayloadManuallyPinned:
		info.Pinned = true
		info.SlotLabel = "pinned"
		if a.Payload.PersonID != nil {
			info.Primary = b.roster.Person(*a.Payload.PersonID)
		}
	case domain.PayloadRosterLinked:
		if a.Payload.Slot == nil {
			return DisplayInfo{}
		}
		slot := *a.Payload.Slot
		info.Primary = b.roster.ResolvePerson(slot)
		if a.Payload.AdditionalPersonID != nil {
			info.Additional = b.roster.Person(*a.Payload.AdditionalPersonID)
		}
		if slot.DayOfWeek >= 0 && slot.DayOfWeek < 7 {
			info.SlotLabel = fmt.Sprintf("%s %s", dayNames[slot.DayOfWeek], slot.Shift)
		}
		if slot.PrevWeek {
			info.SlotLabel = "prev. " + info.SlotLabel
		}
	default:
		return DisplayInfo{}
	}

	return info
}
