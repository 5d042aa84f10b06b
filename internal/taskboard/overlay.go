package taskboard

import (
	"fmt"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

// Key identifies one board cell. A struct key rather than a concatenated
// string, so two ids can never collide into the same map entry.
type Key struct {
	TaskID    int64
	ParadeDay int32
}

type editKind int

const (
	editReplace editKind = iota
	editClear
)

type pendingEdit struct {
	kind    editKind
	payload domain.AssignmentPayload
}

// Overlay holds the uncommitted edit set layered over the last-loaded
// assignment snapshot. It never touches the backing store; the changeset
// compiler consumes it on save. A second edit to the same key overwrites the
// first (last write wins, like everything else here).
type Overlay struct {
	edits map[Key]pendingEdit
}

func NewOverlay() *Overlay {
	return &Overlay{edits: make(map[Key]pendingEdit)}
}

// SetReplace records the intent to create or update the cell. An incomplete
// payload (no person chosen for a pin, no slot chosen for a roster link) is
// recorded as a clear instead, matching what an emptied-out form means, and
// the validation error is returned so the caller can tell.
func (o *Overlay) SetReplace(taskID int64, paradeDay int32, p domain.AssignmentPayload) error {
	if err := ValidatePayload(p); err != nil {
		o.SetClear(taskID, paradeDay)
		return err
	}

	o.edits[Key{TaskID: taskID, ParadeDay: paradeDay}] = pendingEdit{
		kind:    editReplace,
		payload: p,
	}
	return nil
}

// SetClear records the intent to delete the cell's assignment on save. Valid
// even when no stored row exists; the compiler turns that into a no-op.
func (o *Overlay) SetClear(taskID int64, paradeDay int32) {
	o.edits[Key{TaskID: taskID, ParadeDay: paradeDay}] = pendingEdit{kind: editClear}
}

// Remove drops a single pending edit, resetting the cell back to whatever
// the stored snapshot says.
func (o *Overlay) Remove(taskID int64, paradeDay int32) {
	delete(o.edits, Key{TaskID: taskID, ParadeDay: paradeDay})
}

func (o *Overlay) DiscardAll() {
	o.edits = make(map[Key]pendingEdit)
}

func (o *Overlay) HasChanges() bool {
	return len(o.edits) > 0
}

func (o *Overlay) Len() int {
	return len(o.edits)
}

func (o *Overlay) get(k Key) (pendingEdit, bool) {
	edit, ok := o.edits[k]
	return edit, ok
}

// ValidatePayload checks that a payload is complete enough to persist.
func ValidatePayload(p domain.AssignmentPayload) error {
	switch p.Kind {
	case domain.PayloadManuallyPinned:
		if p.PersonID == nil {
			return fmt.Errorf("manually pinned assignment has no person")
		}
	case domain.PayloadRosterLinked:
		if p.Slot == nil {
			return fmt.Errorf("roster-linked assignment has no slot")
		}
		if p.Slot.DayOfWeek < 0 || p.Slot.DayOfWeek > 6 {
			return fmt.Errorf("slot day of week %d out of range", p.Slot.DayOfWeek)
		}
		switch p.Slot.Shift {
		case domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftEvening:
		default:
			return fmt.Errorf("unknown shift %q", p.Slot.Shift)
		}
	default:
		return fmt.Errorf("unknown payload kind %q", p.Kind)
	}

	if p.Deadline != nil {
		if _, err := time.Parse("15:04", *p.Deadline); err != nil {
			return fmt.Errorf("bad deadline %q, want HH:MM", *p.Deadline)
		}
	}

	return nil
}
