package taskboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

// Legacy wire encoding of the assignment variant, kept for compatibility with
// already-persisted rows: "manual-<personID>" pins a person directly, any
// other tag is "<dayOfWeek>-<shiftName>" with an optional "prev-" prefix for
// a previous-week slot. Only this file reads or writes the string form; the
// rest of the code works with domain.AssignmentPayload.
const (
	manualTagPrefix   = "manual-"
	prevWeekTagPrefix = "prev-"
)

func EncodeShiftTag(p domain.AssignmentPayload) (string, error) {
	switch p.Kind {
	case domain.PayloadManuallyPinned:
		if p.PersonID == nil {
			return "", fmt.Errorf("manually pinned payload has no person")
		}
		return manualTagPrefix + strconv.FormatInt(*p.PersonID, 10), nil
	case domain.PayloadRosterLinked:
		if p.Slot == nil {
			return "", fmt.Errorf("roster-linked payload has no slot")
		}
		tag := fmt.Sprintf("%d-%s", p.Slot.DayOfWeek, p.Slot.Shift)
		if p.Slot.PrevWeek {
			tag = prevWeekTagPrefix + tag
		}
		return tag, nil
	default:
		return "", fmt.Errorf("unknown payload kind %q", p.Kind)
	}
}

// DecodeShiftTag parses the stored tag back into a payload. extraPersonID is
// the manual_person_id column, which for roster-linked rows holds the
// additional person not derived from the roster.
func DecodeShiftTag(tag string, extraPersonID *int64) (domain.AssignmentPayload, error) {
	if rest, ok := strings.CutPrefix(tag, manualTagPrefix); ok {
		personID, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return domain.AssignmentPayload{}, fmt.Errorf("bad manual tag %q: %w", tag, err)
		}
		return domain.AssignmentPayload{
			Kind:     domain.PayloadManuallyPinned,
			PersonID: &personID,
		}, nil
	}

	rest, prev := strings.CutPrefix(tag, prevWeekTagPrefix)
	dayPart, shiftPart, ok := strings.Cut(rest, "-")
	if !ok {
		return domain.AssignmentPayload{}, fmt.Errorf("bad shift tag %q", tag)
	}

	day, err := strconv.ParseInt(dayPart, 10, 32)
	if err != nil || day < 0 || day > 6 {
		return domain.AssignmentPayload{}, fmt.Errorf("bad day of week in shift tag %q", tag)
	}

	shift := domain.ShiftSlot(shiftPart)
	switch shift {
	case domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftEvening:
	default:
		return domain.AssignmentPayload{}, fmt.Errorf("bad shift name in shift tag %q", tag)
	}

	return domain.AssignmentPayload{
		Kind: domain.PayloadRosterLinked,
		Slot: &domain.RosterSlot{
			DayOfWeek: int32(day),
			Shift:     shift,
			PrevWeek:  prev,
		},
		AdditionalPersonID: extraPersonID,
	}, nil
}
