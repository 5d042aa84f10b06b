package taskboard

import (
	"testing"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manualPayload(personID int64) domain.AssignmentPayload {
	return domain.AssignmentPayload{
		Kind:     domain.PayloadManuallyPinned,
		PersonID: &personID,
	}
}

func rosterPayload(day int32, shift domain.ShiftSlot) domain.AssignmentPayload {
	return domain.AssignmentPayload{
		Kind: domain.PayloadRosterLinked,
		Slot: &domain.RosterSlot{DayOfWeek: day, Shift: shift},
	}
}

func TestOverlayLifecycle(t *testing.T) {
	o := NewOverlay()
	assert.False(t, o.HasChanges())

	require.NoError(t, o.SetReplace(1, 0, manualPayload(7)))
	o.SetClear(2, 3)
	assert.True(t, o.HasChanges())
	assert.Equal(t, 2, o.Len())

	o.Remove(2, 3)
	assert.Equal(t, 1, o.Len())

	o.DiscardAll()
	assert.False(t, o.HasChanges())
	assert.Equal(t, 0, o.Len())
}

func TestOverlayLastWriteWins(t *testing.T) {
	o := NewOverlay()

	require.NoError(t, o.SetReplace(1, 0, manualPayload(7)))
	require.NoError(t, o.SetReplace(1, 0, manualPayload(8)))
	assert.Equal(t, 1, o.Len())

	edit, ok := o.get(Key{TaskID: 1, ParadeDay: 0})
	require.True(t, ok)
	assert.Equal(t, editReplace, edit.kind)
	assert.Equal(t, int64(8), *edit.payload.PersonID)

	o.SetClear(1, 0)
	edit, ok = o.get(Key{TaskID: 1, ParadeDay: 0})
	require.True(t, ok)
	assert.Equal(t, editClear, edit.kind)
	assert.Equal(t, 1, o.Len())
}

func TestOverlayIncompleteReplaceFallsThroughToClear(t *testing.T) {
	o := NewOverlay()

	err := o.SetReplace(4, 2, domain.AssignmentPayload{Kind: domain.PayloadManuallyPinned})
	require.Error(t, err)

	edit, ok := o.get(Key{TaskID: 4, ParadeDay: 2})
	require.True(t, ok)
	assert.Equal(t, editClear, edit.kind)
}

func TestValidatePayload(t *testing.T) {
	deadline := "18:30"
	badDeadline := "half past six"

	tests := []struct {
		name    string
		payload domain.AssignmentPayload
		wantErr bool
	}{
		{"manual ok", manualPayload(1), false},
		{"roster ok", rosterPayload(3, domain.ShiftEvening), false},
		{"manual without person", domain.AssignmentPayload{Kind: domain.PayloadManuallyPinned}, true},
		{"roster without slot", domain.AssignmentPayload{Kind: domain.PayloadRosterLinked}, true},
		{"roster day out of range", rosterPayload(7, domain.ShiftMorning), true},
		{"roster bad shift", rosterPayload(1, "brunch"), true},
		{"unknown kind", domain.AssignmentPayload{Kind: "sideways"}, true},
		{
			"deadline ok",
			domain.AssignmentPayload{Kind: domain.PayloadManuallyPinned, PersonID: i64(1), Deadline: &deadline},
			false,
		},
		{
			"bad deadline",
			domain.AssignmentPayload{Kind: domain.PayloadManuallyPinned, PersonID: i64(1), Deadline: &badDeadline},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
