package taskboard

import (
	"testing"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func TestEncodeShiftTag(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.AssignmentPayload
		want    string
		wantErr bool
	}{
		{
			name: "manual pin",
			payload: domain.AssignmentPayload{
				Kind:     domain.PayloadManuallyPinned,
				PersonID: i64(7),
			},
			want: "manual-7",
		},
		{
			name: "roster slot",
			payload: domain.AssignmentPayload{
				Kind: domain.PayloadRosterLinked,
				Slot: &domain.RosterSlot{DayOfWeek: 2, Shift: domain.ShiftMorning},
			},
			want: "2-morning",
		},
		{
			name: "previous week saturday",
			payload: domain.AssignmentPayload{
				Kind: domain.PayloadRosterLinked,
				Slot: &domain.RosterSlot{DayOfWeek: 6, Shift: domain.ShiftEvening, PrevWeek: true},
			},
			want: "prev-6-evening",
		},
		{
			name:    "manual without person",
			payload: domain.AssignmentPayload{Kind: domain.PayloadManuallyPinned},
			wantErr: true,
		},
		{
			name:    "roster without slot",
			payload: domain.AssignmentPayload{Kind: domain.PayloadRosterLinked},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			payload: domain.AssignmentPayload{Kind: "sideways"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeShiftTag(tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeShiftTag(t *testing.T) {
	t.Run("manual pin", func(t *testing.T) {
		p, err := DecodeShiftTag("manual-42", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.PayloadManuallyPinned, p.Kind)
		require.NotNil(t, p.PersonID)
		assert.Equal(t, int64(42), *p.PersonID)
		assert.Nil(t, p.Slot)
	})

	t.Run("roster slot with additional person", func(t *testing.T) {
		p, err := DecodeShiftTag("4-afternoon", i64(9))
		require.NoError(t, err)
		assert.Equal(t, domain.PayloadRosterLinked, p.Kind)
		require.NotNil(t, p.Slot)
		assert.Equal(t, int32(4), p.Slot.DayOfWeek)
		assert.Equal(t, domain.ShiftAfternoon, p.Slot.Shift)
		assert.False(t, p.Slot.PrevWeek)
		require.NotNil(t, p.AdditionalPersonID)
		assert.Equal(t, int64(9), *p.AdditionalPersonID)
	})

	t.Run("previous week saturday", func(t *testing.T) {
		p, err := DecodeShiftTag("prev-6-evening", nil)
		require.NoError(t, err)
		require.NotNil(t, p.Slot)
		assert.True(t, p.Slot.PrevWeek)
		assert.Equal(t, int32(6), p.Slot.DayOfWeek)
	})

	t.Run("bad tags", func(t *testing.T) {
		for _, tag := range []string{"", "manual-", "manual-x", "morning", "7-morning", "-1-morning", "2-brunch", "prev-"} {
			_, err := DecodeShiftTag(tag, nil)
			assert.Error(t, err, "tag %q", tag)
		}
	})
}

func TestShiftTagRoundTrip(t *testing.T) {
	payloads := []domain.AssignmentPayload{
		{Kind: domain.PayloadManuallyPinned, PersonID: i64(3)},
		{Kind: domain.PayloadRosterLinked, Slot: &domain.RosterSlot{DayOfWeek: 0, Shift: domain.ShiftMorning}},
		{Kind: domain.PayloadRosterLinked, Slot: &domain.RosterSlot{DayOfWeek: 6, Shift: domain.ShiftEvening, PrevWeek: true}, AdditionalPersonID: i64(11)},
	}

	for _, p := range payloads {
		tag, err := EncodeShiftTag(p)
		require.NoError(t, err)

		got, err := DecodeShiftTag(tag, p.AdditionalPersonID)
		require.NoError(t, err)
		assert.Equal(t, p.Kind, got.Kind)
		if p.Slot != nil {
			assert.Equal(t, *p.Slot, *got.Slot)
		}
		if p.PersonID != nil {
			assert.Equal(t, *p.PersonID, *got.PersonID)
		}
	}
}
