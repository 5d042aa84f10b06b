package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func TestTagColumns(t *testing.T) {
	person := int64(7)
	extra := int64(12)

	t.Run("manual row duplicates the person into the column", func(t *testing.T) {
		tag, col, err := tagColumns(domain.AssignmentPayload{
			Kind:     domain.PayloadManuallyPinned,
			PersonID: &person,
		})
		require.NoError(t, err)
		assert.Equal(t, "manual-7", tag)
		require.NotNil(t, col)
		assert.Equal(t, person, *col)
	})

	t.Run("roster row puts the additional person into the column", func(t *testing.T) {
		tag, col, err := tagColumns(domain.AssignmentPayload{
			Kind:               domain.PayloadRosterLinked,
			Slot:               &domain.RosterSlot{DayOfWeek: 2, Shift: domain.ShiftMorning},
			AdditionalPersonID: &extra,
		})
		require.NoError(t, err)
		assert.Equal(t, "2-morning", tag)
		require.NotNil(t, col)
		assert.Equal(t, extra, *col)
	})

	t.Run("previous week slot keeps its prefix", func(t *testing.T) {
		tag, col, err := tagColumns(domain.AssignmentPayload{
			Kind: domain.PayloadRosterLinked,
			Slot: &domain.RosterSlot{DayOfWeek: 6, Shift: domain.ShiftEvening, PrevWeek: true},
		})
		require.NoError(t, err)
		assert.Equal(t, "prev-6-evening", tag)
		assert.Nil(t, col)
	})

	t.Run("incomplete payload does not encode", func(t *testing.T) {
		_, _, err := tagColumns(domain.AssignmentPayload{Kind: domain.PayloadManuallyPinned})
		assert.Error(t, err)
	})
}

func TestPhotoKeys(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		raw, err := encodePhotoKeys([]string{"inspection/2026-08/a", "inspection/2026-08/b"})
		require.NoError(t, err)

		var keys []string
		require.NoError(t, decodePhotoKeys(raw, &keys))
		assert.Equal(t, []string{"inspection/2026-08/a", "inspection/2026-08/b"}, keys)
	})

	t.Run("nil encodes as empty list", func(t *testing.T) {
		raw, err := encodePhotoKeys(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", raw)
	})

	t.Run("empty column decodes as empty list", func(t *testing.T) {
		var keys []string
		require.NoError(t, decodePhotoKeys("", &keys))
		assert.Empty(t, keys)
		assert.NotNil(t, keys)
	})
}
