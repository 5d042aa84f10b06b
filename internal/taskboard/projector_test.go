package taskboard

import (
	"testing"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard() *Board {
	stored := []*domain.TaskAssignment{
		{ID: 10, SiteID: 1, TaskID: 1, ParadeDay: 0, Payload: manualPayload(7)},
		{ID: 11, SiteID: 1, TaskID: 2, ParadeDay: 2, Payload: rosterPayload(2, domain.ShiftMorning)},
	}
	roster := NewRoster(
		[]*domain.DutyRoster{{DayOfWeek: 2, MorningID: i64(1)}},
		[]*domain.DutyRoster{{DayOfWeek: 6, EveningID: i64(2)}},
		testPeople(),
	)
	return NewBoard(stored, roster)
}

func TestEffectiveAssignmentFallsThroughToStore(t *testing.T) {
	b := testBoard()

	a := b.EffectiveAssignment(1, 0)
	require.NotNil(t, a)
	assert.Equal(t, int64(10), a.ID)

	assert.Nil(t, b.EffectiveAssignment(1, 4))
}

func TestEffectiveAssignmentOverlayPrecedence(t *testing.T) {
	b := testBoard()

	// A pending clear hides the stored row entirely.
	b.Overlay().SetClear(1, 0)
	assert.Nil(t, b.EffectiveAssignment(1, 0))

	// A pending replace wins over the stored payload but keeps its identity.
	require.NoError(t, b.Overlay().SetReplace(2, 2, manualPayload(3)))
	a := b.EffectiveAssignment(2, 2)
	require.NotNil(t, a)
	assert.Equal(t, int64(11), a.ID)
	assert.Equal(t, domain.PayloadManuallyPinned, a.Payload.Kind)
	assert.Equal(t, int64(3), *a.Payload.PersonID)

	// A replace on a never-stored cell has no identity yet.
	require.NoError(t, b.Overlay().SetReplace(5, 4, manualPayload(1)))
	a = b.EffectiveAssignment(5, 4)
	require.NotNil(t, a)
	assert.Zero(t, a.ID)
}

func TestDiscardAllIsIdempotent(t *testing.T) {
	b := testBoard()

	b.Overlay().SetClear(1, 0)
	require.NoError(t, b.Overlay().SetReplace(2, 2, manualPayload(3)))
	require.NoError(t, b.Overlay().SetReplace(9, 1, manualPayload(1)))

	b.Overlay().DiscardAll()

	// Every cell reads exactly as the stored snapshot again.
	a := b.EffectiveAssignment(1, 0)
	require.NotNil(t, a)
	assert.Equal(t, int64(10), a.ID)
	assert.Equal(t, int64(7), *a.Payload.PersonID)

	a = b.EffectiveAssignment(2, 2)
	require.NotNil(t, a)
	assert.Equal(t, domain.PayloadRosterLinked, a.Payload.Kind)

	assert.Nil(t, b.EffectiveAssignment(9, 1))
	assert.False(t, b.Overlay().HasChanges())
}

func TestDescribe(t *testing.T) {
	b := testBoard()

	t.Run("no assignment", func(t *testing.T) {
		info := b.Describe(nil)
		assert.False(t, info.Assigned)
		assert.Nil(t, info.Primary)
	})

	t.Run("manual pin", func(t *testing.T) {
		info := b.Describe(&domain.TaskAssignment{Payload: manualPayload(1)})
		assert.True(t, info.Assigned)
		assert.True(t, info.Pinned)
		assert.Equal(t, "pinned", info.SlotLabel)
		require.NotNil(t, info.Primary)
		assert.Equal(t, "Noam Peretz", info.Primary.FullName)
	})

	t.Run("roster linked with person on duty", func(t *testing.T) {
		info := b.Describe(&domain.TaskAssignment{Payload: rosterPayload(2, domain.ShiftMorning)})
		assert.True(t, info.Assigned)
		assert.False(t, info.Pinned)
		assert.Equal(t, "Tue morning", info.SlotLabel)
		require.NotNil(t, info.Primary)
		assert.Equal(t, int64(1), info.Primary.ID)
	})

	t.Run("roster linked with nobody on duty is still assigned", func(t *testing.T) {
		info := b.Describe(&domain.TaskAssignment{Payload: rosterPayload(3, domain.ShiftEvening)})
		assert.True(t, info.Assigned)
		assert.Nil(t, info.Primary)
		assert.Equal(t, "Wed evening", info.SlotLabel)
	})

	t.Run("previous week slot", func(t *testing.T) {
		payload := domain.AssignmentPayload{
			Kind: domain.PayloadRosterLinked,
			Slot: &domain.RosterSlot{DayOfWeek: 6, Shift: domain.ShiftEvening, PrevWeek: true},
		}
		info := b.Describe(&domain.TaskAssignment{Payload: payload})
		assert.Equal(t, "prev. Sat evening", info.SlotLabel)
		require.NotNil(t, info.Primary)
		assert.Equal(t, int64(2), info.Primary.ID)
	})

	t.Run("additional person resolved by direct lookup", func(t *testing.T) {
		payload := rosterPayload(2, domain.ShiftMorning)
		payload.AdditionalPersonID = i64(3)
		info := b.Describe(&domain.TaskAssignment{Payload: payload})
		require.NotNil(t, info.Additional)
		assert.Equal(t, "Yoav Azulay", info.Additional.FullName)
	})
}

func TestReloadClearsOverlay(t *testing.T) {
	b := testBoard()
	require.NoError(t, b.Overlay().SetReplace(1, 0, manualPayload(2)))

	b.Reload([]*domain.TaskAssignment{
		{ID: 20, TaskID: 3, ParadeDay: 1, Payload: manualPayload(1)},
	}, nil)

	assert.False(t, b.Overlay().HasChanges())
	assert.Nil(t, b.EffectiveAssignment(1, 0))

	a := b.EffectiveAssignment(3, 1)
	require.NotNil(t, a)
	assert.Equal(t, int64(20), a.ID)
}
