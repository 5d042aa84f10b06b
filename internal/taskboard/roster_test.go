package taskboard

import (
	"testing"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPeople() []*domain.Person {
	return []*domain.Person{
		{ID: 1, FullName: "Noam Peretz"},
		{ID: 2, FullName: "Dana Mizrahi"},
		{ID: 3, FullName: "Yoav Azulay"},
	}
}

func TestRosterResolvePerson(t *testing.T) {
	current := []*domain.DutyRoster{
		{DayOfWeek: 2, MorningID: i64(1), AfternoonID: i64(2)},
		{DayOfWeek: 6, EveningID: i64(3)},
	}
	previous := []*domain.DutyRoster{
		{DayOfWeek: 6, EveningID: i64(1)},
	}
	roster := NewRoster(current, previous, testPeople())

	t.Run("resolves by shift column", func(t *testing.T) {
		p := roster.ResolvePerson(domain.RosterSlot{DayOfWeek: 2, Shift: domain.ShiftMorning})
		require.NotNil(t, p)
		assert.Equal(t, int64(1), p.ID)

		p = roster.ResolvePerson(domain.RosterSlot{DayOfWeek: 2, Shift: domain.ShiftAfternoon})
		require.NotNil(t, p)
		assert.Equal(t, int64(2), p.ID)
	})

	t.Run("missing day entry resolves to nobody", func(t *testing.T) {
		assert.Nil(t, roster.ResolvePerson(domain.RosterSlot{DayOfWeek: 3, Shift: domain.ShiftEvening}))
	})

	t.Run("empty shift column resolves to nobody", func(t *testing.T) {
		assert.Nil(t, roster.ResolvePerson(domain.RosterSlot{DayOfWeek: 2, Shift: domain.ShiftEvening}))
	})

	t.Run("unknown shift resolves to nobody", func(t *testing.T) {
		assert.Nil(t, roster.ResolvePerson(domain.RosterSlot{DayOfWeek: 2, Shift: "brunch"}))
	})

	t.Run("previous week saturday reads previous snapshot only", func(t *testing.T) {
		// Current week also has a Saturday evening holder (person 3); the
		// prev-week slot must never see it.
		p := roster.ResolvePerson(domain.RosterSlot{DayOfWeek: 6, Shift: domain.ShiftEvening, PrevWeek: true})
		require.NotNil(t, p)
		assert.Equal(t, int64(1), p.ID)

		p = roster.ResolvePerson(domain.RosterSlot{DayOfWeek: 6, Shift: domain.ShiftEvening})
		require.NotNil(t, p)
		assert.Equal(t, int64(3), p.ID)
	})
}

func TestRosterUnresolvablePerson(t *testing.T) {
	current := []*domain.DutyRoster{
		{DayOfWeek: 0, MorningID: i64(99)}, // not in the person list
	}
	roster := NewRoster(current, nil, testPeople())

	assert.Nil(t, roster.ResolvePerson(domain.RosterSlot{DayOfWeek: 0, Shift: domain.ShiftMorning}))
}

func TestRosterPerson(t *testing.T) {
	roster := NewRoster(nil, nil, testPeople())

	p := roster.Person(2)
	require.NotNil(t, p)
	assert.Equal(t, "Dana Mizrahi", p.FullName)

	assert.Nil(t, roster.Person(404))
}
