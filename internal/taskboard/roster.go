package taskboard

import (
	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

// Roster is a read-only projection over two weekly duty snapshots, the
// current week and the previous one. It is rebuilt from scratch on every
// full reload and never written through.
type Roster struct {
	current  map[int32]*domain.DutyRoster
	previous map[int32]*domain.DutyRoster
	people   map[int64]*domain.Person
}

func NewRoster(current, previous []*domain.DutyRoster, people []*domain.Person) *Roster {
	r := &Roster{
		current:  make(map[int32]*domain.DutyRoster, len(current)),
		previous: make(map[int32]*domain.DutyRoster, len(previous)),
		people:   make(map[int64]*domain.Person, len(people)),
	}
	for _, day := range current {
		r.current[day.DayOfWeek] = day
	}
	for _, day := range previous {
		r.previous[day.DayOfWeek] = day
	}
	for _, p := range people {
		r.people[p.ID] = p
	}
	return r
}

// ResolvePerson returns whoever holds the slot, or nil. Missing day entries,
// empty shift columns and unknown person ids all resolve to nil; "nobody on
// duty" is a displayable state, never an error.
func (r *Roster) ResolvePerson(slot domain.RosterSlot) *domain.Person {
	days := r.current
	if slot.PrevWeek {
		days = r.previous
	}

	day, ok := days[slot.DayOfWeek]
	if !ok {
		return nil
	}

	var personID *int64
	switch slot.Shift {
	case domain.ShiftMorning:
		personID = day.MorningID
	case domain.ShiftAfternoon:
		personID = day.AfternoonID
	case domain.ShiftEvening:
		personID = day.EveningID
	default:
		return nil
	}

	if personID == nil {
		return nil
	}

	return r.people[*personID]
}

// Person looks a person up by id directly, bypassing the roster grid.
func (r *Roster) Person(id int64) *domain.Person {
	return r.people[id]
}
