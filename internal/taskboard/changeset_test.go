package taskboard

import (
	"errors"
	"testing"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedMap(rows ...*domain.TaskAssignment) map[Key]*domain.TaskAssignment {
	m := make(map[Key]*domain.TaskAssignment, len(rows))
	for _, row := range rows {
		m[Key{TaskID: row.TaskID, ParadeDay: row.ParadeDay}] = row
	}
	return m
}

func TestCompileClearOfStoredRow(t *testing.T) {
	stored := storedMap(&domain.TaskAssignment{ID: 31, TaskID: 1, ParadeDay: 0, Payload: manualPayload(7)})

	o := NewOverlay()
	o.SetClear(1, 0)

	cs := Compile(o, stored)
	assert.Equal(t, []int64{31}, cs.ToDelete)
	assert.Empty(t, cs.ToInsert)
	assert.Empty(t, cs.ToUpdate)
}

func TestCompileClearWithoutStoredRowIsNoOp(t *testing.T) {
	o := NewOverlay()
	o.SetClear(1, 0)

	cs := Compile(o, storedMap())
	assert.True(t, cs.Empty())
}

func TestCompileReplaceWithoutStoredRowInserts(t *testing.T) {
	o := NewOverlay()
	require.NoError(t, o.SetReplace(1, 2, rosterPayload(2, domain.ShiftMorning)))

	cs := Compile(o, storedMap())
	require.Len(t, cs.ToInsert, 1)
	assert.Equal(t, int64(1), cs.ToInsert[0].TaskID)
	assert.Equal(t, int32(2), cs.ToInsert[0].ParadeDay)
	assert.Equal(t, domain.PayloadRosterLinked, cs.ToInsert[0].Payload.Kind)
	assert.Empty(t, cs.ToUpdate)
	assert.Empty(t, cs.ToDelete)
}

func TestCompileReplaceOverStoredRowUpdates(t *testing.T) {
	stored := storedMap(&domain.TaskAssignment{ID: 8, TaskID: 1, ParadeDay: 2, Payload: manualPayload(7)})

	o := NewOverlay()
	require.NoError(t, o.SetReplace(1, 2, manualPayload(9)))

	cs := Compile(o, stored)
	require.Len(t, cs.ToUpdate, 1)
	assert.Equal(t, int64(8), cs.ToUpdate[0].ID)
	assert.Equal(t, int64(9), *cs.ToUpdate[0].Payload.PersonID)
	assert.Empty(t, cs.ToInsert)
	assert.Empty(t, cs.ToDelete)
}

func TestCompileUntouchedRowsAreLeftAlone(t *testing.T) {
	stored := storedMap(
		&domain.TaskAssignment{ID: 1, TaskID: 1, ParadeDay: 0, Payload: manualPayload(7)},
		&domain.TaskAssignment{ID: 2, TaskID: 2, ParadeDay: 0, Payload: manualPayload(8)},
	)

	o := NewOverlay()
	o.SetClear(1, 0)

	cs := Compile(o, stored)
	assert.Equal(t, []int64{1}, cs.ToDelete)
	assert.Empty(t, cs.ToUpdate)
	assert.Empty(t, cs.ToInsert)
}

func TestCompileListsAreDisjoint(t *testing.T) {
	stored := storedMap(
		&domain.TaskAssignment{ID: 1, TaskID: 1, ParadeDay: 0, Payload: manualPayload(7)},
		&domain.TaskAssignment{ID: 2, TaskID: 2, ParadeDay: 1, Payload: manualPayload(8)},
	)

	o := NewOverlay()
	o.SetClear(1, 0)
	require.NoError(t, o.SetReplace(2, 1, manualPayload(9)))
	require.NoError(t, o.SetReplace(3, 2, manualPayload(1)))
	o.SetClear(4, 3) // nothing stored, contributes nowhere

	cs := Compile(o, stored)
	assert.Len(t, cs.ToDelete, 1)
	assert.Len(t, cs.ToUpdate, 1)
	assert.Len(t, cs.ToInsert, 1)

	// One decision branch per key: ids and keys never overlap across lists.
	assert.Equal(t, []int64{1}, cs.ToDelete)
	assert.Equal(t, int64(2), cs.ToUpdate[0].ID)
	assert.Equal(t, int64(3), cs.ToInsert[0].TaskID)
}

type fakeStore struct {
	nextID  int64
	rows    map[int64]*domain.TaskAssignment
	calls   []string
	failOps map[string]error
}

func newFakeStore(rows ...*domain.TaskAssignment) *fakeStore {
	st := &fakeStore{
		nextID:  100,
		rows:    make(map[int64]*domain.TaskAssignment),
		failOps: make(map[string]error),
	}
	for _, row := range rows {
		st.rows[row.ID] = row
	}
	return st
}

func (st *fakeStore) BulkInsertAssignments(siteID int64, inserts []Insert) error {
	st.calls = append(st.calls, "insert")
	if err := st.failOps["insert"]; err != nil {
		return err
	}
	for _, in := range inserts {
		st.nextID++
		st.rows[st.nextID] = &domain.TaskAssignment{
			ID:        st.nextID,
			SiteID:    siteID,
			TaskID:    in.TaskID,
			ParadeDay: in.ParadeDay,
			Payload:   in.Payload,
		}
	}
	return nil
}

func (st *fakeStore) UpdateAssignmentPayload(id int64, payload domain.AssignmentPayload) error {
	st.calls = append(st.calls, "update")
	if err := st.failOps["update"]; err != nil {
		return err
	}
	row, ok := st.rows[id]
	if !ok {
		return errors.New("row not found")
	}
	row.Payload = payload
	return nil
}

func (st *fakeStore) DeleteAssignmentsByIDs(ids []int64) error {
	st.calls = append(st.calls, "delete")
	if err := st.failOps["delete"]; err != nil {
		return err
	}
	for _, id := range ids {
		delete(st.rows, id)
	}
	return nil
}

func (st *fakeStore) all() []*domain.TaskAssignment {
	rows := make([]*domain.TaskAssignment, 0, len(st.rows))
	for _, row := range st.rows {
		rows = append(rows, row)
	}
	return rows
}

func TestApplyFixedOrder(t *testing.T) {
	st := newFakeStore(
		&domain.TaskAssignment{ID: 1, TaskID: 1, ParadeDay: 0, Payload: manualPayload(7)},
		&domain.TaskAssignment{ID: 2, TaskID: 2, ParadeDay: 1, Payload: manualPayload(8)},
	)

	cs := Changeset{
		ToInsert: []Insert{{TaskID: 3, ParadeDay: 2, Payload: manualPayload(1)}},
		ToUpdate: []Update{{ID: 2, Payload: manualPayload(9)}},
		ToDelete: []int64{1},
	}

	res := Apply(st, 1, cs)
	assert.False(t, res.Failed())
	assert.NoError(t, res.Err())
	assert.Equal(t, []string{"delete", "update", "insert"}, st.calls)
}

func TestApplyBestEffortOnPartialFailure(t *testing.T) {
	st := newFakeStore(
		&domain.TaskAssignment{ID: 1, TaskID: 1, ParadeDay: 0, Payload: manualPayload(7)},
	)
	st.failOps["delete"] = errors.New("storage unavailable")

	cs := Changeset{
		ToInsert: []Insert{{TaskID: 3, ParadeDay: 2, Payload: manualPayload(1)}},
		ToUpdate: []Update{{ID: 404, Payload: manualPayload(9)}},
		ToDelete: []int64{1},
	}

	res := Apply(st, 1, cs)

	// Every operation was still attempted.
	assert.Equal(t, []string{"delete", "update", "insert"}, st.calls)

	assert.True(t, res.Failed())
	assert.Error(t, res.DeleteErr)
	assert.Error(t, res.UpdateErrs[404])
	assert.NoError(t, res.InsertErr)

	err := res.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete")
	assert.Contains(t, err.Error(), "update row 404")

	// The insert landed despite the other failures.
	found := false
	for _, row := range st.all() {
		if row.TaskID == 3 && row.ParadeDay == 2 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestApplyEmptyChangesetTouchesNothing(t *testing.T) {
	st := newFakeStore()

	res := Apply(st, 1, Changeset{})
	assert.False(t, res.Failed())
	assert.Empty(t, st.calls)
}

func TestSaveRoundTrip(t *testing.T) {
	st := newFakeStore(
		&domain.TaskAssignment{ID: 1, SiteID: 1, TaskID: 1, ParadeDay: 0, Payload: manualPayload(7)},
		&domain.TaskAssignment{ID: 2, SiteID: 1, TaskID: 2, ParadeDay: 1, Payload: manualPayload(8)},
	)
	roster := NewRoster(nil, nil, testPeople())
	b := NewBoard(st.all(), roster)

	// Edit: clear task 1, repoint task 2, add task 3.
	b.Overlay().SetClear(1, 0)
	require.NoError(t, b.Overlay().SetReplace(2, 1, rosterPayload(1, domain.ShiftAfternoon)))
	require.NoError(t, b.Overlay().SetReplace(3, 2, manualPayload(3)))

	cs := Compile(b.Overlay(), b.Stored())
	res := Apply(st, 1, cs)
	require.False(t, res.Failed())

	// Reload from the store and check every edited cell converged.
	b.Reload(st.all(), nil)

	assert.Nil(t, b.EffectiveAssignment(1, 0))

	a := b.EffectiveAssignment(2, 1)
	require.NotNil(t, a)
	assert.Equal(t, int64(2), a.ID)
	assert.Equal(t, domain.PayloadRosterLinked, a.Payload.Kind)
	assert.Equal(t, domain.ShiftAfternoon, a.Payload.Slot.Shift)

	a = b.EffectiveAssignment(3, 2)
	require.NotNil(t, a)
	assert.NotZero(t, a.ID)
	assert.Equal(t, int64(3), *a.Payload.PersonID)

	assert.False(t, b.Overlay().HasChanges())
}
