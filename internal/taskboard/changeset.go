package taskboard

import (
	"errors"
	"fmt"
	"sort"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

type Insert struct {
	TaskID    int64
	ParadeDay int32
	Payload   domain.AssignmentPayload
}

type Update struct {
	ID      int64
	Payload domain.AssignmentPayload
}

// Changeset is the work order of one save: the three lists are built from
// disjoint decision branches, so no key ever appears in more than one. It is
// derived state, never persisted.
type Changeset struct {
	ToInsert []Insert
	ToUpdate []Update
	ToDelete []int64
}

func (c Changeset) Empty() bool {
	return len(c.ToInsert) == 0 && len(c.ToUpdate) == 0 && len(c.ToDelete) == 0
}

// Compile diffs the overlay against the stored snapshot. Keys absent from
// the overlay contribute nothing; unedited rows are never deleted. A clear
// without a stored row is a no-op.
func Compile(overlay *Overlay, stored map[Key]*domain.TaskAssignment) Changeset {
	keys := make([]Key, 0, len(overlay.edits))
	for k := range overlay.edits {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TaskID != keys[j].TaskID {
			return keys[i].TaskID < keys[j].TaskID
		}
		return keys[i].ParadeDay < keys[j].ParadeDay
	})

	cs := Changeset{}
	for _, k := range keys {
		edit := overlay.edits[k]
		row, exists := stored[k]

		switch {
		case edit.kind == editClear && exists:
			cs.ToDelete = append(cs.ToDelete, row.ID)
		case edit.kind == editClear:
			// nothing stored, nothing to delete
		case exists:
			cs.ToUpdate = append(cs.ToUpdate, Update{ID: row.ID, Payload: edit.payload})
		default:
			cs.ToInsert = append(cs.ToInsert, Insert{
				TaskID:    k.TaskID,
				ParadeDay: k.ParadeDay,
				Payload:   edit.payload,
			})
		}
	}

	return cs
}

// Store is the row-storage collaborator the synchronizer writes through.
type Store interface {
	BulkInsertAssignments(siteID int64, inserts []Insert) error
	UpdateAssignmentPayload(id int64, payload domain.AssignmentPayload) error
	DeleteAssignmentsByIDs(ids []int64) error
}

// ApplyResult carries the per-operation failure set of one best-effort save.
// The backing store has no multi-row transaction, so a partial failure is a
// real outcome the caller must surface; it is not folded into one boolean.
type ApplyResult struct {
	DeleteErr  error
	UpdateErrs map[int64]error
	InsertErr  error
}

func (r ApplyResult) Failed() bool {
	return r.DeleteErr != nil || r.InsertErr != nil || len(r.UpdateErrs) > 0
}

func (r ApplyResult) Err() error {
	var errs []error
	if r.DeleteErr != nil {
		errs = append(errs, fmt.Errorf("delete: %w", r.DeleteErr))
	}
	ids := make([]int64, 0, len(r.UpdateErrs))
	for id := range r.UpdateErrs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		errs = append(errs, fmt.Errorf("update row %d: %w", id, r.UpdateErrs[id]))
	}
	if r.InsertErr != nil {
		errs = append(errs, fmt.Errorf("insert: %w", r.InsertErr))
	}
	return errors.Join(errs...)
}

// Apply issues the changeset in fixed order: deletes, then per-row updates,
// then the bulk insert. Each operation is attempted regardless of earlier
// failures and there is no rollback; the caller must reload afterward so the
// view converges on whatever subset committed.
func Apply(st Store, siteID int64, cs Changeset) ApplyResult {
	res := ApplyResult{}

	if len(cs.ToDelete) > 0 {
		res.DeleteErr = st.DeleteAssignmentsByIDs(cs.ToDelete)
	}

	for _, u := range cs.ToUpdate {
		if err := st.UpdateAssignmentPayload(u.ID, u.Payload); err != nil {
			if res.UpdateErrs == nil {
				res.UpdateErrs = make(map[int64]error)
			}
			res.UpdateErrs[u.ID] = err
		}
	}

	if len(cs.ToInsert) > 0 {
		res.InsertErr = st.BulkInsertAssignments(siteID, cs.ToInsert)
	}

	return res
}
