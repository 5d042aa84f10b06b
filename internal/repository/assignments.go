package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/outpost-ops/taskboard/backend/internal/taskboard"
)

// The assignment table still carries the legacy shift_tag text column; the
// taskboard codec translates it at this boundary and nothing above the
// repository sees the string form. For manually pinned rows manual_person_id
// duplicates the person in the tag, for roster-linked rows it holds the
// additional person.

func tagColumns(payload domain.AssignmentPayload) (string, *int64, error) {
	tag, err := taskboard.EncodeShiftTag(payload)
	if err != nil {
		return "", nil, err
	}

	switch payload.Kind {
	case domain.PayloadManuallyPinned:
		return tag, payload.PersonID, nil
	default:
		return tag, payload.AdditionalPersonID, nil
	}
}

func (r *Repository) GetAssignmentsBySite(siteID int64) ([]*domain.TaskAssignment, error) {
	query := `
		SELECT id, task_id, parade_day, shift_tag, manual_person_id, deadline_time, created_at
		FROM task_assignments WHERE site_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.TaskAssignment, 0)
	for rows.Next() {
		a := &domain.TaskAssignment{SiteID: siteID}
		var (
			tag            string
			manualPersonID *int64
			deadline       *string
		)
		dst := []any{&a.ID, &a.TaskID, &a.ParadeDay, &tag, &manualPersonID, &deadline, &a.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		payload, err := taskboard.DecodeShiftTag(tag, manualPersonID)
		if err != nil {
			return nil, fmt.Errorf("assignment %d: %w", a.ID, err)
		}
		payload.Deadline = deadline
		a.Payload = payload

		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// BulkInsertAssignments writes all inserts of one changeset in a single
// multi-row statement.
func (r *Repository) BulkInsertAssignments(siteID int64, inserts []taskboard.Insert) error {
	if len(inserts) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(inserts))
	args := make([]any, 0, len(inserts)*6)
	for i, in := range inserts {
		tag, manualPersonID, err := tagColumns(in.Payload)
		if err != nil {
			return err
		}

		base := i * 6
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, siteID, in.TaskID, in.ParadeDay, tag, manualPersonID, in.Payload.Deadline)
	}

	query := `
		INSERT INTO task_assignments (site_id, task_id, parade_day, shift_tag, manual_person_id, deadline_time)
		VALUES ` + strings.Join(placeholders, ", ")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateAssignmentPayload(id int64, payload domain.AssignmentPayload) error {
	tag, manualPersonID, err := tagColumns(payload)
	if err != nil {
		return err
	}

	query := `
		UPDATE task_assignments
		SET
			shift_tag = $1,
			manual_person_id = $2,
			deadline_time = $3
		WHERE id = $4
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, tag, manualPersonID, payload.Deadline, id); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAssignmentsByIDs(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, id)
	}

	query := `
		DELETE FROM task_assignments WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}
