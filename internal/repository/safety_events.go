package repository

import (
	"context"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (r *Repository) GetSafetyEventsBySite(siteID int64) ([]*domain.SafetyEvent, error) {
	query := `
		SELECT id, reporter_id, occurred_at, severity, description, photo_keys, created_at, version
		FROM safety_events WHERE site_id = $1
		ORDER BY occurred_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.SafetyEvent, 0)
	for rows.Next() {
		ev := &domain.SafetyEvent{SiteID: siteID}
		var rawKeys string
		dst := []any{&ev.ID, &ev.ReporterID, &ev.OccurredAt, &ev.Severity, &ev.Description, &rawKeys, &ev.CreatedAt, &ev.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := decodePhotoKeys(rawKeys, &ev.PhotoKeys); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) CreateSafetyEvent(ev *domain.SafetyEvent) error {
	rawKeys, err := encodePhotoKeys(ev.PhotoKeys)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO safety_events (site_id, reporter_id, occurred_at, severity, description, photo_keys)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{ev.SiteID, ev.ReporterID, ev.OccurredAt, ev.Severity, ev.Description, rawKeys}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&ev.ID, &ev.CreatedAt, &ev.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSafetyEvent(id int64) error {
	query := `
		DELETE FROM safety_events WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
