package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

// photo_keys is stored as a JSON text column; the slices are small and only
// ever read back whole.

func encodePhotoKeys(keys []string) (string, error) {
	if keys == nil {
		keys = []string{}
	}
	raw, err := json.Marshal(keys)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodePhotoKeys(raw string, dst *[]string) error {
	if raw == "" {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func (r *Repository) GetInspectionsBySite(siteID int64) ([]*domain.Inspection, error) {
	query := `
		SELECT id, inspector_id, held_at, score, notes, photo_keys, created_at, version
		FROM inspections WHERE site_id = $1
		ORDER BY held_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inspections := make([]*domain.Inspection, 0)
	for rows.Next() {
		insp := &domain.Inspection{SiteID: siteID}
		var rawKeys string
		dst := []any{&insp.ID, &insp.InspectorID, &insp.HeldAt, &insp.Score, &insp.Notes, &rawKeys, &insp.CreatedAt, &insp.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := decodePhotoKeys(rawKeys, &insp.PhotoKeys); err != nil {
			return nil, err
		}
		inspections = append(inspections, insp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inspections, nil
}

func (r *Repository) CreateInspection(insp *domain.Inspection) error {
	rawKeys, err := encodePhotoKeys(insp.PhotoKeys)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO inspections (site_id, inspector_id, held_at, score, notes, photo_keys)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{insp.SiteID, insp.InspectorID, insp.HeldAt, insp.Score, insp.Notes, rawKeys}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&insp.ID, &insp.CreatedAt, &insp.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateInspection(insp *domain.Inspection) error {
	rawKeys, err := encodePhotoKeys(insp.PhotoKeys)
	if err != nil {
		return err
	}

	query := `
		UPDATE inspections
		SET
			held_at = $1,
			score = $2,
			notes = $3,
			photo_keys = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{insp.HeldAt, insp.Score, insp.Notes, rawKeys, insp.ID, insp.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&insp.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteInspection(id int64) error {
	query := `
		DELETE FROM inspections WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
