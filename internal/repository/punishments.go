package repository

import (
	"context"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (r *Repository) GetPunishmentsBySite(siteID int64) ([]*domain.Punishment, error) {
	query := `
		SELECT id, person_id, issuer_id, reason, sanction, issued_at, is_revoked, created_at, version
		FROM punishments WHERE site_id = $1
		ORDER BY issued_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	punishments := make([]*domain.Punishment, 0)
	for rows.Next() {
		p := &domain.Punishment{SiteID: siteID}
		dst := []any{&p.ID, &p.PersonID, &p.IssuerID, &p.Reason, &p.Sanction, &p.IssuedAt, &p.IsRevoked, &p.CreatedAt, &p.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		punishments = append(punishments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return punishments, nil
}

func (r *Repository) CreatePunishment(p *domain.Punishment) error {
	query := `
		INSERT INTO punishments (site_id, person_id, issuer_id, reason, sanction, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_revoked, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{p.SiteID, p.PersonID, p.IssuerID, p.Reason, p.Sanction, p.IssuedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.IsRevoked, &p.CreatedAt, &p.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) RevokePunishment(id int64) error {
	query := `
		UPDATE punishments SET is_revoked = TRUE, version = version + 1 WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
