package repository

import (
	"context"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (r *Repository) GetRosterWeek(siteID int64, weekStart time.Time) ([]*domain.DutyRoster, error) {
	query := `
		SELECT id, day_of_week, morning_id, afternoon_id, evening_id, created_at, version
		FROM duty_rosters
		WHERE site_id = $1 AND week_start = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]*domain.DutyRoster, 0)
	for rows.Next() {
		day := &domain.DutyRoster{
			SiteID:    siteID,
			WeekStart: weekStart,
		}
		dst := []any{&day.ID, &day.DayOfWeek, &day.MorningID, &day.AfternoonID, &day.EveningID, &day.CreatedAt, &day.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func (r *Repository) UpsertRosterDay(day *domain.DutyRoster) error {
	// One row per (site, week, day); writing the same day again replaces the
	// shift holders.
	query := `
		INSERT INTO duty_rosters (site_id, week_start, day_of_week, morning_id, afternoon_id, evening_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (site_id, week_start, day_of_week) DO UPDATE
		SET
			morning_id = EXCLUDED.morning_id,
			afternoon_id = EXCLUDED.afternoon_id,
			evening_id = EXCLUDED.evening_id,
			version = duty_rosters.version + 1
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{day.SiteID, day.WeekStart, day.DayOfWeek, day.MorningID, day.AfternoonID, day.EveningID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&day.ID, &day.CreatedAt, &day.Version); err != nil {
		return err
	}

	return nil
}
