package repository

import (
	"context"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (r *Repository) GetTasksBySite(siteID int64) ([]*domain.ParadeTask, error) {
	query := `
		SELECT id, name, description, is_active, created_at, version
		FROM parade_tasks WHERE site_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.ParadeTask, 0)
	for rows.Next() {
		task := &domain.ParadeTask{SiteID: siteID}
		dst := []any{&task.ID, &task.Name, &task.Description, &task.IsActive, &task.CreatedAt, &task.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *Repository) GetTaskByID(id int64) (*domain.ParadeTask, error) {
	query := `
		SELECT site_id, name, description, is_active, created_at, version
		FROM parade_tasks WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	task := &domain.ParadeTask{
		ID: id,
	}

	dst := []any{&task.SiteID, &task.Name, &task.Description, &task.IsActive, &task.CreatedAt, &task.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *Repository) CreateTask(task *domain.ParadeTask) error {
	query := `
		INSERT INTO parade_tasks (site_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{task.SiteID, task.Name, task.Description}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.ID, &task.IsActive, &task.CreatedAt, &task.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateTask(task *domain.ParadeTask) error {
	query := `
		UPDATE parade_tasks
		SET
			name = $1,
			description = $2,
			is_active = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{task.Name, task.Description, task.IsActive, task.ID, task.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTask(id int64) error {
	query := `
		DELETE FROM parade_tasks WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetParadeDaysBySite(siteID int64) ([]*domain.ParadeDayConfig, error) {
	query := `
		SELECT id, day_of_week, is_active
		FROM parade_day_configs WHERE site_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]*domain.ParadeDayConfig, 0)
	for rows.Next() {
		day := &domain.ParadeDayConfig{SiteID: siteID}
		if err := rows.Scan(&day.ID, &day.DayOfWeek, &day.IsActive); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func (r *Repository) SetParadeDay(day *domain.ParadeDayConfig) error {
	query := `
		INSERT INTO parade_day_configs (site_id, day_of_week, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (site_id, day_of_week) DO UPDATE
		SET is_active = EXCLUDED.is_active
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, day.SiteID, day.DayOfWeek, day.IsActive).Scan(&day.ID); err != nil {
		return err
	}

	return nil
}
