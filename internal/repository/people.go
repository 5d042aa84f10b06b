package repository

import (
	"context"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (r *Repository) GetPersonByID(id int64) (*domain.Person, error) {
	query := `
		SELECT site_id, username, password_hash, full_name, email, role, is_active, created_at, version
		FROM people WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	person := &domain.Person{
		ID: id,
	}

	dst := []any{&person.SiteID, &person.Username, &person.PasswordHash, &person.FullName, &person.Email, &person.Role, &person.IsActive, &person.CreatedAt, &person.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return person, nil
}

func (r *Repository) GetPersonByUsername(username string) (*domain.Person, error) {
	query := `
		SELECT id, site_id, password_hash, full_name, email, role, is_active, created_at, version
		FROM people WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	person := &domain.Person{
		Username: username,
	}

	dst := []any{&person.ID, &person.SiteID, &person.PasswordHash, &person.FullName, &person.Email, &person.Role, &person.IsActive, &person.CreatedAt, &person.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return person, nil
}

func (r *Repository) GetPeopleBySite(siteID int64) ([]*domain.Person, error) {
	query := `
		SELECT id, username, password_hash, full_name, email, role, is_active, created_at, version
		FROM people WHERE site_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]*domain.Person, 0)
	for rows.Next() {
		person := &domain.Person{SiteID: siteID}
		dst := []any{&person.ID, &person.Username, &person.PasswordHash, &person.FullName, &person.Email, &person.Role, &person.IsActive, &person.CreatedAt, &person.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return people, nil
}

func (r *Repository) CreatePerson(person *domain.Person) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO people (site_id, username, password_hash, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at, version
	`

	args := []any{person.SiteID, person.Username, person.PasswordHash, person.FullName, person.Email, person.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&person.ID, &person.IsActive, &person.CreatedAt, &person.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdatePerson(person *domain.Person) error {
	query := `
		UPDATE people
		SET
			password_hash = $1,
			email = $2,
			role = $3,
			is_active = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING username, full_name, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{person.PasswordHash, person.Email, person.Role, person.IsActive, person.ID, person.Version}
	dst := []any{&person.Username, &person.FullName, &person.CreatedAt, &person.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePerson(id int64) error {
	query := `
		DELETE FROM people WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
