package repository

import (
	"context"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (r *Repository) GetAllSpecialties() ([]*domain.Specialty, error) {
	query := `
		SELECT id, name, version FROM specialties ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	specialties := make([]*domain.Specialty, 0)
	for rows.Next() {
		s := &domain.Specialty{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Version); err != nil {
			return nil, err
		}
		specialties = append(specialties, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return specialties, nil
}

func (r *Repository) GetSpecialtyByID(id int64) (*domain.Specialty, error) {
	query := `
		SELECT name, version FROM specialties WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	s := &domain.Specialty{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&s.Name, &s.Version); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *Repository) CreateSpecialty(s *domain.Specialty) error {
	query := `
		INSERT INTO specialties (name)
		VALUES ($1)
		RETURNING id, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, s.Name).Scan(&s.ID, &s.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateSpecialty(s *domain.Specialty) error {
	query := `
		UPDATE specialties
		SET name = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, s.Name, s.ID, s.Version).Scan(&s.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSpecialty(id int64) error {
	query := `
		DELETE FROM specialties WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
