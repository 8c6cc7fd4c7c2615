package repository

import (
	"context"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (r *Repository) GetAllPatients() ([]*domain.Patient, error) {
	query := `
		SELECT id, full_name, email, age, blood_group, reason, amount_paid, visit_date, created_at, version
		FROM patients ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		p := &domain.Patient{}
		dst := []any{&p.ID, &p.FullName, &p.Email, &p.Age, &p.BloodGroup, &p.Reason, &p.AmountPaid, &p.VisitDate, &p.CreatedAt, &p.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return patients, nil
}

func (r *Repository) GetPatientByID(id int64) (*domain.Patient, error) {
	query := `
		SELECT full_name, email, age, blood_group, reason, amount_paid, visit_date, created_at, version
		FROM patients WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	p := &domain.Patient{
		ID: id,
	}

	dst := []any{&p.FullName, &p.Email, &p.Age, &p.BloodGroup, &p.Reason, &p.AmountPaid, &p.VisitDate, &p.CreatedAt, &p.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) GetPatientByEmail(email string) (*domain.Patient, error) {
	query := `
		SELECT id, full_name, age, blood_group, reason, amount_paid, visit_date, created_at, version
		FROM patients WHERE email = $1
		ORDER BY id DESC LIMIT 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	p := &domain.Patient{
		Email: email,
	}

	dst := []any{&p.ID, &p.FullName, &p.Age, &p.BloodGroup, &p.Reason, &p.AmountPaid, &p.VisitDate, &p.CreatedAt, &p.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) CreatePatient(p *domain.Patient) error {
	query := `
		INSERT INTO patients (full_name, email, age, blood_group, reason, amount_paid, visit_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{p.FullName, p.Email, p.Age, p.BloodGroup, p.Reason, p.AmountPaid, p.VisitDate}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdatePatient(p *domain.Patient) error {
	query := `
		UPDATE patients
		SET
			full_name = $1,
			email = $2,
			age = $3,
			blood_group = $4,
			reason = $5,
			amount_paid = $6,
			visit_date = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{p.FullName, p.Email, p.Age, p.BloodGroup, p.Reason, p.AmountPaid, p.VisitDate, p.ID, p.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePatient(id int64) error {
	query := `
		DELETE FROM patients WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
