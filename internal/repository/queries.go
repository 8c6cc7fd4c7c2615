package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (r *Repository) CreatePatientQuery(q *domain.PatientQuery) error {
	query := `
		INSERT INTO patient_queries (patient_email, doctor_id, text, audience, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{q.PatientEmail, q.DoctorID, q.Text, q.Audience, q.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&q.ID, &q.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPatientQueryByID(id int64) (*domain.PatientQuery, error) {
	query := `
		SELECT q.patient_email, q.doctor_id, d.full_name, q.text, q.audience, q.status, q.created_at
		FROM patient_queries q
		JOIN doctors d ON q.doctor_id = d.id
		WHERE q.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	q := &domain.PatientQuery{
		ID: id,
	}

	dst := []any{&q.PatientEmail, &q.DoctorID, &q.DoctorName, &q.Text, &q.Audience, &q.Status, &q.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return q, nil
}

// GetPatientQueriesForDoctor returns queries a doctor is allowed to see:
// anything addressed to them, regardless of audience.
func (r *Repository) GetPatientQueriesForDoctor(doctorID int64) ([]*domain.PatientQuery, error) {
	query := `
		SELECT q.id, q.patient_email, q.doctor_id, d.full_name, q.text, q.audience, q.status, q.created_at
		FROM patient_queries q
		JOIN doctors d ON q.doctor_id = d.id
		WHERE q.doctor_id = $1
		ORDER BY q.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPatientQueries(rows)
}

// GetHospitalPatientQueries returns the subset administration can see:
// only those the patient escalated beyond the doctor.
func (r *Repository) GetHospitalPatientQueries() ([]*domain.PatientQuery, error) {
	query := `
		SELECT q.id, q.patient_email, q.doctor_id, d.full_name, q.text, q.audience, q.status, q.created_at
		FROM patient_queries q
		JOIN doctors d ON q.doctor_id = d.id
		WHERE q.audience = 'hospital_and_doctor'
		ORDER BY q.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPatientQueries(rows)
}

func (r *Repository) ResolvePatientQuery(id int64) error {
	query := `
		UPDATE patient_queries SET status = 'resolved' WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func scanPatientQueries(rows *sql.Rows) ([]*domain.PatientQuery, error) {
	queries := make([]*domain.PatientQuery, 0)
	for rows.Next() {
		q := &domain.PatientQuery{}
		dst := []any{&q.ID, &q.PatientEmail, &q.DoctorID, &q.DoctorName, &q.Text, &q.Audience, &q.Status, &q.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return queries, nil
}
