package repository

import (
	"context"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (r *Repository) GetAllDoctors() ([]*domain.Doctor, error) {
	query := `
		SELECT
			d.id, d.full_name, d.email, d.specialty_id, s.name,
			d.shift_start, d.shift_end, d.slot_interval_minutes,
			d.nurse_assigned, d.room_id, d.created_at, d.version
		FROM doctors d
		JOIN specialties s ON d.specialty_id = s.id
		ORDER BY d.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		d := &domain.Doctor{}
		dst := []any{
			&d.ID, &d.FullName, &d.Email, &d.SpecialtyID, &d.SpecialtyName,
			&d.ShiftStart, &d.ShiftEnd, &d.SlotInterval,
			&d.NurseAssigned, &d.RoomID, &d.CreatedAt, &d.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return doctors, nil
}

func (r *Repository) GetDoctorByID(id int64) (*domain.Doctor, error) {
	query := `
		SELECT
			d.full_name, d.email, d.specialty_id, s.name,
			d.shift_start, d.shift_end, d.slot_interval_minutes,
			d.nurse_assigned, d.room_id, d.created_at, d.version
		FROM doctors d
		JOIN specialties s ON d.specialty_id = s.id
		WHERE d.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	d := &domain.Doctor{
		ID: id,
	}

	dst := []any{
		&d.FullName, &d.Email, &d.SpecialtyID, &d.SpecialtyName,
		&d.ShiftStart, &d.ShiftEnd, &d.SlotInterval,
		&d.NurseAssigned, &d.RoomID, &d.CreatedAt, &d.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return d, nil
}

func (r *Repository) GetDoctorByEmail(email string) (*domain.Doctor, error) {
	query := `
		SELECT
			d.id, d.full_name, d.specialty_id, s.name,
			d.shift_start, d.shift_end, d.slot_interval_minutes,
			d.nurse_assigned, d.room_id, d.created_at, d.version
		FROM doctors d
		JOIN specialties s ON d.specialty_id = s.id
		WHERE d.email = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	d := &domain.Doctor{
		Email: email,
	}

	dst := []any{
		&d.ID, &d.FullName, &d.SpecialtyID, &d.SpecialtyName,
		&d.ShiftStart, &d.ShiftEnd, &d.SlotInterval,
		&d.NurseAssigned, &d.RoomID, &d.CreatedAt, &d.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return d, nil
}

func (r *Repository) CreateDoctor(d *domain.Doctor) error {
	query := `
		INSERT INTO doctors (full_name, email, specialty_id, shift_start, shift_end, slot_interval_minutes, nurse_assigned, room_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{d.FullName, d.Email, d.SpecialtyID, d.ShiftStart, d.ShiftEnd, d.SlotInterval, d.NurseAssigned, d.RoomID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.CreatedAt, &d.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateDoctor(d *domain.Doctor) error {
	query := `
		UPDATE doctors
		SET
			full_name = $1,
			email = $2,
			specialty_id = $3,
			shift_start = $4,
			shift_end = $5,
			slot_interval_minutes = $6,
			nurse_assigned = $7,
			room_id = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{d.FullName, d.Email, d.SpecialtyID, d.ShiftStart, d.ShiftEnd, d.SlotInterval, d.NurseAssigned, d.RoomID, d.ID, d.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&d.CreatedAt, &d.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteDoctor(id int64) error {
	query := `
		DELETE FROM doctors WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
