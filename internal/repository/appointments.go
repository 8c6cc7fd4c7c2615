package repository

import (
	"context"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

// GetBookedStartTimes returns the start times already reserved for one
// doctor on one date, the exclusion set the availability calculator
// consumes. Cancelled appointments free their slot and are not included.
func (r *Repository) GetBookedStartTimes(doctorID int64, date string) ([]string, error) {
	query := `
		SELECT start_time FROM appointments
		WHERE doctor_id = $1 AND date = $2 AND status = 'booked'
		ORDER BY start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, doctorID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	starts := make([]string, 0)
	for rows.Next() {
		var start string
		if err := rows.Scan(&start); err != nil {
			return nil, err
		}
		starts = append(starts, start)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return starts, nil
}

func (r *Repository) CreateAppointment(a *domain.Appointment) error {
	query := `
		INSERT INTO appointments (reference, patient_id, doctor_id, date, start_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{a.Reference, a.PatientID, a.DoctorID, a.Date, a.StartTime, a.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAppointmentByID(id int64) (*domain.Appointment, error) {
	query := `
		SELECT
			a.reference, a.patient_id, p.full_name, a.doctor_id, d.full_name,
			a.date, a.start_time, a.status, a.created_at
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN doctors d ON a.doctor_id = d.id
		WHERE a.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	a := &domain.Appointment{
		ID: id,
	}

	dst := []any{
		&a.Reference, &a.PatientID, &a.PatientName, &a.DoctorID, &a.DoctorName,
		&a.Date, &a.StartTime, &a.Status, &a.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return a, nil
}

// AppointmentFilter narrows listing; zero values mean "any".
type AppointmentFilter struct {
	DoctorID  int64
	PatientID int64
	Date      string
}

func (r *Repository) GetAppointments(filter AppointmentFilter) ([]*domain.Appointment, error) {
	query := `
		SELECT
			a.id, a.reference, a.patient_id, p.full_name, a.doctor_id, d.full_name,
			a.date, a.start_time, a.status, a.created_at
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN doctors d ON a.doctor_id = d.id
		WHERE ($1 = 0 OR a.doctor_id = $1)
		  AND ($2 = 0 OR a.patient_id = $2)
		  AND ($3 = '' OR a.date = $3)
		ORDER BY a.date, a.start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, filter.DoctorID, filter.PatientID, filter.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a := &domain.Appointment{}
		dst := []any{
			&a.ID, &a.Reference, &a.PatientID, &a.PatientName, &a.DoctorID, &a.DoctorName,
			&a.Date, &a.StartTime, &a.Status, &a.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *Repository) CancelAppointment(id int64) error {
	query := `
		UPDATE appointments SET status = 'cancelled' WHERE id = $1 AND status = 'booked'
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
