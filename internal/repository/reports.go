package repository

import (
	"context"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (r *Repository) GetDashboardReport() (*domain.DashboardReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	report := &domain.DashboardReport{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM patients),
			(SELECT COUNT(*) FROM doctors),
			(SELECT COUNT(*) FROM appointments WHERE status = 'booked'),
			(SELECT COUNT(*) FROM patient_queries WHERE status = 'pending'),
			(SELECT COALESCE(SUM(amount_paid), 0) FROM patients)
	`

	dst := []any{
		&report.TotalPatients,
		&report.TotalDoctors,
		&report.TotalAppointments,
		&report.PendingQueries,
		&report.TotalRevenue,
	}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	query = `
		SELECT date, COUNT(*)
		FROM appointments
		WHERE status = 'booked' AND date >= to_char(now() - interval '6 days', 'YYYY-MM-DD')
		GROUP BY date
		ORDER BY date
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report.AppointmentsPerDay = make([]domain.DailyAppointmentCount, 0)
	for rows.Next() {
		var dc domain.DailyAppointmentCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		report.AppointmentsPerDay = append(report.AppointmentsPerDay, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	report.GeneratedAt = time.Now()

	return report, nil
}
