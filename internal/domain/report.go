package domain

import (
	"time"
)

type DailyAppointmentCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type DashboardReport struct {
	TotalPatients      int64                   `json:"totalPatients"`
	TotalDoctors       int64                   `json:"totalDoctors"`
	TotalAppointments  int64                   `json:"totalAppointments"`
	PendingQueries     int64                   `json:"pendingQueries"`
	TotalRevenue       float64                 `json:"totalRevenue"`
	AppointmentsPerDay []DailyAppointmentCount `json:"appointmentsPerDay"`
	GeneratedAt        time.Time               `json:"generatedAt"`
}
