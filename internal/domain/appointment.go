package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "booked"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment reserves one slot for one patient with one doctor on one
// date. StartTime is "HH:MM", Date is "2006-01-02". Exactly-once booking
// of a (doctor, date, start_time) triple is enforced by a partial unique
// index in the database, not by application code.
type Appointment struct {
	ID          int64             `json:"id"`
	Reference   string            `json:"reference"`
	PatientID   int64             `json:"patientId"`
	PatientName string            `json:"patientName"`
	DoctorID    int64             `json:"doctorId"`
	DoctorName  string            `json:"doctorName"`
	Date        string            `json:"date"`
	StartTime   string            `json:"startTime"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}
