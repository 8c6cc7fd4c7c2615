package domain

import (
	"time"
)

type QueryAudience string

const (
	AudienceDoctor            QueryAudience = "doctor"
	AudienceHospitalAndDoctor QueryAudience = "hospital_and_doctor"
)

type QueryStatus string

const (
	QueryPending  QueryStatus = "pending"
	QueryResolved QueryStatus = "resolved"
)

// PatientQuery is a question or complaint a patient addresses to a
// doctor, optionally visible to hospital administration as well.
type PatientQuery struct {
	ID           int64         `json:"id"`
	PatientEmail string        `json:"patientEmail"`
	DoctorID     int64         `json:"doctorId"`
	DoctorName   string        `json:"doctorName"`
	Text         string        `json:"text"`
	Audience     QueryAudience `json:"audience"`
	Status       QueryStatus   `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}
