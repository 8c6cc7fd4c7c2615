package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
	"github.com/medivista-dev/hospital-portal/backend/internal/repository"
	"github.com/medivista-dev/hospital-portal/backend/internal/schedule"
	"github.com/medivista-dev/hospital-portal/backend/internal/utils"
)

// BookAppointment reserves a slot. The availability check here is
// advisory (it produces the friendly error); the partial unique index on
// (doctor, date, start_time) is what makes concurrent booking of the
// same slot impossible.
func (h *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		PatientID int64  `json:"patientId" validate:"omitempty,gt=0"`
		DoctorID  int64  `json:"doctorId" validate:"required,gt=0"`
		Date      string `json:"date" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateAppointmentDate(req.Date, time.Now()); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// patients book for themselves, receptionists for any registered patient
	var patient *domain.Patient
	var err error
	if myInfo.Role == domain.RolePatient {
		patient, err = h.repository.GetPatientByEmail(myInfo.Email)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "no patient record found for your account, please contact the reception")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	} else {
		if req.PatientID == 0 {
			h.errorResponse(w, r, "patientId is required")
			return
		}
		patient, err = h.repository.GetPatientByID(req.PatientID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "patient not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	}

	doctor, err := h.repository.GetDoctorByID(req.DoctorID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "doctor not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	booked, err := h.repository.GetBookedStartTimes(doctor.ID, req.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	availability := schedule.Compute(
		doctor.ShiftStart,
		doctor.ShiftEnd,
		time.Duration(doctor.SlotInterval)*time.Minute,
		booked,
	)

	switch availability.Status {
	case schedule.StatusNoShift:
		h.errorResponse(w, r, "the doctor has no bookable shift configured")
		return
	case schedule.StatusFullyBooked:
		h.errorResponse(w, r, "the doctor is fully booked on this date")
		return
	}

	if !slices.Contains(availability.Slots, req.StartTime) {
		h.errorResponse(w, r, "the requested slot is not available")
		return
	}

	appointment := &domain.Appointment{
		Reference: uuid.NewString(),
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Status:    domain.AppointmentBooked,
	}

	if err := h.repository.CreateAppointment(appointment); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "appointments_slot_key":
				// lost the race for the slot between the check and the insert
				h.errorResponse(w, r, "the requested slot was just taken, please pick another")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	appointment.PatientName = patient.FullName
	appointment.DoctorName = doctor.FullName

	mailMessage := domain.MailMessage{
		Type: "appointment_booked",
		To:   patient.Email,
		Data: domain.AppointmentBookedMailData{
			PatientName: patient.FullName,
			DoctorName:  doctor.FullName,
			Date:        appointment.Date,
			StartTime:   appointment.StartTime,
			Reference:   appointment.Reference,
		},
	}

	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointment booked", appointment)
}

func (h *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	filter := repository.AppointmentFilter{
		Date: r.URL.Query().Get("date"),
	}

	appointments, err := h.repository.GetAppointments(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments fetched", appointments)
}

func (h *Handler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	patient, err := h.repository.GetPatientByEmail(myInfo.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "no appointments", []*domain.Appointment{})
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	appointments, err := h.repository.GetAppointments(repository.AppointmentFilter{PatientID: patient.ID})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments fetched", appointments)
}

// GetMySchedule is the doctor's own view: their appointments, optionally
// narrowed to one date.
func (h *Handler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	doctor, err := h.repository.GetDoctorByEmail(myInfo.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no doctor profile is linked to your account")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	filter := repository.AppointmentFilter{
		DoctorID: doctor.ID,
		Date:     r.URL.Query().Get("date"),
	}

	appointments, err := h.repository.GetAppointments(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule fetched", appointments)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment := r.Context().Value(AppointmentCtx).(*domain.Appointment)
	h.successResponse(w, r, "appointment fetched", appointment)
}

func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	appointment := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	// patients may only cancel their own bookings
	if myInfo.Role == domain.RolePatient {
		patient, err := h.repository.GetPatientByEmail(myInfo.Email)
		if err != nil || patient.ID != appointment.PatientID {
			h.errorResponse(w, r, "permission denied")
			return
		}
	}

	if appointment.Status == domain.AppointmentCancelled {
		h.errorResponse(w, r, "appointment is already cancelled")
		return
	}

	if err := h.repository.CancelAppointment(appointment.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	appointment.Status = domain.AppointmentCancelled
	h.successResponse(w, r, "appointment cancelled", appointment)
}
