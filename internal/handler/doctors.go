package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
	"github.com/medivista-dev/hospital-portal/backend/internal/schedule"
	"github.com/medivista-dev/hospital-portal/backend/internal/utils"
)

func (h *Handler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.repository.GetAllDoctors()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "doctors fetched", doctors)
}

func (h *Handler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName      string `json:"fullName" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
		SpecialtyID   int64  `json:"specialtyId" validate:"required,gt=0"`
		ShiftStart    string `json:"shiftStart" validate:"required"`
		ShiftEnd      string `json:"shiftEnd" validate:"required"`
		SlotInterval  int32  `json:"slotIntervalMinutes" validate:"required,gt=0"`
		NurseAssigned string `json:"nurseAssigned"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateShiftWindow(req.ShiftStart, req.ShiftEnd, req.SlotInterval); err != nil {
		h.badRequest(w, r, err)
		return
	}

	doctor := &domain.Doctor{
		FullName:      req.FullName,
		Email:         req.Email,
		SpecialtyID:   req.SpecialtyID,
		ShiftStart:    req.ShiftStart,
		ShiftEnd:      req.ShiftEnd,
		SlotInterval:  req.SlotInterval,
		NurseAssigned: req.NurseAssigned,
	}

	if err := h.repository.CreateDoctor(doctor); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "doctors_email_key":
				h.errorResponse(w, r, "a doctor with this email already exists")
			case "doctors_specialty_id_fkey":
				h.errorResponse(w, r, "specialty does not exist")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "doctor created", doctor)
}

func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor := r.Context().Value(DoctorCtx).(*domain.Doctor)
	h.successResponse(w, r, "doctor fetched", doctor)
}

// GetDoctorSlots computes the remaining bookable start times for a
// doctor on the requested date.
func (h *Handler) GetDoctorSlots(w http.ResponseWriter, r *http.Request) {
	doctor := r.Context().Value(DoctorCtx).(*domain.Doctor)

	date := r.URL.Query().Get("date")
	if err := utils.ValidateAppointmentDate(date, time.Now()); err != nil {
		h.badRequest(w, r, err)
		return
	}

	booked, err := h.repository.GetBookedStartTimes(doctor.ID, date)
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

	h.successResponse(w, r, "availability computed", availability)
}

func (h *Handler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctor := r.Context().Value(DoctorCtx).(*domain.Doctor)

	var req struct {
		FullName      *string `json:"fullName"`
		Email         *string `json:"email" validate:"omitempty,email"`
		SpecialtyID   *int64  `json:"specialtyId" validate:"omitempty,gt=0"`
		ShiftStart    *string `json:"shiftStart"`
		ShiftEnd      *string `json:"shiftEnd"`
		SlotInterval  *int32  `json:"slotIntervalMinutes" validate:"omitempty,gt=0"`
		NurseAssigned *string `json:"nurseAssigned"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullName != nil {
		doctor.FullName = *req.FullName
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.SpecialtyID != nil {
		doctor.SpecialtyID = *req.SpecialtyID
	}
	if req.ShiftStart != nil {
		doctor.ShiftStart = *req.ShiftStart
	}
	if req.ShiftEnd != nil {
		doctor.ShiftEnd = *req.ShiftEnd
	}
	if req.SlotInterval != nil {
		doctor.SlotInterval = *req.SlotInterval
	}
	if req.NurseAssigned != nil {
		doctor.NurseAssigned = *req.NurseAssigned
	}

	// the stored window must stay bookable as a whole
	if err := utils.ValidateShiftWindow(doctor.ShiftStart, doctor.ShiftEnd, doctor.SlotInterval); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateDoctor(doctor); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "doctors_email_key":
				h.errorResponse(w, r, "a doctor with this email already exists")
			case "doctors_specialty_id_fkey":
				h.errorResponse(w, r, "specialty does not exist")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "doctor updated", doctor)
}

func (h *Handler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctor := r.Context().Value(DoctorCtx).(*domain.Doctor)

	if err := h.repository.DeleteDoctor(doctor.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "doctor deleted", nil)
}

func (h *Handler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	doctor := r.Context().Value(DoctorCtx).(*domain.Doctor)

	var req struct {
		RoomID int64 `json:"roomId" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	room, err := h.repository.GetRoomByID(req.RoomID)
	if err != nil {
		h.errorResponse(w, r, "room not found")
		return
	}
	if room.IsOccupied {
		h.errorResponse(w, r, "room is already occupied")
		return
	}

	if err := h.repository.AssignRoomToDoctor(room.ID, doctor.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	doctor.RoomID = &room.ID
	h.successResponse(w, r, "room assigned", doctor)
}
