package handler

import (
	"net/http"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (h *Handler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.repository.GetAllPatients()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "patients fetched", patients)
}

func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName   string  `json:"fullName" validate:"required"`
		Email      string  `json:"email" validate:"required,email"`
		Age        int32   `json:"age" validate:"required,gte=1,lte=120"`
		BloodGroup string  `json:"bloodGroup" validate:"required,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
		Reason     string  `json:"reason" validate:"required"`
		AmountPaid float64 `json:"amountPaid" validate:"gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patient := &domain.Patient{
		FullName:   req.FullName,
		Email:      req.Email,
		Age:        req.Age,
		BloodGroup: req.BloodGroup,
		Reason:     req.Reason,
		AmountPaid: req.AmountPaid,
		VisitDate:  time.Now().Format("2006-01-02"),
	}

	if err := h.repository.CreatePatient(patient); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "patient registered", patient)
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patient := r.Context().Value(PatientCtx).(*domain.Patient)
	h.successResponse(w, r, "patient fetched", patient)
}

func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patient := r.Context().Value(PatientCtx).(*domain.Patient)

	var req struct {
		FullName   *string  `json:"fullName"`
		Email      *string  `json:"email" validate:"omitempty,email"`
		Age        *int32   `json:"age" validate:"omitempty,gte=1,lte=120"`
		BloodGroup *string  `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
		Reason     *string  `json:"reason"`
		AmountPaid *float64 `json:"amountPaid" validate:"omitempty,gte=0"`
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
		patient.FullName = *req.FullName
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.BloodGroup != nil {
		patient.BloodGroup = *req.BloodGroup
	}
	if req.Reason != nil {
		patient.Reason = *req.Reason
	}
	if req.AmountPaid != nil {
		patient.AmountPaid = *req.AmountPaid
	}

	if err := h.repository.UpdatePatient(patient); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "patient updated", patient)
}

func (h *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patient := r.Context().Value(PatientCtx).(*domain.Patient)

	if err := h.repository.DeletePatient(patient.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "patient deleted", nil)
}
