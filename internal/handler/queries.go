package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (h *Handler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		DoctorID int64  `json:"doctorId" validate:"required,gt=0"`
		Text     string `json:"text" validate:"required"`
		Audience string `json:"audience" validate:"required,oneof=doctor hospital_and_doctor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.repository.GetDoctorByID(req.DoctorID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "doctor not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	q := &domain.PatientQuery{
		PatientEmail: myInfo.Email,
		DoctorID:     req.DoctorID,
		Text:         req.Text,
		Audience:     domain.QueryAudience(req.Audience),
		Status:       domain.QueryPending,
	}

	if err := h.repository.CreatePatientQuery(q); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "query submitted", q)
}

func (h *Handler) GetHospitalQueries(w http.ResponseWriter, r *http.Request) {
	queries, err := h.repository.GetHospitalPatientQueries()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "queries fetched", queries)
}

func (h *Handler) GetAssignedQueries(w http.ResponseWriter, r *http.Request) {
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

	queries, err := h.repository.GetPatientQueriesForDoctor(doctor.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "queries fetched", queries)
}

func (h *Handler) ResolveQuery(w http.ResponseWriter, r *http.Request) {
	queryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid query id")
		return
	}

	q, err := h.repository.GetPatientQueryByID(queryID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "query not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if q.Status == domain.QueryResolved {
		h.errorResponse(w, r, "query is already resolved")
		return
	}

	if err := h.repository.ResolvePatientQuery(q.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	q.Status = domain.QueryResolved
	h.successResponse(w, r, "query resolved", q)
}
