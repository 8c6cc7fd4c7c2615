package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (h *Handler) GetAllSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.repository.GetAllSpecialties()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "specialties fetched", specialties)
}

func (h *Handler) CreateSpecialty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s := &domain.Specialty{
		Name: req.Name,
	}

	if err := h.repository.CreateSpecialty(s); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "specialties_name_key":
				h.errorResponse(w, r, "specialty already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "specialty created", s)
}

func (h *Handler) UpdateSpecialty(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid specialty id")
		return
	}

	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s, err := h.repository.GetSpecialtyByID(specialtyID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "specialty not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	s.Name = req.Name

	if err := h.repository.UpdateSpecialty(s); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "specialties_name_key":
				h.errorResponse(w, r, "specialty already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "specialty updated", s)
}

func (h *Handler) DeleteSpecialty(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid specialty id")
		return
	}

	if err := h.repository.DeleteSpecialty(specialtyID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "doctors_specialty_id_fkey":
				h.errorResponse(w, r, "specialty is still assigned to doctors")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "specialty deleted", nil)
}
