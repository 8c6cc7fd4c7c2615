package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (h *Handler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.repository.GetAllRooms()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "rooms fetched", rooms)
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number   string `json:"number" validate:"required"`
		Floor    int32  `json:"floor" validate:"gte=0"`
		Ward     string `json:"ward" validate:"required,oneof=general private icu emergency"`
		Capacity int32  `json:"capacity" validate:"required,gte=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	room := &domain.Room{
		Number:   req.Number,
		Floor:    req.Floor,
		Ward:     domain.WardType(req.Ward),
		Capacity: req.Capacity,
	}

	if err := h.repository.CreateRoom(room); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "rooms_number_key":
				h.errorResponse(w, r, "a room with this number already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "room created", room)
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room := r.Context().Value(RoomCtx).(*domain.Room)
	h.successResponse(w, r, "room fetched", room)
}

func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	room := r.Context().Value(RoomCtx).(*domain.Room)

	var req struct {
		Number     *string `json:"number"`
		Floor      *int32  `json:"floor" validate:"omitempty,gte=0"`
		Ward       *string `json:"ward" validate:"omitempty,oneof=general private icu emergency"`
		Capacity   *int32  `json:"capacity" validate:"omitempty,gte=1"`
		IsOccupied *bool   `json:"isOccupied"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Ward != nil {
		room.Ward = domain.WardType(*req.Ward)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.IsOccupied != nil {
		room.IsOccupied = *req.IsOccupied
	}

	if err := h.repository.UpdateRoom(room); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "rooms_number_key":
				h.errorResponse(w, r, "a room with this number already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "room updated", room)
}

func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	room := r.Context().Value(RoomCtx).(*domain.Room)

	if err := h.repository.DeleteRoom(room.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "doctors_room_id_fkey":
				h.errorResponse(w, r, "room is still assigned to a doctor")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "room deleted", nil)
}
