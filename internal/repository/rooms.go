package repository

import (
	"context"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
)

func (r *Repository) GetAllRooms() ([]*domain.Room, error) {
	query := `
		SELECT id, number, floor, ward, capacity, is_occupied, version
		FROM rooms ORDER BY number
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room := &domain.Room{}
		dst := []any{&room.ID, &room.Number, &room.Floor, &room.Ward, &room.Capacity, &room.IsOccupied, &room.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *Repository) GetRoomByID(id int64) (*domain.Room, error) {
	query := `
		SELECT number, floor, ward, capacity, is_occupied, version
		FROM rooms WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	room := &domain.Room{
		ID: id,
	}

	dst := []any{&room.Number, &room.Floor, &room.Ward, &room.Capacity, &room.IsOccupied, &room.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return room, nil
}

func (r *Repository) CreateRoom(room *domain.Room) error {
	query := `
		INSERT INTO rooms (number, floor, ward, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_occupied, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{room.Number, room.Floor, room.Ward, room.Capacity}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.IsOccupied, &room.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateRoom(room *domain.Room) error {
	query := `
		UPDATE rooms
		SET
			number = $1,
			floor = $2,
			ward = $3,
			capacity = $4,
			is_occupied = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{room.Number, room.Floor, room.Ward, room.Capacity, room.IsOccupied, room.ID, room.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&room.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteRoom(id int64) error {
	query := `
		DELETE FROM rooms WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// AssignRoomToDoctor links a room to a doctor and marks it occupied in
// one transaction.
func (r *Repository) AssignRoomToDoctor(roomID int64, doctorID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE doctors SET room_id = $1, version = version + 1 WHERE id = $2
	`
	if _, err := tx.ExecContext(ctx, query, roomID, doctorID); err != nil {
		return err
	}

	query = `
		UPDATE rooms SET is_occupied = TRUE, version = version + 1 WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, query, roomID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
