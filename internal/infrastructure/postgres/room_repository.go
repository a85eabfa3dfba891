package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo implementación del puerto RoomRepository sobre PostgreSQL (usable con pool o tx).
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

const roomColumns = `id, number, type, capacity, daily_rate, status, observations`

// Create persiste un nuevo cuarto. El número es único.
func (r *RoomRepo) Create(room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, number, type, capacity, daily_rate, status, observations)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.Number, room.Type, room.Capacity, room.DailyRate, room.Status, room.Observations,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

// GetByID obtiene un cuarto por ID.
func (r *RoomRepo) GetByID(id string) (*entity.Room, error) {
	return r.getOne(`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
}

// GetForUpdate obtiene el cuarto y bloquea la fila (SELECT FOR UPDATE).
// Dentro de una transacción serializa los check-ins concurrentes al mismo cuarto.
func (r *RoomRepo) GetForUpdate(id string) (*entity.Room, error) {
	return r.getOne(`SELECT `+roomColumns+` FROM rooms WHERE id = $1 FOR UPDATE`, id)
}

func (r *RoomRepo) getOne(query, id string) (*entity.Room, error) {
	var room entity.Room
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&room.ID, &room.Number, &room.Type, &room.Capacity, &room.DailyRate, &room.Status, &room.Observations,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

// List lista todos los cuartos ordenados por número.
func (r *RoomRepo) List() ([]*entity.Room, error) {
	return r.list(`SELECT ` + roomColumns + ` FROM rooms ORDER BY number`)
}

// ListAvailable lista los cuartos en estado available ordenados por número.
func (r *RoomRepo) ListAvailable() ([]*entity.Room, error) {
	return r.list(`SELECT ` + roomColumns + ` FROM rooms WHERE status = 'available' ORDER BY number`)
}

func (r *RoomRepo) list(query string) ([]*entity.Room, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Type, &room.Capacity,
			&room.DailyRate, &room.Status, &room.Observations); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		list = append(list, &room)
	}
	return list, rows.Err()
}

// Update actualiza un cuarto existente.
func (r *RoomRepo) Update(room *entity.Room) error {
	query := `
		UPDATE rooms SET number = $2, type = $3, capacity = $4, daily_rate = $5, status = $6, observations = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		room.ID, room.Number, room.Type, room.Capacity, room.DailyRate, room.Status, room.Observations,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update room: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus actualiza solo el estado del cuarto (usado por el ciclo de reservas).
func (r *RoomRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE rooms SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update room status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cuarto por ID.
func (r *RoomRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("delete room: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
