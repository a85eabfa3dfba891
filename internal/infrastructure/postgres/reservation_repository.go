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

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación del puerto ReservationRepository sobre PostgreSQL (usable con pool o tx).
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

const reservationColumns = `id, client_id, room_id, check_in_date, expected_check_out_date,
		actual_check_out_date, number_of_guests, payment_method, status, total_amount, notes, created_at`

// Create persiste una nueva reserva.
func (r *ReservationRepo) Create(reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, client_id, room_id, check_in_date, expected_check_out_date,
			actual_check_out_date, number_of_guests, payment_method, status, total_amount, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.ClientID, reservation.RoomID,
		reservation.CheckInDate, reservation.ExpectedCheckOutDate, reservation.ActualCheckOutDate,
		reservation.NumberOfGuests, reservation.PaymentMethod, reservation.Status,
		reservation.TotalAmount, reservation.Notes, reservation.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	return r.getOne(`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
}

// GetForUpdate obtiene la reserva y bloquea la fila para las transiciones
// de estado (checkout, cancelación).
func (r *ReservationRepo) GetForUpdate(id string) (*entity.Reservation, error) {
	return r.getOne(`SELECT `+reservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id)
}

func (r *ReservationRepo) getOne(query, id string) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.ClientID, &res.RoomID, &res.CheckInDate, &res.ExpectedCheckOutDate,
		&res.ActualCheckOutDate, &res.NumberOfGuests, &res.PaymentMethod, &res.Status,
		&res.TotalAmount, &res.Notes, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// List lista todas las reservas, las más recientes primero.
func (r *ReservationRepo) List() ([]*entity.Reservation, error) {
	return r.list(`SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC`)
}

// ListActive lista las reservas en estado active.
func (r *ReservationRepo) ListActive() ([]*entity.Reservation, error) {
	return r.list(`SELECT ` + reservationColumns + ` FROM reservations WHERE status = 'active' ORDER BY check_in_date`)
}

// ListActiveByRoom lista las reservas activas del cuarto; es la base de la
// verificación de solapamiento al crear una reserva.
func (r *ReservationRepo) ListActiveByRoom(roomID string) ([]*entity.Reservation, error) {
	return r.list(
		`SELECT `+reservationColumns+` FROM reservations WHERE room_id = $1 AND status = 'active' ORDER BY check_in_date`,
		roomID,
	)
}

func (r *ReservationRepo) list(query string, args ...any) ([]*entity.Reservation, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(&res.ID, &res.ClientID, &res.RoomID, &res.CheckInDate, &res.ExpectedCheckOutDate,
			&res.ActualCheckOutDate, &res.NumberOfGuests, &res.PaymentMethod, &res.Status,
			&res.TotalAmount, &res.Notes, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// Update actualiza una reserva existente.
func (r *ReservationRepo) Update(reservation *entity.Reservation) error {
	query := `
		UPDATE reservations SET client_id = $2, room_id = $3, check_in_date = $4, expected_check_out_date = $5,
			actual_check_out_date = $6, number_of_guests = $7, payment_method = $8, status = $9,
			total_amount = $10, notes = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.ClientID, reservation.RoomID,
		reservation.CheckInDate, reservation.ExpectedCheckOutDate, reservation.ActualCheckOutDate,
		reservation.NumberOfGuests, reservation.PaymentMethod, reservation.Status,
		reservation.TotalAmount, reservation.Notes,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update reservation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
