package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo implementación de StatsRepository sobre PostgreSQL. Solo
// consultas de lectura agregada para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountRooms devuelve cuántos cuartos están ocupados y el total.
func (r *StatsRepo) CountRooms(ctx context.Context) (occupied, total int, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'occupied'), COUNT(*)
		FROM rooms`
	if err := r.q.QueryRow(ctx, query).Scan(&occupied, &total); err != nil {
		return 0, 0, fmt.Errorf("count rooms: %w", err)
	}
	return occupied, total, nil
}

// CountCheckIns cuenta reservas con check-in dentro de [from, to).
func (r *StatsRepo) CountCheckIns(ctx context.Context, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reservations
		WHERE check_in_date >= $1 AND check_in_date < $2`
	var n int
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("count check-ins: %w", err)
	}
	return n, nil
}

// CountCheckOuts cuenta reservas con checkout efectivo dentro de [from, to).
func (r *StatsRepo) CountCheckOuts(ctx context.Context, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reservations
		WHERE actual_check_out_date >= $1 AND actual_check_out_date < $2`
	var n int
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("count check-outs: %w", err)
	}
	return n, nil
}

// SumRevenue suma el total cobrado de las reservas completadas con checkout
// efectivo dentro de [from, to). Devuelve cero si no hay filas.
func (r *StatsRepo) SumRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM reservations
		WHERE status = 'completed' AND actual_check_out_date >= $1 AND actual_check_out_date < $2`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}
	return sum, nil
}
