package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type StatsRepository interface {
	// CountRooms devuelve cuántos cuartos están ocupados y el total.
	CountRooms(ctx context.Context) (occupied, total int, err error)

	// CountCheckIns cuenta reservas con check-in dentro de [from, to).
	CountCheckIns(ctx context.Context, from, to time.Time) (int, error)

	// CountCheckOuts cuenta reservas con checkout efectivo dentro de [from, to).
	CountCheckOuts(ctx context.Context, from, to time.Time) (int, error)

	// SumRevenue suma el totalAmount de las reservas con checkout efectivo
	// dentro de [from, to). Devuelve cero si no hay filas.
	SumRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
