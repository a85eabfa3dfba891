// Package analytics contiene los casos de uso de lectura agregada para el
// panel inicial de la recepción.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen operativo del día: ocupación,
// check-ins, check-outs e ingresos.
//
// Fuente de datos: StatsRepository (consultas read-only). No accede
// directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStatsResponse del día de hoy, con "hoy"
// definido como [hoy 00:00, mañana 00:00) en hora local del servidor.
//
// Cuatro llamadas en paralelo:
//  1. CountRooms            → OccupiedRooms + TotalRooms
//  2. CountCheckIns(hoy)    → CheckInsToday
//  3. CountCheckOuts(hoy)   → CheckOutsToday
//  4. SumRevenue(hoy)       → RevenueToday
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24 * time.Hour)

	type roomsResult struct {
		occupied int
		total    int
		err      error
	}
	type countResult struct {
		n   int
		err error
	}
	type revenueResult struct {
		sum decimal.Decimal
		err error
	}

	roomsCh := make(chan roomsResult, 1)
	insCh := make(chan countResult, 1)
	outsCh := make(chan countResult, 1)
	revCh := make(chan revenueResult, 1)

	go func() {
		occupied, total, err := uc.statsRepo.CountRooms(ctx)
		roomsCh <- roomsResult{occupied, total, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountCheckIns(ctx, todayStart, todayEnd)
		insCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountCheckOuts(ctx, todayStart, todayEnd)
		outsCh <- countResult{n, err}
	}()
	go func() {
		sum, err := uc.statsRepo.SumRevenue(ctx, todayStart, todayEnd)
		revCh <- revenueResult{sum, err}
	}()

	rooms := <-roomsCh
	ins := <-insCh
	outs := <-outsCh
	rev := <-revCh

	if rooms.err != nil {
		return nil, fmt.Errorf("dashboard: ocupación de cuartos: %w", rooms.err)
	}
	if ins.err != nil {
		return nil, fmt.Errorf("dashboard: check-ins de hoy: %w", ins.err)
	}
	if outs.err != nil {
		return nil, fmt.Errorf("dashboard: check-outs de hoy: %w", outs.err)
	}
	if rev.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos de hoy: %w", rev.err)
	}

	return &dto.DashboardStatsResponse{
		OccupiedRooms:  rooms.occupied,
		TotalRooms:     rooms.total,
		CheckInsToday:  ins.n,
		CheckOutsToday: outs.n,
		RevenueToday:   rev.sum.Round(2),
	}, nil
}
